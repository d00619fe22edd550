package gateway

import "time"

// Appointment mirrors the backend's appointment record. StatusName is the
// server-resolved display name and may be empty; callers prefer the local
// status catalog and fall back to it.
type Appointment struct {
	AppointmentID       int       `json:"appointmentID"`
	PatientID           int       `json:"patientID"`
	DoctorID            int       `json:"doctorID"`
	PatientName         string    `json:"patientName,omitempty"`
	DoctorName          string    `json:"doctorName,omitempty"`
	AppointmentDateTime time.Time `json:"appointmentDateTime"`
	Symptoms            string    `json:"symptoms,omitempty"`
	VisitReason         string    `json:"visitReason,omitempty"`
	StatusID            int       `json:"statusID"`
	StatusName          string    `json:"statusName,omitempty"`
}

// BookAppointmentRequest is the booking payload a patient screen submits.
type BookAppointmentRequest struct {
	PatientID           int       `json:"patientID"`
	DoctorID            int       `json:"doctorID"`
	AppointmentDateTime time.Time `json:"appointmentDateTime"`
	Symptoms            string    `json:"symptoms,omitempty"`
	VisitReason         string    `json:"visitReason,omitempty"`
}

// Doctor is the reference entity behind doctor lists and admin CRUD.
// StatusID 1 is active, 2 inactive; deletes are status flips server-side.
type Doctor struct {
	DoctorID         int    `json:"doctorID"`
	Name             string `json:"name"`
	SpecializationID int    `json:"specializationID"`
	Specialization   string `json:"specialization,omitempty"`
	QualificationID  int    `json:"qualificationID"`
	Qualification    string `json:"qualification,omitempty"`
	Experience       int    `json:"experience"`
	Email            string `json:"email,omitempty"`
	Username         string `json:"username,omitempty"`
	Password         string `json:"password,omitempty"`
	StatusID         int    `json:"statusID"`
}

// Patient is the reference entity behind patient lists and admin CRUD.
type Patient struct {
	PatientID     int    `json:"patientID"`
	FullName      string `json:"fullName"`
	DOB           string `json:"dob,omitempty"`
	GenderID      int    `json:"genderID"`
	BloodGroup    string `json:"bloodGroup,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Address       string `json:"address,omitempty"`
	Username      string `json:"username,omitempty"`
	Email         string `json:"email,omitempty"`
	Password      string `json:"password,omitempty"`
	StatusID      int    `json:"statusID"`
}

// Range bounds a numeric search criterion.
type Range struct {
	MinValue int `json:"minValue"`
	MaxValue int `json:"maxValue"`
}

// DoctorSearchRequest is the POST /api/Doctor/search filter object. The
// backend caps results at PageSize in one shot; the caller still paginates
// the returned set locally.
type DoctorSearchRequest struct {
	Name              string `json:"name"`
	SpecializationIDs []int  `json:"specializationIds"`
	QualificationIDs  []int  `json:"qualificationIds"`
	ExperienceRange   Range  `json:"experienceRange"`
	Sort              int    `json:"sort"`
	PageNumber        int    `json:"pageNumber"`
	PageSize          int    `json:"pageSize"`
	StatusIDs         []int  `json:"statusIds"`
}

// PatientSearchRequest is the POST /api/Patient/search filter object.
type PatientSearchRequest struct {
	FullName   string `json:"fullName"`
	Sort       int    `json:"sort"`
	PageNumber int    `json:"pageNumber"`
	PageSize   int    `json:"pageSize"`
	StatusIDs  []int  `json:"statusIds"`
}

// Lookup is a generic id/name pair served by the form-data endpoints.
type Lookup struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DoctorFormData carries the lookups the doctor forms need.
type DoctorFormData struct {
	Specializations []Lookup
	Qualifications  []Lookup
}

// PatientMasters carries the lookups the patient forms need.
type PatientMasters struct {
	Genders []Lookup
}

// MedicalRecord belongs to one appointment, doctor and patient.
type MedicalRecord struct {
	RecordID            int       `json:"recordID"`
	AppointmentID       int       `json:"appointmentID"`
	DoctorID            int       `json:"doctorID"`
	PatientID           int       `json:"patientID"`
	Symptoms            string    `json:"symptoms,omitempty"`
	PhysicalExamination string    `json:"physicalExamination,omitempty"`
	TreatmentPlan       string    `json:"treatmentPlan,omitempty"`
	Diagnosis           string    `json:"diagnosis,omitempty"`
	CreatedAt           time.Time `json:"createdAt,omitempty"`
}

// Prescription belongs to one medical record. Created once; the UI offers
// no edit path.
type Prescription struct {
	PrescriptionID int    `json:"prescriptionID"`
	RecordID       int    `json:"recordID"`
	MedicineID     int    `json:"medicineID"`
	MedicineName   string `json:"medicineName,omitempty"`
	PatternID      int    `json:"patternID"`
	PatternCode    string `json:"patternCode,omitempty"`
	DosageTiming   string `json:"dosageTiming,omitempty"`
	Quantity       int    `json:"quantity"`
	Days           int    `json:"days"`
	Notes          string `json:"notes,omitempty"`
}

// RecommendedTest links a prescription to a test from the master catalog.
// TestName and Price sometimes appear in payloads; the local catalog is
// consulted first and these are the fallback (source of truth unresolved,
// see DESIGN.md).
type RecommendedTest struct {
	RecommendedTestID int     `json:"recommendedTestID"`
	PrescriptionID    int     `json:"prescriptionID"`
	TestID            int     `json:"testID"`
	TestName          string  `json:"testName,omitempty"`
	Price             float64 `json:"price,omitempty"`
}

// Billing belongs to one appointment. StatusID is a billing status code
// (1 Pending, 2 Paid, 3 Cancelled, 4 Refunded).
type Billing struct {
	BillingID     int       `json:"billingID"`
	AppointmentID int       `json:"appointmentID"`
	BillingDate   time.Time `json:"billingDate"`
	TotalAmount   float64   `json:"totalAmount"`
	StatusID      int       `json:"statusID"`
	StatusName    string    `json:"statusName,omitempty"`
}
