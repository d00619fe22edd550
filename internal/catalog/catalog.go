// Package catalog holds the static reference data the hospital backend does
// not serve: status code tables, the recommended-test master list and the
// prescription dosage patterns. Screens receive this data injected rather
// than redeclaring it.
package catalog

// EntityKind selects which status table a lookup runs against.
type EntityKind string

const (
	KindAppointment EntityKind = "appointment"
	KindBilling     EntityKind = "billing"
)

// Status is a status code with its display name.
type Status struct {
	ID   int    `json:"statusID"`
	Name string `json:"statusName"`
}

var appointmentStatuses = []Status{
	{ID: 1, Name: "Pending"},
	{ID: 2, Name: "Scheduled"},
	{ID: 3, Name: "Completed"},
	{ID: 4, Name: "Cancelled"},
	{ID: 5, Name: "Rejected"},
}

var billingStatuses = []Status{
	{ID: 1, Name: "Pending"},
	{ID: 2, Name: "Paid"},
	{ID: 3, Name: "Cancelled"},
	{ID: 4, Name: "Refunded"},
}

// NameFor returns the display name for a status code, or "" when the kind or
// code is unknown. Callers fall back to any server-supplied name.
func NameFor(kind EntityKind, statusID int) string {
	for _, s := range statusTable(kind) {
		if s.ID == statusID {
			return s.Name
		}
	}
	return ""
}

// StatusID is the reverse lookup used by filter dropdowns.
func StatusID(kind EntityKind, name string) (int, bool) {
	for _, s := range statusTable(kind) {
		if s.Name == name {
			return s.ID, true
		}
	}
	return 0, false
}

// AppointmentStatuses returns the appointment status table in display order.
func AppointmentStatuses() []Status {
	out := make([]Status, len(appointmentStatuses))
	copy(out, appointmentStatuses)
	return out
}

// BillingStatuses returns the billing status table in display order.
func BillingStatuses() []Status {
	out := make([]Status, len(billingStatuses))
	copy(out, billingStatuses)
	return out
}

func statusTable(kind EntityKind) []Status {
	switch kind {
	case KindAppointment:
		return appointmentStatuses
	case KindBilling:
		return billingStatuses
	}
	return nil
}

// Test is an entry in the recommended-test master list. The backend stores
// only the prescription/test link; names, prices and instructions live here.
type Test struct {
	ID           int     `json:"testID"`
	Name         string  `json:"testName"`
	Price        float64 `json:"price"`
	Instructions string  `json:"instructions"`
}

var masterTests = []Test{
	{ID: 1, Name: "Blood Test", Price: 300.0, Instructions: "Fasting recommended for accurate results"},
	{ID: 2, Name: "X-Ray", Price: 500.0, Instructions: "Remove any metal objects before test"},
	{ID: 3, Name: "MRI", Price: 2500.0, Instructions: "Inform technician if you have metal implants"},
	{ID: 4, Name: "ECG", Price: 400.0, Instructions: "Stay still and relaxed during the procedure"},
	{ID: 5, Name: "CT Scan", Price: 2000.0, Instructions: "Contrast dye may be used"},
	{ID: 6, Name: "Urine Test", Price: 100.0, Instructions: "Use the first morning sample"},
	{ID: 7, Name: "Liver Function Test", Price: 800.0, Instructions: "Avoid alcohol 24 hours before test"},
	{ID: 8, Name: "Thyroid Test", Price: 600.0, Instructions: "No special preparation needed"},
}

// Tests returns the master test list in catalog order.
func Tests() []Test {
	out := make([]Test, len(masterTests))
	copy(out, masterTests)
	return out
}

// TestByID returns the master entry for a test ID.
func TestByID(id int) (Test, bool) {
	for _, tst := range masterTests {
		if tst.ID == id {
			return tst, true
		}
	}
	return Test{}, false
}

// Pattern is a dosage timing code for prescriptions, e.g. "1-0-0" before food.
type Pattern struct {
	ID     int    `json:"id"`
	Code   string `json:"code"`
	Timing string `json:"timing"`
}

var dosagePatterns = []Pattern{
	{ID: 1, Code: "1-0-0", Timing: "BF"},
	{ID: 2, Code: "0-1-0", Timing: "AF"},
	{ID: 3, Code: "0-0-1", Timing: "BF"},
	{ID: 4, Code: "1-1-0", Timing: "AF"},
	{ID: 5, Code: "1-1-1", Timing: "AF"},
	{ID: 6, Code: "0-1-1", Timing: "BF"},
}

// Patterns returns the dosage pattern list in catalog order.
func Patterns() []Pattern {
	out := make([]Pattern, len(dosagePatterns))
	copy(out, dosagePatterns)
	return out
}

// PatternByID returns the dosage pattern for an ID.
func PatternByID(id int) (Pattern, bool) {
	for _, p := range dosagePatterns {
		if p.ID == id {
			return p, true
		}
	}
	return Pattern{}, false
}
