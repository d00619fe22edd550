package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openhms/hospital-portal/internal/dashboard"
	"github.com/openhms/hospital-portal/internal/gateway"
	"github.com/openhms/hospital-portal/pkg/logging"
)

// PatientHandler serves the patient dashboard screens. Appointment reads go
// through byPatient so a patient only sees their own bookings, and the only
// lifecycle moves offered are cancel and reschedule.
type PatientHandler struct {
	gw        *gateway.Client
	logger    *logging.Logger
	pageSize  int
	searchCap int
}

// NewPatientHandler creates the patient dashboard handler.
func NewPatientHandler(gw *gateway.Client, logger *logging.Logger, pageSize, searchCap int) *PatientHandler {
	if logger == nil {
		logger = logging.Default()
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if searchCap < 1 {
		searchCap = 100
	}
	return &PatientHandler{gw: gw, logger: logger, pageSize: pageSize, searchCap: searchCap}
}

// Routes wires the patient endpoints.
func (h *PatientHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/appointments", h.ListAppointments)
	r.Post("/appointments", h.BookAppointment)
	r.Put("/appointments/{id}/cancel", h.CancelAppointment)
	r.Put("/appointments/{id}/reschedule", h.RescheduleAppointment)

	r.Get("/doctors", h.SearchDoctors)
	r.Get("/records", h.ListRecords)
	r.Get("/prescriptions", h.ListPrescriptions)
	r.Get("/billings", h.ListBillings)
	return r
}

func (h *PatientHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	token, _, patientID := requestIdentity(r)
	fetch := func(ctx context.Context, tok string) ([]gateway.Appointment, error) {
		return h.gw.Appointments().ByPatient(ctx, tok, patientID)
	}
	page, err := evalList(r, token, fetch, h.pageSize, dashboard.AppointmentSearchFields, dashboard.AppointmentStatusName)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: dashboard.AppointmentRows(page.Items), Page: page.Number, TotalPages: page.TotalPages})
}

// BookAppointment creates a pending appointment. The patient id comes from
// the session, not the payload; the new booking waits for admin approval.
func (h *PatientHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	token, _, patientID := requestIdentity(r)
	var req gateway.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AppointmentDateTime.IsZero() || req.DoctorID == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "doctorID and appointmentDateTime are required"})
		return
	}
	req.PatientID = patientID
	if err := h.gw.Appointments().Book(r.Context(), token, req); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "booked"})
}

func (h *PatientHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	token, _, _ := requestIdentity(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid appointment id"})
		return
	}
	if err := h.gw.Appointments().Cancel(r.Context(), token, id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *PatientHandler) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	token, _, _ := requestIdentity(r)
	rescheduleAppointment(w, r, h.gw, h.logger, token)
}

// SearchDoctors backs the booking form's doctor picker. An empty term lists
// every active doctor; a term goes to the server-side search.
func (h *PatientHandler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	token, _, _ := requestIdentity(r)
	term := r.URL.Query().Get("search")
	fetch := func(ctx context.Context, tok string) ([]gateway.Doctor, error) {
		if term == "" {
			return h.gw.Doctors().List(ctx, tok)
		}
		return h.gw.Doctors().Search(ctx, tok, gateway.DoctorSearchRequest{
			Name:              term,
			SpecializationIDs: []int{},
			QualificationIDs:  []int{},
			ExperienceRange:   gateway.Range{MinValue: 0, MaxValue: 100},
			PageNumber:        1,
			PageSize:          h.searchCap,
			StatusIDs:         []int{1},
		})
	}
	page, err := evalList(r, token, fetch, h.pageSize,
		func(d gateway.Doctor) []string { return []string{d.Name, d.Specialization} }, nil)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: page.Items, Page: page.Number, TotalPages: page.TotalPages})
}

func (h *PatientHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	token, _, _ := requestIdentity(r)
	fetch := func(ctx context.Context, tok string) ([]gateway.MedicalRecord, error) {
		return h.gw.MedicalRecords().List(ctx, tok)
	}
	page, err := evalList(r, token, fetch, h.pageSize,
		func(m gateway.MedicalRecord) []string { return []string{m.Diagnosis, m.TreatmentPlan} }, nil)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: page.Items, Page: page.Number, TotalPages: page.TotalPages})
}

func (h *PatientHandler) ListPrescriptions(w http.ResponseWriter, r *http.Request) {
	token, _, _ := requestIdentity(r)
	fetch := func(ctx context.Context, tok string) ([]gateway.Prescription, error) {
		return h.gw.Prescriptions().List(ctx, tok)
	}
	page, err := evalList(r, token, fetch, h.pageSize,
		func(p gateway.Prescription) []string { return []string{p.MedicineName} }, nil)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: dashboard.PrescriptionRows(page.Items), Page: page.Number, TotalPages: page.TotalPages})
}

func (h *PatientHandler) ListBillings(w http.ResponseWriter, r *http.Request) {
	token, _, _ := requestIdentity(r)
	fetch := func(ctx context.Context, tok string) ([]gateway.Billing, error) {
		return h.gw.Billings().List(ctx, tok)
	}
	page, err := evalList(r, token, fetch, h.pageSize, nil, dashboard.BillingStatusName)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: dashboard.BillingRows(page.Items), Page: page.Number, TotalPages: page.TotalPages})
}
