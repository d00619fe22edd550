package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openhms/hospital-portal/internal/dashboard"
	"github.com/openhms/hospital-portal/internal/gateway"
	httpmiddleware "github.com/openhms/hospital-portal/internal/http/middleware"
	"github.com/openhms/hospital-portal/pkg/logging"
)

// DoctorHandler serves the doctor dashboard screens. Every appointment read
// goes through the byDoctor endpoint so a doctor only ever sees their own
// schedule.
type DoctorHandler struct {
	gw        *gateway.Client
	logger    *logging.Logger
	pageSize  int
	searchCap int
}

// NewDoctorHandler creates the doctor dashboard handler.
func NewDoctorHandler(gw *gateway.Client, logger *logging.Logger, pageSize, searchCap int) *DoctorHandler {
	if logger == nil {
		logger = logging.Default()
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if searchCap < 1 {
		searchCap = 100
	}
	return &DoctorHandler{gw: gw, logger: logger, pageSize: pageSize, searchCap: searchCap}
}

// Routes wires the doctor endpoints.
func (h *DoctorHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/appointments", h.ListAppointments)
	r.Put("/appointments/{id}/reschedule", h.RescheduleAppointment)
	r.Put("/appointments/{id}/{action}", h.AppointmentAction)

	r.Get("/patients", h.ListPatients)

	r.Get("/records", h.ListRecords)
	r.Post("/records", h.CreateRecord)
	r.Put("/records/{id}", h.UpdateRecord)

	r.Get("/prescriptions", h.ListPrescriptions)
	r.Post("/prescriptions", h.CreatePrescription)
	r.Delete("/prescriptions/{id}", h.DeletePrescription)

	r.Get("/tests", h.ListTests)
	r.Post("/tests", h.CreateTest)
	r.Delete("/tests/{id}", h.DeleteTest)
	return r
}

func requestIdentity(r *http.Request) (token string, doctorID, patientID int) {
	ident, _ := httpmiddleware.IdentityFromContext(r.Context())
	return ident.Token, ident.DoctorID, ident.PatientID
}

func (h *DoctorHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	token, doctorID, _ := requestIdentity(r)
	fetch := func(ctx context.Context, tok string) ([]gateway.Appointment, error) {
		return h.gw.Appointments().ByDoctor(ctx, tok, doctorID)
	}
	page, err := evalList(r, token, fetch, h.pageSize, dashboard.AppointmentSearchFields, dashboard.AppointmentStatusName)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: dashboard.AppointmentRows(page.Items), Page: page.Number, TotalPages: page.TotalPages})
}

func (h *DoctorHandler) AppointmentAction(w http.ResponseWriter, r *http.Request) {
	token, _, _ := requestIdentity(r)
	appointmentAction(w, r, h.gw, h.logger, token)
}

func (h *DoctorHandler) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	token, _, _ := requestIdentity(r)
	rescheduleAppointment(w, r, h.gw, h.logger, token)
}

// ListPatients renders the patients this doctor has seen. The plain read is
// scoped server-side by byDoctor; a search term goes to the server-side
// patient search instead, as the original screen did.
func (h *DoctorHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	token, doctorID, _ := requestIdentity(r)
	term := r.URL.Query().Get("search")
	fetch := func(ctx context.Context, tok string) ([]gateway.Patient, error) {
		if term == "" {
			return h.gw.Patients().ByDoctor(ctx, tok, doctorID)
		}
		return h.gw.Patients().Search(ctx, tok, gateway.PatientSearchRequest{
			FullName:   term,
			PageNumber: 1,
			PageSize:   h.searchCap,
			StatusIDs:  []int{1},
		})
	}
	page, err := evalList(r, token, fetch, h.pageSize,
		func(p gateway.Patient) []string { return []string{p.FullName, p.Email} }, nil)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: page.Items, Page: page.Number, TotalPages: page.TotalPages})
}

// ListRecords shows the records the doctor has filed. The backend scopes
// reads by the caller's token; no extra filter is applied here.
func (h *DoctorHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	token, _, _ := requestIdentity(r)
	fetch := func(ctx context.Context, tok string) ([]gateway.MedicalRecord, error) {
		return h.gw.MedicalRecords().List(ctx, tok)
	}
	page, err := evalList(r, token, fetch, h.pageSize,
		func(m gateway.MedicalRecord) []string { return []string{m.Diagnosis, m.TreatmentPlan, m.Symptoms} }, nil)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: page.Items, Page: page.Number, TotalPages: page.TotalPages})
}

// CreateRecord files a record for a completed visit. The doctor id comes
// from the session, not the payload.
func (h *DoctorHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	token, doctorID, _ := requestIdentity(r)
	var rec gateway.MedicalRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid record payload"})
		return
	}
	rec.DoctorID = doctorID
	if err := h.gw.MedicalRecords().Create(r.Context(), token, rec); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

func (h *DoctorHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	token, _, _ := requestIdentity(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid record id"})
		return
	}
	var rec gateway.MedicalRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid record payload"})
		return
	}
	if err := h.gw.MedicalRecords().Update(r.Context(), token, id, rec); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *DoctorHandler) ListPrescriptions(w http.ResponseWriter, r *http.Request) {
	token, _, _ := requestIdentity(r)
	fetch := func(ctx context.Context, tok string) ([]gateway.Prescription, error) {
		return h.gw.Prescriptions().List(ctx, tok)
	}
	page, err := evalList(r, token, fetch, h.pageSize,
		func(p gateway.Prescription) []string { return []string{p.MedicineName, p.Notes} }, nil)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: dashboard.PrescriptionRows(page.Items), Page: page.Number, TotalPages: page.TotalPages})
}

func (h *DoctorHandler) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	token, _, _ := requestIdentity(r)
	var rx gateway.Prescription
	if err := json.NewDecoder(r.Body).Decode(&rx); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid prescription payload"})
		return
	}
	if err := h.gw.Prescriptions().Create(r.Context(), token, rx); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

func (h *DoctorHandler) DeletePrescription(w http.ResponseWriter, r *http.Request) {
	token, _, _ := requestIdentity(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid prescription id"})
		return
	}
	if err := h.gw.Prescriptions().Delete(r.Context(), token, id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *DoctorHandler) ListTests(w http.ResponseWriter, r *http.Request) {
	token, _, _ := requestIdentity(r)
	fetch := func(ctx context.Context, tok string) ([]gateway.RecommendedTest, error) {
		return h.gw.RecommendedTests().List(ctx, tok)
	}
	page, err := evalList(r, token, fetch, h.pageSize, nil, nil)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: dashboard.RecommendedTestRows(page.Items), Page: page.Number, TotalPages: page.TotalPages})
}

func (h *DoctorHandler) CreateTest(w http.ResponseWriter, r *http.Request) {
	token, _, _ := requestIdentity(r)
	var rt gateway.RecommendedTest
	if err := json.NewDecoder(r.Body).Decode(&rt); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid test payload"})
		return
	}
	if err := h.gw.RecommendedTests().Create(r.Context(), token, rt); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

func (h *DoctorHandler) DeleteTest(w http.ResponseWriter, r *http.Request) {
	token, _, _ := requestIdentity(r)
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid test id"})
		return
	}
	if err := h.gw.RecommendedTests().Delete(r.Context(), token, id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
