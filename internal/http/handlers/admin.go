package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/openhms/hospital-portal/internal/catalog"
	"github.com/openhms/hospital-portal/internal/dashboard"
	"github.com/openhms/hospital-portal/internal/gateway"
	httpmiddleware "github.com/openhms/hospital-portal/internal/http/middleware"
	"github.com/openhms/hospital-portal/internal/lifecycle"
	"github.com/openhms/hospital-portal/pkg/logging"
)

// AdminHandler serves the admin dashboard screens.
type AdminHandler struct {
	gw        *gateway.Client
	logger    *logging.Logger
	pageSize  int
	searchCap int
}

// NewAdminHandler creates the admin dashboard handler.
func NewAdminHandler(gw *gateway.Client, logger *logging.Logger, pageSize, searchCap int) *AdminHandler {
	if logger == nil {
		logger = logging.Default()
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if searchCap < 1 {
		searchCap = 100
	}
	return &AdminHandler{gw: gw, logger: logger, pageSize: pageSize, searchCap: searchCap}
}

// Routes wires the admin endpoints.
func (h *AdminHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/appointments", h.ListAppointments)
	r.Put("/appointments/{id}/reschedule", h.RescheduleAppointment)
	r.Put("/appointments/{id}/{action}", h.AppointmentAction)

	r.Get("/doctors", h.ListDoctors)
	r.Get("/doctors/form-data", h.DoctorFormData)
	r.Post("/doctors", h.CreateDoctor)
	r.Put("/doctors/{id}", h.UpdateDoctor)
	r.Delete("/doctors/{id}", h.DeleteDoctor)

	r.Get("/patients", h.ListPatients)
	r.Get("/patients/masters", h.PatientMasters)
	r.Post("/patients", h.CreatePatient)
	r.Put("/patients/{id}", h.UpdatePatient)
	r.Delete("/patients/{id}", h.DeletePatient)

	r.Get("/records", h.ListRecords)
	r.Put("/records/{id}", h.UpdateRecord)
	r.Delete("/records/{id}", h.DeleteRecord)

	r.Get("/prescriptions", h.ListPrescriptions)
	r.Get("/tests", h.ListTests)

	r.Get("/billings", h.ListBillings)
	r.Post("/billings", h.CreateBilling)
	r.Put("/billings/{id}", h.UpdateBilling)
	r.Delete("/billings/{id}", h.DeleteBilling)
	return r
}

func (h *AdminHandler) token(r *http.Request) string {
	ident, _ := httpmiddleware.IdentityFromContext(r.Context())
	return ident.Token
}

// ListAppointments renders the admin appointment list. A status filter maps
// to the byStatus read, matching how the admin screen has always fetched.
func (h *AdminHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	fetch := func(ctx context.Context, token string) ([]gateway.Appointment, error) {
		return h.gw.Appointments().List(ctx, token)
	}
	if name := r.URL.Query().Get("status"); name != "" {
		if statusID, ok := catalog.StatusID(catalog.KindAppointment, name); ok {
			fetch = func(ctx context.Context, token string) ([]gateway.Appointment, error) {
				return h.gw.Appointments().ByStatus(ctx, token, lifecycle.Status(statusID))
			}
		}
	}
	page, err := evalList(r, h.token(r), fetch, h.pageSize, dashboard.AppointmentSearchFields, dashboard.AppointmentStatusName)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: dashboard.AppointmentRows(page.Items), Page: page.Number, TotalPages: page.TotalPages})
}

func (h *AdminHandler) AppointmentAction(w http.ResponseWriter, r *http.Request) {
	appointmentAction(w, r, h.gw, h.logger, h.token(r))
}

func (h *AdminHandler) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	rescheduleAppointment(w, r, h.gw, h.logger, h.token(r))
}

// ListDoctors renders the doctor roster. A search term goes to the
// server-side search endpoint (capped at searchCap records in one shot);
// the result still paginates locally.
func (h *AdminHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")
	statusIDs := []int{1}
	if queryInt(r, "inactive", 0) == 1 {
		statusIDs = []int{2}
	}
	fetch := func(ctx context.Context, token string) ([]gateway.Doctor, error) {
		if term == "" {
			return h.gw.Doctors().List(ctx, token)
		}
		return h.gw.Doctors().Search(ctx, token, gateway.DoctorSearchRequest{
			Name:              term,
			SpecializationIDs: []int{},
			QualificationIDs:  []int{},
			ExperienceRange:   gateway.Range{MinValue: 0, MaxValue: 100},
			PageNumber:        1,
			PageSize:          h.searchCap,
			StatusIDs:         statusIDs,
		})
	}
	page, err := evalList(r, h.token(r), fetch, h.pageSize,
		func(d gateway.Doctor) []string { return []string{d.Name, d.Email} }, nil)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: page.Items, Page: page.Number, TotalPages: page.TotalPages})
}

func (h *AdminHandler) DoctorFormData(w http.ResponseWriter, r *http.Request) {
	fd, err := h.gw.Doctors().FormData(r.Context(), h.token(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, fd)
}

func (h *AdminHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var doc gateway.Doctor
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid doctor payload"})
		return
	}
	if err := h.gw.Doctors().Create(r.Context(), h.token(r), doc); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

func (h *AdminHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid doctor id"})
		return
	}
	var doc gateway.Doctor
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid doctor payload"})
		return
	}
	if err := h.gw.Doctors().Update(r.Context(), h.token(r), id, doc); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *AdminHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid doctor id"})
		return
	}
	if err := h.gw.Doctors().Delete(r.Context(), h.token(r), id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListPatients mirrors ListDoctors for the patient roster.
func (h *AdminHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")
	statusIDs := []int{1}
	if queryInt(r, "inactive", 0) == 1 {
		statusIDs = []int{2}
	}
	fetch := func(ctx context.Context, token string) ([]gateway.Patient, error) {
		if term == "" {
			return h.gw.Patients().List(ctx, token)
		}
		return h.gw.Patients().Search(ctx, token, gateway.PatientSearchRequest{
			FullName:   term,
			PageNumber: 1,
			PageSize:   h.searchCap,
			StatusIDs:  statusIDs,
		})
	}
	page, err := evalList(r, h.token(r), fetch, h.pageSize,
		func(p gateway.Patient) []string { return []string{p.FullName, p.Email} }, nil)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: page.Items, Page: page.Number, TotalPages: page.TotalPages})
}

func (h *AdminHandler) PatientMasters(w http.ResponseWriter, r *http.Request) {
	m, err := h.gw.Patients().Masters(r.Context(), h.token(r))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *AdminHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var pat gateway.Patient
	if err := json.NewDecoder(r.Body).Decode(&pat); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid patient payload"})
		return
	}
	if err := h.gw.Patients().Create(r.Context(), h.token(r), pat); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

func (h *AdminHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid patient id"})
		return
	}
	var pat gateway.Patient
	if err := json.NewDecoder(r.Body).Decode(&pat); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid patient payload"})
		return
	}
	if err := h.gw.Patients().Update(r.Context(), h.token(r), id, pat); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *AdminHandler) DeletePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid patient id"})
		return
	}
	if err := h.gw.Patients().Delete(r.Context(), h.token(r), id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *AdminHandler) ListRecords(w http.ResponseWriter, r *http.Request) {
	fetch := func(ctx context.Context, token string) ([]gateway.MedicalRecord, error) {
		return h.gw.MedicalRecords().List(ctx, token)
	}
	page, err := evalList(r, h.token(r), fetch, h.pageSize,
		func(m gateway.MedicalRecord) []string { return []string{m.Diagnosis, m.TreatmentPlan, m.Symptoms} }, nil)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: page.Items, Page: page.Number, TotalPages: page.TotalPages})
}

func (h *AdminHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
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
	if err := h.gw.MedicalRecords().Update(r.Context(), h.token(r), id, rec); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *AdminHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid record id"})
		return
	}
	if err := h.gw.MedicalRecords().Delete(r.Context(), h.token(r), id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *AdminHandler) ListPrescriptions(w http.ResponseWriter, r *http.Request) {
	fetch := func(ctx context.Context, token string) ([]gateway.Prescription, error) {
		return h.gw.Prescriptions().List(ctx, token)
	}
	page, err := evalList(r, h.token(r), fetch, h.pageSize,
		func(p gateway.Prescription) []string { return []string{p.MedicineName, p.Notes} }, nil)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: dashboard.PrescriptionRows(page.Items), Page: page.Number, TotalPages: page.TotalPages})
}

func (h *AdminHandler) ListTests(w http.ResponseWriter, r *http.Request) {
	fetch := func(ctx context.Context, token string) ([]gateway.RecommendedTest, error) {
		return h.gw.RecommendedTests().List(ctx, token)
	}
	page, err := evalList(r, h.token(r), fetch, h.pageSize, nil, nil)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: dashboard.RecommendedTestRows(page.Items), Page: page.Number, TotalPages: page.TotalPages})
}

// ListBillings renders billing records, optionally bounded by a date range.
func (h *AdminHandler) ListBillings(w http.ResponseWriter, r *http.Request) {
	fromStr, toStr := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	fetch := func(ctx context.Context, token string) ([]gateway.Billing, error) {
		return h.gw.Billings().List(ctx, token)
	}
	if fromStr != "" && toStr != "" {
		from, errFrom := time.Parse("2006-01-02", fromStr)
		to, errTo := time.Parse("2006-01-02", toStr)
		if errFrom != nil || errTo != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "from/to must be YYYY-MM-DD"})
			return
		}
		fetch = func(ctx context.Context, token string) ([]gateway.Billing, error) {
			return h.gw.Billings().ByDateRange(ctx, token, from, to)
		}
	}
	page, err := evalList(r, h.token(r), fetch, h.pageSize, nil, dashboard.BillingStatusName)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: dashboard.BillingRows(page.Items), Page: page.Number, TotalPages: page.TotalPages})
}

func (h *AdminHandler) CreateBilling(w http.ResponseWriter, r *http.Request) {
	var bill gateway.Billing
	if err := json.NewDecoder(r.Body).Decode(&bill); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid billing payload"})
		return
	}
	if err := h.gw.Billings().Create(r.Context(), h.token(r), bill); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

func (h *AdminHandler) UpdateBilling(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid billing id"})
		return
	}
	var bill gateway.Billing
	if err := json.NewDecoder(r.Body).Decode(&bill); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid billing payload"})
		return
	}
	if err := h.gw.Billings().Update(r.Context(), h.token(r), id, bill); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *AdminHandler) DeleteBilling(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid billing id"})
		return
	}
	if err := h.gw.Billings().Delete(r.Context(), h.token(r), id); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
