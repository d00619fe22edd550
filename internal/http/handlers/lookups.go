package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/openhms/hospital-portal/internal/catalog"
)

// LookupHandler serves the static reference catalogs every dashboard shares:
// status names, lab tests, and dosage patterns. No auth is required; the
// data ships with the portal.
type LookupHandler struct{}

// NewLookupHandler creates the lookup handler.
func NewLookupHandler() *LookupHandler { return &LookupHandler{} }

// Routes wires the lookup endpoints.
func (h *LookupHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/statuses/appointment", h.AppointmentStatuses)
	r.Get("/statuses/billing", h.BillingStatuses)
	r.Get("/tests", h.Tests)
	r.Get("/patterns", h.Patterns)
	return r
}

func (h *LookupHandler) AppointmentStatuses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.AppointmentStatuses())
}

func (h *LookupHandler) BillingStatuses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.BillingStatuses())
}

func (h *LookupHandler) Tests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Tests())
}

func (h *LookupHandler) Patterns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Patterns())
}
