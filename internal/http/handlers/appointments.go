package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/openhms/hospital-portal/internal/gateway"
	"github.com/openhms/hospital-portal/internal/lifecycle"
	"github.com/openhms/hospital-portal/pkg/logging"
)

// rescheduleRequest carries the new appointment time. Only the timestamp
// moves; the status is untouched by a reschedule.
type rescheduleRequest struct {
	AppointmentDateTime time.Time `json:"appointmentDateTime"`
}

// appointmentAction dispatches approve/reject/cancel/complete from the URL.
// Legality is not pre-checked here: the lifecycle table drives which buttons
// render, but the backend stays authoritative and its rejection (e.g. after
// a concurrent change) is surfaced unchanged.
func appointmentAction(w http.ResponseWriter, r *http.Request, gw *gateway.Client, logger *logging.Logger, token string) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid appointment id"})
		return
	}
	action := lifecycle.Action(chi.URLParam(r, "action"))
	if err := gw.Appointments().Do(r.Context(), token, action, id); err != nil {
		writeError(w, logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func rescheduleAppointment(w http.ResponseWriter, r *http.Request, gw *gateway.Client, logger *logging.Logger, token string) {
	id, ok := pathID(r, "id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid appointment id"})
		return
	}
	var req rescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AppointmentDateTime.IsZero() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "appointmentDateTime is required"})
		return
	}
	if err := gw.Appointments().Reschedule(r.Context(), token, id, req.AppointmentDateTime); err != nil {
		writeError(w, logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
