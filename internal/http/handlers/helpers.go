// Package handlers exposes the role dashboards as thin JSON endpoints. Each
// handler fetches through the gateway, runs the shared list query, and
// decorates rows; it never patches local state after a mutation, it
// refetches, because the backend owns every record.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/openhms/hospital-portal/internal/dashboard"
	"github.com/openhms/hospital-portal/internal/gateway"
	"github.com/openhms/hospital-portal/internal/listquery"
	"github.com/openhms/hospital-portal/pkg/logging"
)

// listResponse is the JSON shape every list endpoint renders.
type listResponse struct {
	Items      any `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps gateway failures onto the portal's responses. Auth
// failures become a 401 so the front end clears its session and redirects
// to login; validation messages pass through unchanged.
func writeError(w http.ResponseWriter, logger *logging.Logger, err error) {
	var ge *gateway.Error
	if errors.As(err, &ge) {
		switch ge.Kind {
		case gateway.KindAuth:
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "session expired", "kind": "auth"})
			return
		case gateway.KindValidation:
			status := ge.Status
			if status == 0 {
				status = http.StatusBadRequest
			}
			writeJSON(w, status, map[string]string{"error": ge.Message, "kind": "validation"})
			return
		case gateway.KindTransport:
			writeJSON(w, http.StatusGatewayTimeout, map[string]string{"error": "hospital API unreachable", "kind": "transport"})
			return
		}
		logger.Error("hospital API failure", "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "hospital API error", "kind": "server"})
		return
	}
	logger.Error("request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v, err := strconv.Atoi(r.URL.Query().Get(key)); err == nil {
		return v
	}
	return fallback
}

func pathID(r *http.Request, param string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, param))
	return id, err == nil
}

// evalList runs one screen evaluation: refresh through the controller, then
// apply the request's search/status/page to the fetched set.
func evalList[T any](r *http.Request, token string, fetch dashboard.Fetcher[T], pageSize int,
	fields func(T) []string, statusOf func(T) string) (listquery.Page[T], error) {

	ctrl := dashboard.NewListController(fetch, pageSize, fields, statusOf)
	if err := ctrl.Refresh(r.Context(), token); err != nil {
		return listquery.Page[T]{}, err
	}
	ctrl.SetSearch(r.URL.Query().Get("search"))
	ctrl.SetStatusFilter(r.URL.Query().Get("status"))
	ctrl.SetPage(queryInt(r, "page", 1))
	return ctrl.Page(), nil
}
