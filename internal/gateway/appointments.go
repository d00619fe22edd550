package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/openhms/hospital-portal/internal/lifecycle"
)

const appointmentResource = "appointments"

// Appointments groups the appointment operations of a Client.
type Appointments struct {
	c *Client
}

// Appointments returns the appointment API.
func (c *Client) Appointments() Appointments { return Appointments{c: c} }

// List fetches every appointment (admin view).
func (a Appointments) List(ctx context.Context, token string) ([]Appointment, error) {
	return fetchList[Appointment](ctx, a.c, token, "/api/Appointment/all", appointmentResource, "list")
}

// ByStatus fetches appointments in one status.
func (a Appointments) ByStatus(ctx context.Context, token string, status lifecycle.Status) ([]Appointment, error) {
	return fetchList[Appointment](ctx, a.c, token, fmt.Sprintf("/api/Appointment/byStatus/%d", status), appointmentResource, "by_status")
}

// ByDoctor fetches the appointments assigned to a doctor.
func (a Appointments) ByDoctor(ctx context.Context, token string, doctorID int) ([]Appointment, error) {
	return fetchList[Appointment](ctx, a.c, token, fmt.Sprintf("/api/Appointment/byDoctor/%d", doctorID), appointmentResource, "by_doctor")
}

// ByPatient fetches the appointments booked by a patient.
func (a Appointments) ByPatient(ctx context.Context, token string, patientID int) ([]Appointment, error) {
	return fetchList[Appointment](ctx, a.c, token, fmt.Sprintf("/api/Appointment/byPatient/%d", patientID), appointmentResource, "by_patient")
}

// Get fetches one appointment.
func (a Appointments) Get(ctx context.Context, token string, id int) (Appointment, error) {
	return fetchOne[Appointment](ctx, a.c, token, fmt.Sprintf("/api/Appointment/%d", id), appointmentResource, "get")
}

// Book creates a pending appointment on behalf of a patient.
func (a Appointments) Book(ctx context.Context, token string, req BookAppointmentRequest) error {
	_, err := a.c.do(ctx, token, http.MethodPost, "/api/Appointment/book", req, appointmentResource, "book")
	return err
}

// Approve moves a pending appointment to scheduled.
func (a Appointments) Approve(ctx context.Context, token string, id int) error {
	return a.action(ctx, token, lifecycle.ActionApprove, id)
}

// Reject moves a pending appointment to rejected.
func (a Appointments) Reject(ctx context.Context, token string, id int) error {
	return a.action(ctx, token, lifecycle.ActionReject, id)
}

// Cancel moves a pending or scheduled appointment to cancelled.
func (a Appointments) Cancel(ctx context.Context, token string, id int) error {
	return a.action(ctx, token, lifecycle.ActionCancel, id)
}

// Complete moves a scheduled appointment to completed.
func (a Appointments) Complete(ctx context.Context, token string, id int) error {
	return a.action(ctx, token, lifecycle.ActionComplete, id)
}

// Reschedule rewrites the appointment's scheduled time without touching its
// status. The backend expects the new time as a JSON-encoded ISO-8601 string.
func (a Appointments) Reschedule(ctx context.Context, token string, id int, newTime time.Time) error {
	payload := newTime.UTC().Format(time.RFC3339)
	_, err := a.c.do(ctx, token, http.MethodPut, fmt.Sprintf("/api/Appointment/reschedule/%d", id), payload, appointmentResource, "reschedule")
	return err
}

// Do dispatches a lifecycle action by name; Reschedule has its own method
// because it carries a body. A verb outside the lifecycle table is caller
// error, classified as validation without touching the backend.
func (a Appointments) Do(ctx context.Context, token string, action lifecycle.Action, id int) error {
	switch action {
	case lifecycle.ActionApprove, lifecycle.ActionReject, lifecycle.ActionCancel, lifecycle.ActionComplete:
		return a.action(ctx, token, action, id)
	}
	return &Error{
		Kind:     KindValidation,
		Status:   http.StatusBadRequest,
		Resource: appointmentResource,
		Op:       string(action),
		Message:  fmt.Sprintf("unsupported action %q", action),
	}
}

func (a Appointments) action(ctx context.Context, token string, action lifecycle.Action, id int) error {
	_, err := a.c.do(ctx, token, http.MethodPut, fmt.Sprintf("/api/Appointment/%s/%d", action, id), nil, appointmentResource, string(action))
	return err
}
