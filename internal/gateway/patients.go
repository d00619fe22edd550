package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const patientResource = "patients"

// Patients groups the patient operations of a Client.
type Patients struct {
	c *Client
}

// Patients returns the patient API.
func (c *Client) Patients() Patients { return Patients{c: c} }

// List fetches every patient.
func (p Patients) List(ctx context.Context, token string) ([]Patient, error) {
	return fetchList[Patient](ctx, p.c, token, "/api/Patient", patientResource, "list")
}

// ByDoctor fetches the patients a doctor has seen or has booked.
func (p Patients) ByDoctor(ctx context.Context, token string, doctorID int) ([]Patient, error) {
	return fetchList[Patient](ctx, p.c, token, fmt.Sprintf("/api/Patient/byDoctor/%d", doctorID), patientResource, "by_doctor")
}

// Get fetches one patient.
func (p Patients) Get(ctx context.Context, token string, id int) (Patient, error) {
	return fetchOne[Patient](ctx, p.c, token, fmt.Sprintf("/api/Patient/%d", id), patientResource, "get")
}

// Create registers a patient.
func (p Patients) Create(ctx context.Context, token string, pat Patient) error {
	_, err := p.c.do(ctx, token, http.MethodPost, "/api/Patient", pat, patientResource, "create")
	return err
}

// Update rewrites a patient record.
func (p Patients) Update(ctx context.Context, token string, id int, pat Patient) error {
	_, err := p.c.do(ctx, token, http.MethodPut, fmt.Sprintf("/api/Patient/%d", id), pat, patientResource, "update")
	return err
}

// Delete removes a patient via the explicit delete endpoint.
func (p Patients) Delete(ctx context.Context, token string, id int) error {
	_, err := p.c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/Patient/%d", id), nil, patientResource, "delete")
	return err
}

// Search runs the server-side patient search; results arrive under the
// "patients" key, capped at req.PageSize in one shot.
func (p Patients) Search(ctx context.Context, token string, req PatientSearchRequest) ([]Patient, error) {
	body, err := p.c.do(ctx, token, http.MethodPost, "/api/Patient/search", req, patientResource, "search")
	if err != nil {
		return nil, err
	}
	return decodeList[Patient](body, patientResource), nil
}

// Masters fetches the gender lookup for patient forms.
func (p Patients) Masters(ctx context.Context, token string) (PatientMasters, error) {
	body, err := p.c.do(ctx, token, http.MethodGet, "/api/Patient/masters", nil, patientResource, "masters")
	if err != nil {
		return PatientMasters{}, err
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return PatientMasters{}, nil
	}
	return PatientMasters{
		Genders: decodeList[Lookup](obj["genders"], ""),
	}, nil
}
