package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const doctorResource = "doctors"

// Doctors groups the doctor operations of a Client.
type Doctors struct {
	c *Client
}

// Doctors returns the doctor API.
func (c *Client) Doctors() Doctors { return Doctors{c: c} }

// List fetches every doctor.
func (d Doctors) List(ctx context.Context, token string) ([]Doctor, error) {
	return fetchList[Doctor](ctx, d.c, token, "/api/Doctor", doctorResource, "list")
}

// Get fetches one doctor.
func (d Doctors) Get(ctx context.Context, token string, id int) (Doctor, error) {
	return fetchOne[Doctor](ctx, d.c, token, fmt.Sprintf("/api/Doctor/%d", id), doctorResource, "get")
}

// Create registers a doctor.
func (d Doctors) Create(ctx context.Context, token string, doc Doctor) error {
	_, err := d.c.do(ctx, token, http.MethodPost, "/api/Doctor", doc, doctorResource, "create")
	return err
}

// Update rewrites a doctor record.
func (d Doctors) Update(ctx context.Context, token string, id int, doc Doctor) error {
	_, err := d.c.do(ctx, token, http.MethodPut, fmt.Sprintf("/api/Doctor/%d", id), doc, doctorResource, "update")
	return err
}

// Delete removes a doctor. Normal deactivation is a status flip via Update;
// this is the explicit delete endpoint.
func (d Doctors) Delete(ctx context.Context, token string, id int) error {
	_, err := d.c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/Doctor/%d", id), nil, doctorResource, "delete")
	return err
}

// Search runs the server-side doctor search. The result set is capped at
// req.PageSize in one response and arrives under the "doctors" key.
func (d Doctors) Search(ctx context.Context, token string, req DoctorSearchRequest) ([]Doctor, error) {
	body, err := d.c.do(ctx, token, http.MethodPost, "/api/Doctor/search", req, doctorResource, "search")
	if err != nil {
		return nil, err
	}
	return decodeList[Doctor](body, doctorResource), nil
}

// FormData fetches the specialization and qualification lookups for doctor
// forms. Each list uses its own envelope inside the response object.
func (d Doctors) FormData(ctx context.Context, token string) (DoctorFormData, error) {
	body, err := d.c.do(ctx, token, http.MethodGet, "/api/Doctor/form-data", nil, doctorResource, "form_data")
	if err != nil {
		return DoctorFormData{}, err
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return DoctorFormData{}, nil
	}
	return DoctorFormData{
		Specializations: decodeList[Lookup](obj["specializations"], ""),
		Qualifications:  decodeList[Lookup](obj["qualifications"], ""),
	}, nil
}
