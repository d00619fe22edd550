package gateway

import (
	"context"
	"fmt"
	"net/http"
)

const (
	recordResource       = "medicalRecords"
	prescriptionResource = "prescriptions"
	testResource         = "recommendedTests"
)

// MedicalRecords groups the medical-record operations of a Client.
type MedicalRecords struct {
	c *Client
}

// MedicalRecords returns the medical-record API.
func (c *Client) MedicalRecords() MedicalRecords { return MedicalRecords{c: c} }

// List fetches every medical record visible to the caller.
func (m MedicalRecords) List(ctx context.Context, token string) ([]MedicalRecord, error) {
	return fetchList[MedicalRecord](ctx, m.c, token, "/api/MedicalRecord", recordResource, "list")
}

// Get fetches one medical record.
func (m MedicalRecords) Get(ctx context.Context, token string, id int) (MedicalRecord, error) {
	return fetchOne[MedicalRecord](ctx, m.c, token, fmt.Sprintf("/api/MedicalRecord/%d", id), recordResource, "get")
}

// Create files a record after a completed visit.
func (m MedicalRecords) Create(ctx context.Context, token string, rec MedicalRecord) error {
	_, err := m.c.do(ctx, token, http.MethodPost, "/api/MedicalRecord", rec, recordResource, "create")
	return err
}

// Update rewrites the record's clinical fields.
func (m MedicalRecords) Update(ctx context.Context, token string, id int, rec MedicalRecord) error {
	_, err := m.c.do(ctx, token, http.MethodPut, fmt.Sprintf("/api/MedicalRecord/%d", id), rec, recordResource, "update")
	return err
}

// Delete soft-deactivates a record server-side.
func (m MedicalRecords) Delete(ctx context.Context, token string, id int) error {
	_, err := m.c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/MedicalRecord/%d", id), nil, recordResource, "delete")
	return err
}

// Prescriptions groups the prescription operations of a Client.
type Prescriptions struct {
	c *Client
}

// Prescriptions returns the prescription API.
func (c *Client) Prescriptions() Prescriptions { return Prescriptions{c: c} }

// List fetches every prescription visible to the caller.
func (p Prescriptions) List(ctx context.Context, token string) ([]Prescription, error) {
	return fetchList[Prescription](ctx, p.c, token, "/api/Prescription", prescriptionResource, "list")
}

// Get fetches one prescription.
func (p Prescriptions) Get(ctx context.Context, token string, id int) (Prescription, error) {
	return fetchOne[Prescription](ctx, p.c, token, fmt.Sprintf("/api/Prescription/%d", id), prescriptionResource, "get")
}

// Create writes a prescription against a medical record. Prescriptions are
// immutable once created; there is no update path in the interface.
func (p Prescriptions) Create(ctx context.Context, token string, rx Prescription) error {
	_, err := p.c.do(ctx, token, http.MethodPost, "/api/Prescription", rx, prescriptionResource, "create")
	return err
}

// Delete removes a prescription via the explicit delete endpoint.
func (p Prescriptions) Delete(ctx context.Context, token string, id int) error {
	_, err := p.c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/Prescription/%d", id), nil, prescriptionResource, "delete")
	return err
}

// RecommendedTests groups the recommended-test operations of a Client.
type RecommendedTests struct {
	c *Client
}

// RecommendedTests returns the recommended-test API.
func (c *Client) RecommendedTests() RecommendedTests { return RecommendedTests{c: c} }

// List fetches every prescription/test link. The backend stores only the
// link; display metadata comes from the local test catalog with the
// server-supplied fields as fallback.
func (r RecommendedTests) List(ctx context.Context, token string) ([]RecommendedTest, error) {
	return fetchList[RecommendedTest](ctx, r.c, token, "/api/RecommendedTest", testResource, "list")
}

// Get fetches one prescription/test link.
func (r RecommendedTests) Get(ctx context.Context, token string, id int) (RecommendedTest, error) {
	return fetchOne[RecommendedTest](ctx, r.c, token, fmt.Sprintf("/api/RecommendedTest/%d", id), testResource, "get")
}

// Create links a test to a prescription.
func (r RecommendedTests) Create(ctx context.Context, token string, rt RecommendedTest) error {
	_, err := r.c.do(ctx, token, http.MethodPost, "/api/RecommendedTest", rt, testResource, "create")
	return err
}

// Delete removes a prescription/test link.
func (r RecommendedTests) Delete(ctx context.Context, token string, id int) error {
	_, err := r.c.do(ctx, token, http.MethodDelete, fmt.Sprintf("/api/RecommendedTest/%d", id), nil, testResource, "delete")
	return err
}
