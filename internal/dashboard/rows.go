package dashboard

import (
	"github.com/openhms/hospital-portal/internal/catalog"
	"github.com/openhms/hospital-portal/internal/gateway"
	"github.com/openhms/hospital-portal/internal/lifecycle"
)

// AppointmentRow is one rendered appointment: the record, its resolved
// status name, and the actions the current status offers.
type AppointmentRow struct {
	Appointment gateway.Appointment `json:"appointment"`
	StatusName  string              `json:"statusName"`
	Actions     []lifecycle.Action  `json:"actions"`
}

// AppointmentRows decorates fetched appointments for display.
func AppointmentRows(appts []gateway.Appointment) []AppointmentRow {
	rows := make([]AppointmentRow, 0, len(appts))
	for _, a := range appts {
		rows = append(rows, AppointmentRow{
			Appointment: a,
			StatusName:  AppointmentStatusName(a),
			Actions:     lifecycle.AvailableActions(lifecycle.Status(a.StatusID)),
		})
	}
	return rows
}

// AppointmentStatusName resolves a status name from the local catalog first,
// falling back to whatever the server sent.
func AppointmentStatusName(a gateway.Appointment) string {
	if name := catalog.NameFor(catalog.KindAppointment, a.StatusID); name != "" {
		return name
	}
	return a.StatusName
}

// AppointmentSearchFields returns the text the search box matches against.
func AppointmentSearchFields(a gateway.Appointment) []string {
	return []string{a.PatientName, a.DoctorName}
}

// BillingRow is one rendered billing record with its resolved status name.
type BillingRow struct {
	Billing    gateway.Billing `json:"billing"`
	StatusName string          `json:"statusName"`
}

// BillingRows decorates fetched billing records for display.
func BillingRows(bills []gateway.Billing) []BillingRow {
	rows := make([]BillingRow, 0, len(bills))
	for _, b := range bills {
		rows = append(rows, BillingRow{Billing: b, StatusName: BillingStatusName(b)})
	}
	return rows
}

// BillingStatusName resolves a billing status name, catalog first.
func BillingStatusName(b gateway.Billing) string {
	if name := catalog.NameFor(catalog.KindBilling, b.StatusID); name != "" {
		return name
	}
	return b.StatusName
}

// RecommendedTestRow joins a prescription/test link with the master catalog.
// The catalog wins when it knows the test; the server-supplied fields are
// the fallback. Which side is authoritative is an unresolved
// data-consistency question, so both paths are kept.
type RecommendedTestRow struct {
	Link         gateway.RecommendedTest `json:"link"`
	TestName     string                  `json:"testName"`
	Price        float64                 `json:"price"`
	Instructions string                  `json:"instructions,omitempty"`
}

// RecommendedTestRows decorates fetched test links for display.
func RecommendedTestRows(links []gateway.RecommendedTest) []RecommendedTestRow {
	rows := make([]RecommendedTestRow, 0, len(links))
	for _, link := range links {
		row := RecommendedTestRow{Link: link, TestName: link.TestName, Price: link.Price}
		if tst, ok := catalog.TestByID(link.TestID); ok {
			row.TestName = tst.Name
			row.Price = tst.Price
			row.Instructions = tst.Instructions
		}
		rows = append(rows, row)
	}
	return rows
}

// PrescriptionRow is one rendered prescription with its dosage pattern
// resolved from the local catalog where known.
type PrescriptionRow struct {
	Prescription gateway.Prescription `json:"prescription"`
	PatternCode  string               `json:"patternCode"`
	Timing       string               `json:"timing,omitempty"`
}

// PrescriptionRows decorates fetched prescriptions for display.
func PrescriptionRows(rxs []gateway.Prescription) []PrescriptionRow {
	rows := make([]PrescriptionRow, 0, len(rxs))
	for _, rx := range rxs {
		row := PrescriptionRow{Prescription: rx, PatternCode: rx.PatternCode, Timing: rx.DosageTiming}
		if p, ok := catalog.PatternByID(rx.PatternID); ok {
			row.PatternCode = p.Code
			row.Timing = p.Timing
		}
		rows = append(rows, row)
	}
	return rows
}
