package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhms/hospital-portal/internal/gateway"
	"github.com/openhms/hospital-portal/internal/lifecycle"
)

func TestAppointmentRows(t *testing.T) {
	appts := []gateway.Appointment{
		{AppointmentID: 1, StatusID: 1, PatientName: "John Doe"},
		{AppointmentID: 2, StatusID: 2},
		{AppointmentID: 3, StatusID: 4},
	}
	rows := AppointmentRows(appts)
	require.Len(t, rows, 3)

	assert.Equal(t, "Pending", rows[0].StatusName)
	assert.Equal(t, []lifecycle.Action{
		lifecycle.ActionApprove, lifecycle.ActionReject, lifecycle.ActionReschedule, lifecycle.ActionCancel,
	}, rows[0].Actions)

	assert.Equal(t, "Scheduled", rows[1].StatusName)
	assert.Equal(t, []lifecycle.Action{
		lifecycle.ActionComplete, lifecycle.ActionReschedule, lifecycle.ActionCancel,
	}, rows[1].Actions)

	assert.Equal(t, "Cancelled", rows[2].StatusName)
	assert.Empty(t, rows[2].Actions)
}

func TestAppointmentStatusNameFallsBackToServer(t *testing.T) {
	a := gateway.Appointment{StatusID: 99, StatusName: "Archived"}
	assert.Equal(t, "Archived", AppointmentStatusName(a))

	// Catalog wins when it knows the code.
	a = gateway.Appointment{StatusID: 3, StatusName: "Done"}
	assert.Equal(t, "Completed", AppointmentStatusName(a))
}

func TestBillingRows(t *testing.T) {
	rows := BillingRows([]gateway.Billing{
		{BillingID: 1, StatusID: 2},
		{BillingID: 2, StatusID: 77, StatusName: "Written Off"},
	})
	require.Len(t, rows, 2)
	assert.Equal(t, "Paid", rows[0].StatusName)
	assert.Equal(t, "Written Off", rows[1].StatusName)
}

func TestRecommendedTestRowsJoinCatalogFirst(t *testing.T) {
	rows := RecommendedTestRows([]gateway.RecommendedTest{
		{RecommendedTestID: 1, TestID: 3, TestName: "stale server name", Price: 1.0},
		{RecommendedTestID: 2, TestID: 999, TestName: "Genome Panel", Price: 9000.0},
	})
	require.Len(t, rows, 2)

	// Known test ID: catalog metadata wins over server fields.
	assert.Equal(t, "MRI", rows[0].TestName)
	assert.Equal(t, 2500.0, rows[0].Price)
	assert.NotEmpty(t, rows[0].Instructions)

	// Unknown test ID: server-supplied fields are the fallback.
	assert.Equal(t, "Genome Panel", rows[1].TestName)
	assert.Equal(t, 9000.0, rows[1].Price)
	assert.Empty(t, rows[1].Instructions)
}

func TestPrescriptionRows(t *testing.T) {
	rows := PrescriptionRows([]gateway.Prescription{
		{PrescriptionID: 1, PatternID: 1},
		{PrescriptionID: 2, PatternID: 42, PatternCode: "2-2-2", DosageTiming: "AF"},
	})
	require.Len(t, rows, 2)
	assert.Equal(t, "1-0-0", rows[0].PatternCode)
	assert.Equal(t, "BF", rows[0].Timing)
	assert.Equal(t, "2-2-2", rows[1].PatternCode)
	assert.Equal(t, "AF", rows[1].Timing)
}
