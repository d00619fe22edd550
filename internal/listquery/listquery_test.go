package listquery

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID          int
	PatientName string
	DoctorName  string
	Status      string
}

func rowFields(r row) []string { return []string{r.PatientName, r.DoctorName} }
func rowStatus(r row) string   { return r.Status }

func makeRows(n int) []row {
	rows := make([]row, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, row{ID: i, PatientName: fmt.Sprintf("Patient %d", i), Status: "Pending"})
	}
	return rows
}

func TestApplyPagination(t *testing.T) {
	rows := makeRows(23)
	q := Query{Page: 1, PageSize: 10}

	p1 := Apply(rows, q, rowFields, rowStatus)
	require.Len(t, p1.Items, 10)
	assert.Equal(t, 1, p1.Items[0].ID)
	assert.Equal(t, 10, p1.Items[9].ID)
	assert.Equal(t, 3, p1.TotalPages)

	q.Page = 3
	p3 := Apply(rows, q, rowFields, rowStatus)
	require.Len(t, p3.Items, 3)
	assert.Equal(t, 21, p3.Items[0].ID)
	assert.Equal(t, 23, p3.Items[2].ID)

	// Page 4 does not exist; the last valid page renders instead.
	q.Page = 4
	p4 := Apply(rows, q, rowFields, rowStatus)
	assert.Equal(t, 3, p4.Number)
	assert.Equal(t, p3.Items, p4.Items)
}

func TestApplyIsIdempotent(t *testing.T) {
	rows := makeRows(15)
	q := Query{Term: "patient 1", Page: 1, PageSize: 5}
	first := Apply(rows, q, rowFields, rowStatus)
	second := Apply(rows, q, rowFields, rowStatus)
	assert.Equal(t, first, second)
}

func TestPageConcatenationReconstructsFilteredSequence(t *testing.T) {
	for _, tc := range []struct{ n, pageSize int }{
		{0, 1}, {1, 1}, {9, 10}, {10, 10}, {11, 10}, {23, 10}, {23, 7},
	} {
		rows := makeRows(tc.n)
		q := Query{PageSize: tc.pageSize}
		wantPages := (tc.n + tc.pageSize - 1) / tc.pageSize

		var got []row
		p := Apply(rows, Query{Page: 1, PageSize: tc.pageSize}, rowFields, rowStatus)
		assert.Equal(t, wantPages, p.TotalPages, "n=%d pageSize=%d", tc.n, tc.pageSize)
		for page := 1; page <= p.TotalPages; page++ {
			q.Page = page
			got = append(got, Apply(rows, q, rowFields, rowStatus).Items...)
		}
		assert.Equal(t, rows, append([]row(nil), got...), "n=%d pageSize=%d", tc.n, tc.pageSize)
	}
}

func TestZeroMatchesRendersSingleEmptyPage(t *testing.T) {
	p := Apply([]row{}, Query{Page: 5, PageSize: 10}, rowFields, rowStatus)
	assert.Empty(t, p.Items)
	assert.Equal(t, 0, p.TotalPages)
	assert.Equal(t, 1, p.Number)
}

func TestSearchTermMatchesAnyFieldCaseInsensitively(t *testing.T) {
	rows := []row{
		{ID: 1, PatientName: "John Doe", Status: "Pending"},
		{ID: 2, PatientName: "Jane", Status: "Pending"},
		{ID: 3, PatientName: "Ann", DoctorName: "Dr. Johnson", Status: "Pending"},
	}
	p := Apply(rows, Query{Term: "john", Page: 1, PageSize: 10}, rowFields, rowStatus)
	require.Len(t, p.Items, 2)
	assert.Equal(t, 1, p.Items[0].ID)
	assert.Equal(t, 3, p.Items[1].ID)
}

func TestStatusFilterIsCaseSensitiveEquality(t *testing.T) {
	rows := []row{
		{ID: 1, PatientName: "A", Status: "Pending"},
		{ID: 2, PatientName: "B", Status: "Scheduled"},
		{ID: 3, PatientName: "C", Status: "pending"},
	}
	p := Apply(rows, Query{StatusFilter: "Pending", Page: 1, PageSize: 10}, rowFields, rowStatus)
	require.Len(t, p.Items, 1)
	assert.Equal(t, 1, p.Items[0].ID)
}

func TestStatusFilterAppliesBeforeSearch(t *testing.T) {
	rows := []row{
		{ID: 1, PatientName: "John", Status: "Pending"},
		{ID: 2, PatientName: "John", Status: "Scheduled"},
	}
	p := Apply(rows, Query{Term: "john", StatusFilter: "Scheduled", Page: 1, PageSize: 10}, rowFields, rowStatus)
	require.Len(t, p.Items, 1)
	assert.Equal(t, 2, p.Items[0].ID)
}

func TestStateResetsPageOnQueryChange(t *testing.T) {
	s := NewState(10)
	s.SetPage(3, 5)
	assert.Equal(t, 3, s.Page())

	s.SetTerm("john")
	assert.Equal(t, 1, s.Page())

	s.SetPage(2, 5)
	s.SetStatusFilter("Pending")
	assert.Equal(t, 1, s.Page())

	// Setting the same term again is not a change.
	s.SetPage(4, 5)
	s.SetTerm("john")
	assert.Equal(t, 4, s.Page())
}

func TestStateSetPageOutOfRangeIsNoOp(t *testing.T) {
	s := NewState(10)
	s.SetPage(2, 3)
	assert.Equal(t, 2, s.Page())

	s.SetPage(0, 3)
	assert.Equal(t, 2, s.Page())
	s.SetPage(4, 3)
	assert.Equal(t, 2, s.Page())
	s.SetPage(1, 0)
	assert.Equal(t, 2, s.Page())
}

func TestStateQuery(t *testing.T) {
	s := NewState(25)
	s.SetTerm(" Jane ")
	s.SetStatusFilter("Scheduled")
	q := s.Query()
	assert.Equal(t, Query{Term: " Jane ", StatusFilter: "Scheduled", Page: 1, PageSize: 25}, q)
}
