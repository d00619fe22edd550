package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type idRecord struct {
	ID int `json:"id"`
}

func TestDecodeListEnvelopeShapes(t *testing.T) {
	want := []idRecord{{ID: 1}, {ID: 2}}

	tests := []struct {
		name string
		body string
	}{
		{"bare array", `[{"id":1},{"id":2}]`},
		{"wrapper key", `{"$values":[{"id":1},{"id":2}]}`},
		{"named property", `{"doctors":[{"id":1},{"id":2}]}`},
		{"named property with wrapper", `{"doctors":{"$values":[{"id":1},{"id":2}]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeList[idRecord]([]byte(tt.body), "doctors")
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodeListUnrecognizedShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unrelated object", `{"foo":1}`},
		{"null", `null`},
		{"empty object", `{}`},
		{"empty body", ``},
		{"scalar", `42`},
		{"truncated json", `{"doctors":[{"id":1}`},
		{"named property wrong type", `{"doctors":"oops"}`},
		{"elements of wrong shape", `[{"id":"not-a-number"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeList[idRecord]([]byte(tt.body), "doctors")
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestDecodeListNamedPropertyTakesPrecedence(t *testing.T) {
	body := `{"doctors":[{"id":7}],"$values":[{"id":1}]}`
	got := decodeList[idRecord]([]byte(body), "doctors")
	assert.Equal(t, []idRecord{{ID: 7}}, got)
}

func TestDecodeListWithoutResourceFallsBackToWrapper(t *testing.T) {
	body := `{"$values":[{"id":3}]}`
	got := decodeList[idRecord]([]byte(body), "")
	assert.Equal(t, []idRecord{{ID: 3}}, got)
}

func TestDecodeListEmptyArray(t *testing.T) {
	got := decodeList[idRecord]([]byte(`[]`), "doctors")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
