// Package session replaces the ambient browser-storage fields the dashboards
// used to read (token, role, doctorID/patientID) with an explicit identity
// object passed into gateway calls and screen constructors.
package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the dashboard a user lands on.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleDoctor  Role = "Doctor"
	RolePatient Role = "Patient"
)

// Identity is everything the client side knows about the signed-in user.
// The bearer token is read-only from the core's perspective; it is handed
// through to the backend unchanged and never refreshed locally.
type Identity struct {
	Token     string `json:"token"`
	Role      Role   `json:"role"`
	UserID    int    `json:"userID,omitempty"`
	DoctorID  int    `json:"doctorID,omitempty"`
	PatientID int    `json:"patientID,omitempty"`
}

// FromToken extracts identity fields from the backend-issued JWT without
// verifying the signature. The backend remains the authority: a forged or
// expired token still fails on the first API call with a 401.
func FromToken(raw string) (Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Identity{}, fmt.Errorf("session: empty token")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return Identity{}, fmt.Errorf("session: parse token: %w", err)
	}

	id := Identity{Token: raw}
	id.Role = Role(claimString(claims, "role"))
	id.UserID = claimInt(claims, "nameid", "sub", "userID")
	id.DoctorID = claimInt(claims, "doctorID")
	id.PatientID = claimInt(claims, "patientID")
	return id, nil
}

func claimString(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if v, ok := claims[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// claimInt tolerates the backend serializing numeric claims as either JSON
// numbers or strings.
func claimInt(claims jwt.MapClaims, keys ...string) int {
	for _, k := range keys {
		switch v := claims[k].(type) {
		case float64:
			return int(v)
		case string:
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
	}
	return 0
}
