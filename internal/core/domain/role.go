package domain

import "strings"

// Role is the closed set of marketplace actors.
type Role string

const (
	RoleCreator Role = "creator"
	RoleCompany Role = "company"
	RoleAdmin   Role = "admin"
)

// Capability is a server-side permission checked per route.
type Capability string

const (
	CapRecordConversion Capability = "conversion:record"
	CapReadAnalytics    Capability = "analytics:read"
	CapReadFraudStats   Capability = "fraud:read"
	CapRunRetention     Capability = "retention:run"
)

var roleCapabilities = map[Role][]Capability{
	RoleCreator: {CapReadAnalytics},
	RoleCompany: {CapReadAnalytics, CapRecordConversion},
	RoleAdmin:   {CapReadAnalytics, CapRecordConversion, CapReadFraudStats, CapRunRetention},
}

// ParseRole returns ErrInvalidInput for anything outside the closed set.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := roleCapabilities[r]; !ok {
		return "", ErrInvalidInput
	}
	return r, nil
}

// Can reports whether r holds c.
func (r Role) Can(c Capability) bool {
	for _, have := range roleCapabilities[r] {
		if have == c {
			return true
		}
	}
	return false
}
