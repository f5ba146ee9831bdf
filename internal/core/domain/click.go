package domain

import (
	"strings"
	"time"

	"github.com/mssola/user_agent"
)

// UnknownLocation is recorded when geo lookup misses, fails or times out.
const UnknownLocation = "Unknown"

// ClickInput is what the redirect path knows about an inbound click.
type ClickInput struct {
	IP        string
	UserAgent string
	Referer   string
	Timestamp time.Time
}

// ClickEvent is one admitted click in the ledger. Rows are append-only and
// never updated; they are removed only by retention cleanup.
type ClickEvent struct {
	ID            string
	ApplicationID string
	OfferID       string
	CreatorID     string
	IPAddress     string
	UserAgent     string
	Referer       string
	Country       string
	City          string
	DeviceType    string
	Browser       string
	Timestamp     time.Time
}

// GeoLocation is the best-effort result of an IP lookup.
type GeoLocation struct {
	Country string
	City    string
}

// OrUnknown fills empty fields with UnknownLocation.
func (g GeoLocation) OrUnknown() GeoLocation {
	if strings.TrimSpace(g.Country) == "" {
		g.Country = UnknownLocation
	}
	if strings.TrimSpace(g.City) == "" {
		g.City = UnknownLocation
	}
	return g
}

// DeviceInfo is informational only; fraud scoring never looks at it.
type DeviceInfo struct {
	DeviceType string
	Browser    string
}

// ClassifyDevice derives a coarse device type and browser name from the user
// agent string.
func ClassifyDevice(ua string) DeviceInfo {
	if strings.TrimSpace(ua) == "" {
		return DeviceInfo{DeviceType: UnknownLocation, Browser: UnknownLocation}
	}
	parsed := user_agent.New(ua)
	info := DeviceInfo{DeviceType: "desktop"}
	switch {
	case parsed.Bot():
		info.DeviceType = "bot"
	case isTablet(ua):
		info.DeviceType = "tablet"
	case parsed.Mobile():
		info.DeviceType = "mobile"
	}
	name, _ := parsed.Browser()
	if name == "" {
		name = UnknownLocation
	}
	info.Browser = name
	return info
}

func isTablet(ua string) bool {
	lower := strings.ToLower(ua)
	return strings.Contains(lower, "ipad") || strings.Contains(lower, "tablet")
}
