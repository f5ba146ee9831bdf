package domain

import (
	"net/netip"
	"strings"
	"time"
)

// Flag names one fraud heuristic that fired for a click.
type Flag string

const (
	FlagRateLimitExceeded Flag = "rate_limit_exceeded"
	FlagBotUserAgent      Flag = "bot_user_agent"
	FlagNoUserAgent       Flag = "no_user_agent"
	FlagPrivateNetworkIP  Flag = "private_network_ip"
	FlagNoReferer         Flag = "no_referer"
	FlagRepeatedClicks    Flag = "repeated_clicks"
)

const (
	// MaxFraudScore caps the summed flag weights.
	MaxFraudScore = 100
	// FraudThreshold is the first score at which a click is rejected.
	FraudThreshold = 50

	unknownFlagWeight = 10
)

var flagWeights = map[Flag]int{
	FlagRateLimitExceeded: 40,
	FlagBotUserAgent:      30,
	FlagPrivateNetworkIP:  20,
	FlagRepeatedClicks:    25,
	FlagNoUserAgent:       15,
	FlagNoReferer:         10,
}

var flagDescriptions = map[Flag]string{
	FlagRateLimitExceeded: "Too many clicks from this IP in the last minute",
	FlagBotUserAgent:      "User agent matches a known bot or automation tool",
	FlagNoUserAgent:       "Request carried no user agent",
	FlagPrivateNetworkIP:  "Click originated from a private network address",
	FlagNoReferer:         "Request carried no referer",
	FlagRepeatedClicks:    "Repeated clicks from this IP on the same link within an hour",
}

// Weight returns the score contribution of f.
func (f Flag) Weight() int {
	if w, ok := flagWeights[f]; ok {
		return w
	}
	return unknownFlagWeight
}

// Description is the human readable reason for f.
func (f Flag) Description() string {
	if d, ok := flagDescriptions[f]; ok {
		return d
	}
	return string(f)
}

// FraudCheckResult is computed per click and never stored as-is.
type FraudCheckResult struct {
	IsValid    bool   `json:"is_valid"`
	FraudScore int    `json:"fraud_score"`
	Reason     string `json:"reason,omitempty"`
	Flags      []Flag `json:"flags"`
}

// NewFraudCheckResult scores flags given in check order. The reason is the
// description of the first flag.
func NewFraudCheckResult(flags []Flag) FraudCheckResult {
	if flags == nil {
		flags = []Flag{}
	}
	score := FraudScore(flags)
	res := FraudCheckResult{
		IsValid:    score < FraudThreshold,
		FraudScore: score,
		Flags:      flags,
	}
	if len(flags) > 0 {
		res.Reason = flags[0].Description()
	}
	return res
}

// FraudScore sums flag weights, capped at MaxFraudScore.
func FraudScore(flags []Flag) int {
	score := 0
	for _, f := range flags {
		score += f.Weight()
	}
	return min(score, MaxFraudScore)
}

var botTokens = []string{
	"bot", "crawl", "spider", "curl", "wget", "python-requests", "go-http-client",
	"postman", "insomnia", "facebookexternalhit", "twitterbot", "linkedinbot",
	"whatsapp", "telegram", "discordbot", "headlesschrome", "phantomjs",
	"selenium", "scrapy", "scan", "scrape", "slurp",
}

// IsBotUserAgent reports whether ua contains a known bot token, ignoring case.
func IsBotUserAgent(ua string) bool {
	lower := strings.ToLower(ua)
	if lower == "" {
		return false
	}
	for _, tok := range botTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// IsPrivateNetworkIP reports whether ip is in 10/8, 172.16/12, 192.168/16 or
// the IPv6 unique local range. Unparseable input is not private.
func IsPrivateNetworkIP(ip string) bool {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return false
	}
	return addr.Unmap().IsPrivate()
}

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FraudCheck is the persisted summary of one FraudCheckResult, kept so that
// fraud statistics can be aggregated.
type FraudCheck struct {
	ID            string
	TrackingCode  string
	ApplicationID string
	IPAddress     string
	FraudScore    int
	IsValid       bool
	Reason        string
	Flags         []Flag
	CheckedAt     time.Time
}

// FraudStats aggregates fraud checks over a trailing window of days.
type FraudStats struct {
	Days          int     `json:"days"`
	TotalChecks   int64   `json:"total_checks"`
	TotalClicks   int64   `json:"total_clicks"`
	FlaggedClicks int64   `json:"flagged_clicks"`
	BlockedClicks int64   `json:"blocked_clicks"`
	FraudRate     float64 `json:"fraud_rate"`
}
