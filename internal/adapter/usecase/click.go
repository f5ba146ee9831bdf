package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"affiliate-tracker/internal/core/domain"
)

// RecordClick is the redirect path. Once the tracking code resolves, the
// destination URL is always returned; everything after that is best effort.
func (u *TrackingUseCase) RecordClick(ctx context.Context, trackingCode string, in domain.ClickInput) (string, error) {
	code := strings.TrimSpace(trackingCode)
	if code == "" {
		return "", fmt.Errorf("tracking code: %w", domain.ErrNotFound)
	}
	link, err := u.apps.ResolveTrackingCode(ctx, code)
	if err != nil {
		return "", fmt.Errorf("resolve tracking code %q: %w", code, err)
	}

	// the visitor may hang up as soon as it has the Location header
	bg := context.WithoutCancel(ctx)

	if in.Timestamp.IsZero() {
		in.Timestamp = u.nowFn()
	}

	res := u.CheckClickFraud(bg, in.IP, in.UserAgent, in.Referer, link.ApplicationID)
	u.logFraudDetection(bg, code, in.IP, res)

	check := &domain.FraudCheck{
		ID:            u.idFn(),
		TrackingCode:  code,
		ApplicationID: link.ApplicationID,
		IPAddress:     in.IP,
		FraudScore:    res.FraudScore,
		IsValid:       res.IsValid,
		Reason:        res.Reason,
		Flags:         res.Flags,
		CheckedAt:     in.Timestamp.UTC(),
	}
	if err := u.fraudChecks.Save(bg, check); err != nil {
		u.logger.Error("save fraud check", slog.String("tracking_code", code), slog.Any("error", err))
	}

	if !res.IsValid {
		u.publish(bg, EventClickRejected, link.ApplicationID, clickRejectedEvent{
			TrackingCode:  code,
			ApplicationID: link.ApplicationID,
			IPAddress:     in.IP,
			FraudScore:    res.FraudScore,
			Flags:         res.Flags,
			CheckedAt:     check.CheckedAt,
		})
		return link.DestinationURL, nil
	}

	if _, err := u.LogTrackingClick(bg, link.ApplicationID, in); err != nil {
		u.logger.Error("log tracking click",
			slog.String("tracking_code", code),
			slog.String("application_id", link.ApplicationID),
			slog.Any("error", err),
		)
	}
	return link.DestinationURL, nil
}

// LogTrackingClick enriches the click and appends it to the ledger.
func (u *TrackingUseCase) LogTrackingClick(ctx context.Context, applicationID string, in domain.ClickInput) (*domain.DailyAnalytics, error) {
	app, err := u.apps.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("get application %s: %w", applicationID, err)
	}

	ts := in.Timestamp
	if ts.IsZero() {
		ts = u.nowFn()
	}
	device := domain.ClassifyDevice(in.UserAgent)
	loc := u.locate(ctx, in.IP)

	click := &domain.ClickEvent{
		ID:            u.idFn(),
		ApplicationID: app.ID,
		OfferID:       app.OfferID,
		CreatorID:     app.CreatorID,
		IPAddress:     in.IP,
		UserAgent:     in.UserAgent,
		Referer:       in.Referer,
		Country:       loc.Country,
		City:          loc.City,
		DeviceType:    device.DeviceType,
		Browser:       device.Browser,
		Timestamp:     ts.UTC(),
	}

	day, err := u.ledger.AppendClick(ctx, click)
	if err != nil {
		return nil, fmt.Errorf("append click: %w", err)
	}
	return day, nil
}

type geoResult struct {
	loc domain.GeoLocation
	err error
}

// locate never blocks the caller for longer than the configured timeout.
func (u *TrackingUseCase) locate(ctx context.Context, ip string) domain.GeoLocation {
	unknown := domain.GeoLocation{}.OrUnknown()
	if u.geo == nil || domain.IsBlank(ip) {
		return unknown
	}

	ctx, cancel := context.WithTimeout(ctx, u.settings.GeoLookupTimeout)
	defer cancel()

	ch := make(chan geoResult, 1)
	go func() {
		loc, err := u.geo.Locate(ctx, ip)
		ch <- geoResult{loc: loc, err: err}
	}()

	select {
	case r := <-ch:
		if r.err != nil {
			u.logger.Debug("geo lookup failed", slog.String("ip", ip), slog.Any("error", r.err))
			return unknown
		}
		return r.loc.OrUnknown()
	case <-ctx.Done():
		u.logger.Debug("geo lookup timed out", slog.String("ip", ip), slog.Duration("timeout", u.settings.GeoLookupTimeout))
		return unknown
	}
}

type clickRejectedEvent struct {
	TrackingCode  string        `json:"tracking_code"`
	ApplicationID string        `json:"application_id"`
	IPAddress     string        `json:"ip_address"`
	FraudScore    int           `json:"fraud_score"`
	Flags         []domain.Flag `json:"flags"`
	CheckedAt     time.Time     `json:"checked_at"`
}
