// Package geoip resolves client addresses with a MaxMind City database.
package geoip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/oschwald/geoip2-golang"

	"affiliate-tracker/internal/core/domain"
	"affiliate-tracker/internal/core/port"
)

var ErrInvalidIP = errors.New("invalid ip address")

type cityReader interface {
	City(ip net.IP) (*geoip2.City, error)
	Close() error
}

// Locator implements port.GeoLocator. The reader lookup itself is not
// cancellable; callers bound it with their own timeout.
type Locator struct {
	reader cityReader
	logger *slog.Logger
}

var _ port.GeoLocator = (*Locator)(nil)

// Open loads the database at path.
func Open(path string, logger *slog.Logger) (*Locator, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open geoip database %s: %w", path, err)
	}
	meta := reader.Metadata()
	logger.Info("geoip database loaded",
		slog.String("path", path),
		slog.String("type", meta.DatabaseType),
		slog.Uint64("build_epoch", uint64(meta.BuildEpoch)),
	)
	return &Locator{reader: reader, logger: logger}, nil
}

func (l *Locator) Locate(ctx context.Context, ip string) (domain.GeoLocation, error) {
	if err := ctx.Err(); err != nil {
		return domain.GeoLocation{}, err
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return domain.GeoLocation{}, fmt.Errorf("%q: %w", ip, ErrInvalidIP)
	}

	record, err := l.reader.City(parsed)
	if err != nil {
		return domain.GeoLocation{}, fmt.Errorf("geoip lookup: %w", err)
	}

	var loc domain.GeoLocation
	if name, ok := record.Country.Names["en"]; ok {
		loc.Country = name
	} else {
		loc.Country = record.Country.IsoCode
	}
	if name, ok := record.City.Names["en"]; ok {
		loc.City = name
	}
	return loc.OrUnknown(), nil
}

func (l *Locator) Close() error {
	return l.reader.Close()
}
