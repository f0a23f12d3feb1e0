// Package geoip maps client IP addresses to a region used as a locale hint.
package geoip

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/oschwald/geoip2-golang"
	"golang.org/x/text/language"
)

// ErrUnavailable is returned when no database is loaded.
var ErrUnavailable = errors.New("geoip: resolver unavailable")

// Resolver looks up the country of an IP in a MaxMind GeoIP2/GeoLite2
// country database. A nil *Resolver is valid and always unavailable.
type Resolver struct {
	reader *geoip2.Reader
}

// Open loads the database at path. An empty path yields a nil resolver.
func Open(path string) (*Resolver, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geoip: open database: %w", err)
	}
	return &Resolver{reader: reader}, nil
}

// Region returns the country of ip as a language region.
func (r *Resolver) Region(ip string) (language.Region, error) {
	if r == nil || r.reader == nil {
		return language.Region{}, ErrUnavailable
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return language.Region{}, fmt.Errorf("geoip: invalid ip %q", ip)
	}
	record, err := r.reader.Country(parsed)
	if err != nil {
		return language.Region{}, fmt.Errorf("geoip: lookup country: %w", err)
	}
	if record == nil || record.Country.IsoCode == "" {
		return language.Region{}, ErrUnavailable
	}
	region, err := language.ParseRegion(record.Country.IsoCode)
	if err != nil {
		return language.Region{}, fmt.Errorf("geoip: region %q: %w", record.Country.IsoCode, err)
	}
	return region, nil
}

// Close releases the database.
func (r *Resolver) Close() error {
	if r == nil || r.reader == nil {
		return nil
	}
	return r.reader.Close()
}
