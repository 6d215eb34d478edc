// Package timezone validates IANA timezone identifiers and exposes the
// resolved zones for offset and daylight-saving lookups. The zone database is
// an injected dependency: production code uses the tzdata compiled into the
// binary, tests can supply a fixed zone table.
package timezone

import (
	"time"

	"timeservice/internal/clock"
	"timeservice/pkg/serrors"
)

// ErrInvalidTimezone indicates an identifier that is not present in the IANA
// timezone database.
var ErrInvalidTimezone = serrors.NewKind("INVALID_TIMEZONE")

// Resolver validates an IANA timezone identifier and returns the zone it
// names. Resolution is a pure lookup against static timezone data.
type Resolver interface {
	Resolve(identifier string) (*Zone, error)
}

// Zone is a resolved timezone. It answers offset and DST queries for any
// instant using the zone's IANA rules.
type Zone struct {
	name string
	loc  *time.Location
}

// NewZone wraps an already-loaded location under the given identifier.
func NewZone(name string, loc *time.Location) *Zone {
	return &Zone{name: name, loc: loc}
}

// Name returns the IANA identifier this zone was resolved from.
func (z *Zone) Name() string { return z.name }

// Location returns the underlying time.Location for date arithmetic.
func (z *Zone) Location() *time.Location { return z.loc }

// OffsetAt returns the zone's signed offset from UTC at the given instant.
func (z *Zone) OffsetAt(t time.Time) time.Duration {
	_, offsetSeconds := t.In(z.loc).Zone()

	return time.Duration(offsetSeconds) * time.Second
}

// IsDSTAt reports whether daylight saving time is in effect in the zone at
// the given instant.
func (z *Zone) IsDSTAt(t time.Time) bool {
	return t.In(z.loc).IsDST()
}

// NowAt returns the clock's current instant rendered in this zone.
func (z *Zone) NowAt(c clock.Clock) time.Time {
	return c.Now().In(z.loc)
}

// resolver resolves identifiers against the process timezone database.
type resolver struct{}

// NewResolver returns a Resolver backed by the IANA database available to
// the process. The binary links time/tzdata so lookups do not depend on a
// host zoneinfo directory.
func NewResolver() Resolver {
	return resolver{}
}

// Resolve validates the identifier and returns its zone. Unknown identifiers
// fail with ErrInvalidTimezone; that is the only failure mode.
func (resolver) Resolve(identifier string) (*Zone, error) {
	if identifier == "" {
		return nil, serrors.With(ErrInvalidTimezone, "timezone identifier is empty")
	}
	// "Local" is a Go alias for the host zone, not an IANA database entry.
	if identifier == "Local" {
		return nil, serrors.With(ErrInvalidTimezone, "unknown timezone %q", identifier)
	}

	loc, err := time.LoadLocation(identifier)
	if err != nil {
		return nil, serrors.Wrap(ErrInvalidTimezone, err, "unknown timezone %q", identifier)
	}

	return NewZone(identifier, loc), nil
}

// FixedResolver resolves identifiers from an in-memory zone table. It stands
// in for the real database in tests.
type FixedResolver map[string]*time.Location

// Resolve looks the identifier up in the fixed table.
func (f FixedResolver) Resolve(identifier string) (*Zone, error) {
	loc, ok := f[identifier]
	if !ok {
		return nil, serrors.With(ErrInvalidTimezone, "unknown timezone %q", identifier)
	}

	return NewZone(identifier, loc), nil
}
