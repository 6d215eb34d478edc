// Package timeops implements the two time operations: current-time lookup in
// a timezone and wall-clock conversion between timezones. Both delegate
// calendar arithmetic to the resolved zones; this package contributes input
// validation and result shaping only.
package timeops

import (
	"context"
	"fmt"
	"time"

	"timeservice/internal/clock"
	"timeservice/internal/timezone"
	"timeservice/pkg/domain"
)

// service is the concrete Service implementation. It holds no mutable state;
// every call is a pure function of its inputs, the injected clock, and the
// zone database behind the resolver.
type service struct {
	resolver timezone.Resolver
	clock    clock.Clock
}

// New creates a Service backed by the provided resolver and clock.
func New(resolver timezone.Resolver, clk clock.Clock) Service {
	return &service{resolver: resolver, clock: clk}
}

// CurrentTime resolves the timezone and snapshots the clock's current
// instant in it. The only failure mode is an invalid timezone identifier.
func (s *service) CurrentTime(_ context.Context, tz string) (*domain.TimeSnapshot, error) {
	zone, err := s.resolver.Resolve(tz)
	if err != nil {
		return nil, fmt.Errorf("could not resolve timezone: %w", err)
	}

	snap := snapshot(zone, zone.NowAt(s.clock))

	return &snap, nil
}

// ConvertTime resolves both zones, parses the wall-clock reading, anchors it
// to today's date in the source zone, and renders the resulting instant in
// the target zone. Anchoring to the current date matters because DST rules
// are calendar-dependent: the same reading can carry a different offset on a
// different date.
//
// Readings that fall in a DST gap or overlap resolve through the zone rules'
// canonical normalization: skipped times land after the gap, repeated times
// take their first occurrence.
func (s *service) ConvertTime(_ context.Context, sourceTZ, clockTime, targetTZ string) (*domain.Conversion, error) {
	sourceZone, err := s.resolver.Resolve(sourceTZ)
	if err != nil {
		return nil, fmt.Errorf("%s timezone: %w", domain.ZoneRoleSource, err)
	}
	targetZone, err := s.resolver.Resolve(targetTZ)
	if err != nil {
		return nil, fmt.Errorf("%s timezone: %w", domain.ZoneRoleTarget, err)
	}

	wc, err := ParseWallClock(clockTime)
	if err != nil {
		return nil, fmt.Errorf("could not parse time: %w", err)
	}

	year, month, day := s.clock.Now().In(sourceZone.Location()).Date()
	sourceTime := time.Date(year, month, day, wc.Hour, wc.Minute, 0, 0, sourceZone.Location())
	targetTime := sourceTime.In(targetZone.Location())

	diff := targetZone.OffsetAt(sourceTime) - sourceZone.OffsetAt(sourceTime)

	return &domain.Conversion{
		Source:              snapshot(sourceZone, sourceTime),
		Target:              snapshot(targetZone, targetTime),
		TimeDifferenceHours: diff.Hours(),
	}, nil
}

// isoLayout is RFC 3339 with an always-numeric offset, so UTC renders as
// "+00:00" rather than "Z".
const isoLayout = "2006-01-02T15:04:05-07:00"

// snapshot renders an instant, already expressed in the zone's location, as
// a TimeSnapshot.
func snapshot(zone *timezone.Zone, t time.Time) domain.TimeSnapshot {
	return domain.TimeSnapshot{
		Timezone:  zone.Name(),
		DateTime:  t.Format(isoLayout),
		UTCOffset: formatOffset(zone.OffsetAt(t)),
		IsDST:     zone.IsDSTAt(t),
	}
}

// formatOffset renders a UTC offset as ±HH:MM.
func formatOffset(offset time.Duration) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}

	hours := int(offset / time.Hour)
	minutes := int(offset%time.Hour) / int(time.Minute)

	return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)
}
