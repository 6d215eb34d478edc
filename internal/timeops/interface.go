package timeops

import (
	"context"

	"timeservice/pkg/domain"
)

//go:generate mockgen -package mocktimeops -source=interface.go -destination=mock/mocktimeops.go *

// Service exposes the two time operations. Both are stateless and safe for
// unrestricted concurrent use.
type Service interface {
	// CurrentTime returns the current wall-clock time in the given IANA
	// timezone, with offset and DST metadata.
	CurrentTime(ctx context.Context, timezone string) (*domain.TimeSnapshot, error)

	// ConvertTime translates a 24-hour "HH:MM" wall-clock reading from the
	// source timezone into the target timezone, anchored to today's date as
	// observed in the source zone.
	ConvertTime(ctx context.Context, sourceTimezone, clockTime, targetTimezone string) (*domain.Conversion, error)
}
