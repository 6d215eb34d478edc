package timezone_test

import (
	"testing"
	"time"

	"timeservice/internal/clock"
	"timeservice/internal/timezone"
	"timeservice/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestResolveKnownZones(t *testing.T) {
	r := timezone.NewResolver()

	for _, id := range []string{"UTC", "Europe/London", "America/New_York", "Asia/Kolkata"} {
		zone, err := r.Resolve(id)
		require.NoError(t, err, "resolving %q", id)
		require.Equal(t, id, zone.Name())
		require.NotNil(t, zone.Location())
	}
}

func TestResolveInvalidZones(t *testing.T) {
	r := timezone.NewResolver()

	for _, id := range []string{"", "Invalid/Zone", "Local", "europe/london "} {
		zone, err := r.Resolve(id)
		require.Nil(t, zone, "resolving %q", id)
		require.ErrorIs(t, err, timezone.ErrInvalidTimezone, "resolving %q", id)
	}
}

func TestOffsetAt(t *testing.T) {
	r := timezone.NewResolver()

	// DST boundaries well inside summer/winter to avoid transition edges.
	summer := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	winter := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		zone    string
		instant time.Time
		offset  time.Duration
		dst     bool
	}{
		{"UTC", summer, 0, false},
		{"Europe/London", summer, time.Hour, true},
		{"Europe/London", winter, 0, false},
		{"America/New_York", summer, -4 * time.Hour, true},
		{"America/New_York", winter, -5 * time.Hour, false},
		{"Asia/Kolkata", summer, 5*time.Hour + 30*time.Minute, false},
		{"Asia/Kolkata", winter, 5*time.Hour + 30*time.Minute, false},
	}

	for _, tc := range cases {
		zone, err := r.Resolve(tc.zone)
		require.NoError(t, err)
		require.Equal(t, tc.offset, zone.OffsetAt(tc.instant), "%s at %s", tc.zone, tc.instant)
		require.Equal(t, tc.dst, zone.IsDSTAt(tc.instant), "%s DST at %s", tc.zone, tc.instant)
	}
}

func TestNowAt(t *testing.T) {
	r := timezone.NewResolver()
	zone, err := r.Resolve("Pacific/Auckland")
	require.NoError(t, err)

	instant := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	now := zone.NowAt(clock.Fixed(instant))

	require.True(t, now.Equal(instant), "NowAt must preserve the instant")
	require.Equal(t, zone.Location(), now.Location())
	// NZDT in January
	require.Equal(t, 1, now.Hour())
	require.Equal(t, 16, now.Day())
}

func TestFixedResolver(t *testing.T) {
	table := timezone.FixedResolver{
		"Test/Zone": time.FixedZone("TST", 90*60),
	}

	zone, err := table.Resolve("Test/Zone")
	require.NoError(t, err)
	require.Equal(t, 90*time.Minute, zone.OffsetAt(time.Now()))

	_, err = table.Resolve("UTC")
	require.ErrorIs(t, err, timezone.ErrInvalidTimezone)

	var k serrors.Kind
	require.ErrorAs(t, err, &k)
	require.Equal(t, "INVALID_TIMEZONE", k.Error())
}
