package domain

// ZoneRole names the position a timezone identifier was supplied in, so
// validation failures can report which side of a conversion was invalid.
type ZoneRole string

const (
	// ZoneRoleSource marks the timezone a conversion starts from.
	ZoneRoleSource ZoneRole = "source"
	// ZoneRoleTarget marks the timezone a conversion ends in.
	ZoneRoleTarget ZoneRole = "target"
)

// TimeSnapshot describes a single instant as observed in one timezone.
// Snapshots are produced fresh on every call and never persisted.
type TimeSnapshot struct {
	// Timezone is the IANA identifier the snapshot was taken in.
	Timezone string `json:"timezone"`
	// DateTime is the local timestamp in RFC 3339 form, offset included.
	DateTime string `json:"datetime"`
	// UTCOffset is the zone's offset from UTC at the snapshot instant,
	// formatted as ±HH:MM.
	UTCOffset string `json:"utc_offset"`
	// IsDST reports whether daylight saving time was in effect.
	IsDST bool `json:"is_dst"`
}

// Conversion is the outcome of translating a wall-clock time from a source
// timezone into a target timezone. Source and Target describe the same
// instant as seen from each zone.
type Conversion struct {
	Source TimeSnapshot `json:"source"`
	Target TimeSnapshot `json:"target"`

	// TimeDifferenceHours is the target UTC offset minus the source UTC
	// offset, in hours. Fractional for zones on 30 or 45 minute offsets.
	TimeDifferenceHours float64 `json:"time_difference_hours"`
}
