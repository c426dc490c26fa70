// Package discord holds the Discord entity models and id types used by
// the markdown engine and the export context.
package discord

import (
	"fmt"
	"strconv"
	"time"
)

// discordEpochMS is 2015-01-01T00:00:00Z in Unix milliseconds. All
// snowflake timestamps are offsets from this instant.
const discordEpochMS = 1420070400000

// Snowflake is a Discord entity id: a 64-bit integer carrying a
// creation timestamp in its upper bits.
type Snowflake int64

// SnowflakeZero is the zero id, used where an id is required but the
// entity has none (e.g. direct-message channels without a guild).
const SnowflakeZero Snowflake = 0

// Time returns the creation instant encoded in the snowflake.
func (s Snowflake) Time() time.Time {
	ms := int64(s)>>22 + discordEpochMS
	return time.UnixMilli(ms).UTC()
}

func (s Snowflake) String() string {
	return strconv.FormatInt(int64(s), 10)
}

// SnowflakeFromTime builds a synthetic snowflake for range queries
// against real ids.
func SnowflakeFromTime(t time.Time) Snowflake {
	ms := t.UnixMilli() - discordEpochMS
	return Snowflake(ms << 22)
}

// TryParseSnowflake parses a decimal id string. It returns false for
// empty or non-numeric input instead of an error, matching how ids are
// pulled out of untrusted message text.
func TryParseSnowflake(s string) (Snowflake, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return Snowflake(v), true
}

// ParseSnowflake parses a decimal id string, failing on invalid input.
func ParseSnowflake(s string) (Snowflake, error) {
	v, ok := TryParseSnowflake(s)
	if !ok {
		return 0, fmt.Errorf("invalid snowflake: %q", s)
	}
	return v, nil
}
