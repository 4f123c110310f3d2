package snowflake

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Epoch is the platform epoch in Unix milliseconds (2015-01-01T00:00:00Z).
const Epoch int64 = 1420070400000

// ID is the constraint satisfied by every identifier kind in this package.
type ID interface {
	~uint64
}

// Parse parses a decimal identifier of kind T.
//
//	guildID, err := snowflake.Parse[snowflake.GuildID]("81384788765712384")
func Parse[T ID](s string) (T, error) {
	if s == "" {
		return 0, fmt.Errorf("snowflake cannot be empty")
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid snowflake %q: %w", s, err)
	}
	return T(v), nil
}

// MustParse parses a decimal identifier, panicking on error.
// This is useful for test fixtures and constants where the value is known valid.
func MustParse[T ID](s string) T {
	id, err := Parse[T](s)
	if err != nil {
		panic(err)
	}
	return id
}

// Timestamp returns the creation time embedded in a raw snowflake.
func Timestamp(raw uint64) time.Time {
	return time.UnixMilli(int64(raw>>22) + Epoch).UTC()
}

func format(raw uint64) string {
	return strconv.FormatUint(raw, 10)
}

func marshal(raw uint64) ([]byte, error) {
	return json.Marshal(format(raw))
}

// unmarshal accepts "123" or 123. JSON null leaves dst untouched, matching
// encoding/json behavior for non-pointer values.
func unmarshal(data []byte, dst *uint64) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("snowflake must be a string or number: %w", err)
		}
	} else {
		s = string(data)
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid snowflake %q: %w", s, err)
	}
	*dst = v
	return nil
}
