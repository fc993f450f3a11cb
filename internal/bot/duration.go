package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type timeUnit int

const (
	unitSeconds timeUnit = iota
	unitMinutes
	unitHours
	unitDays
)

// timeSpan is a parsed duration that remembers its unit for display.
type timeSpan struct {
	amount int64
	unit   timeUnit
}

var errBadTimeSpan = errors.New("allowed units: h, m, s, d")

// parseTimeSpan accepts "2h", "2 h" and "2 hours" style durations.
func parseTimeSpan(s string) (timeSpan, error) {
	s = strings.TrimSpace(s)

	var num, unit string
	head, rest, split := splitFirst(s)
	if split {
		num, unit = head, strings.TrimSpace(rest)
	} else {
		// Single slug like "1m": the unit is the final character.
		if len(head) < 2 || !strings.ContainsAny(head[len(head)-1:], "hmsd") {
			return timeSpan{}, errBadTimeSpan
		}
		num, unit = head[:len(head)-1], head[len(head)-1:]
	}

	amount, err := strconv.ParseUint(num, 10, 63)
	if err != nil {
		return timeSpan{}, errBadTimeSpan
	}

	switch unit {
	case "h", "hours":
		return timeSpan{int64(amount), unitHours}, nil
	case "m", "minutes":
		return timeSpan{int64(amount), unitMinutes}, nil
	case "s", "seconds":
		return timeSpan{int64(amount), unitSeconds}, nil
	case "d", "days":
		return timeSpan{int64(amount), unitDays}, nil
	default:
		return timeSpan{}, errBadTimeSpan
	}
}

func (t timeSpan) Seconds() int64 {
	switch t.unit {
	case unitMinutes:
		return t.amount * 60
	case unitHours:
		return t.amount * 3600
	case unitDays:
		return t.amount * 24 * 3600
	default:
		return t.amount
	}
}

func (t timeSpan) Duration() time.Duration {
	return time.Duration(t.Seconds()) * time.Second
}

func (t timeSpan) String() string {
	switch t.unit {
	case unitMinutes:
		return fmt.Sprintf("%d minute(s)", t.amount)
	case unitHours:
		return fmt.Sprintf("%d hour(s)", t.amount)
	case unitDays:
		return fmt.Sprintf("%d day(s)", t.amount)
	default:
		return fmt.Sprintf("%d second(s)", t.amount)
	}
}
