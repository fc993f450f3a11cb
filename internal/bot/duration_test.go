package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeSpan(t *testing.T) {
	cases := []struct {
		in      string
		seconds int64
		display string
	}{
		{"30s", 30, "30 second(s)"},
		{"5m", 300, "5 minute(s)"},
		{"2h", 7200, "2 hour(s)"},
		{"1d", 86400, "1 day(s)"},
		{"2 h", 7200, "2 hour(s)"},
		{"2 hours", 7200, "2 hour(s)"},
		{"10 minutes", 600, "10 minute(s)"},
		{"7 days", 604800, "7 day(s)"},
		{" 2h ", 7200, "2 hour(s)"},
	}
	for _, tc := range cases {
		span, err := parseTimeSpan(tc.in)
		require.NoErrorf(t, err, "parse %q", tc.in)
		assert.Equalf(t, tc.seconds, span.Seconds(), "seconds of %q", tc.in)
		assert.Equalf(t, tc.display, span.String(), "display of %q", tc.in)
	}
}

func TestParseTimeSpan_Rejects(t *testing.T) {
	for _, in := range []string{
		"", "h", "2", "2w", "soon", "2 weeks", "h2", "-5m", "2.5h", "2 h extra",
	} {
		_, err := parseTimeSpan(in)
		assert.Errorf(t, err, "expected %q to be rejected", in)
	}
}

func TestSplitHelpers(t *testing.T) {
	head, rest, ok := splitFirst("/ban @alice 2h")
	require.True(t, ok)
	assert.Equal(t, "/ban", head)
	assert.Equal(t, "@alice 2h", rest)

	_, _, ok = splitFirst("/ban")
	assert.False(t, ok)

	assert.Equal(t, []string{"/ban", "@alice", "2h spam"}, splitN("/ban @alice 2h spam", 3))
	assert.Equal(t, []string{"/ban", "@alice"}, splitN("/ban @alice", 3))
	assert.Equal(t, []string{"/ban"}, splitN("/ban", 3))
}
