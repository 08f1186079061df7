package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{input: "1h", want: 60},
		{input: "45m", want: 45},
		{input: "1h 30m", want: 90},
		{input: "1H30M", want: 90},
		{input: "30m 1h", want: 90},
		{input: "⏱ 2h 15m", want: 135},
		{input: "2 h   5 m", want: 125},
		{input: "", want: 0},
		{input: "nothing logged", want: 0},
		{input: "99999999999999999999999h", want: 0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseDuration(tc.input), "ParseDuration(%q)", tc.input)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		minutes int
		want    string
	}{
		{minutes: 0, want: "0m"},
		{minutes: 45, want: "45m"},
		{minutes: 60, want: "1h"},
		{minutes: 90, want: "1h 30m"},
		{minutes: 135, want: "2h 15m"},
		{minutes: 300, want: "5h"},
		{minutes: -5, want: "0m"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatDuration(tc.minutes), "FormatDuration(%d)", tc.minutes)
	}
}

func TestParseInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "hours and minutes", input: "1h 20m", want: 80},
		{name: "compact", input: "1h20m", want: 80},
		{name: "minutes only", input: "15m", want: 15},
		{name: "min suffix", input: "15 min", want: 15},
		{name: "hours only", input: "2H", want: 120},
		{name: "clock", input: "1:30", want: 90},
		{name: "bare minutes", input: "40", want: 40},
		{name: "clock minutes out of range", input: "1:75", wantErr: true},
		{name: "empty", input: "  ", wantErr: true},
		{name: "words", input: "a while", wantErr: true},
		{name: "trailing garbage", input: "1h 30m ok", wantErr: true},
		{name: "huge hours", input: "9223372036854775807h", wantErr: true},
		{name: "hours beyond bound", input: "40000000h", wantErr: true},
		{name: "huge bare minutes", input: "99999999999", wantErr: true},
		{name: "sum beyond bound", input: "35791394h 59m", wantErr: true},
		{name: "largest accepted", input: "35791394h 7m", want: 2147483647},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseInput(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
