package contrib

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name    string
		since   string
		until   string
		wantErr bool
	}{
		{"valid window", "2019-06-01", "2020-05-31", false},
		{"adjacent days", "2020-01-01", "2020-01-02", false},
		{"equal dates", "2020-01-01", "2020-01-01", true},
		{"reversed", "2020-05-31", "2019-06-01", true},
		{"malformed since", "not-a-date", "2020-05-31", true},
		{"malformed until", "2019-06-01", "31/05/2020", true},
		{"both empty", "", "", true},
		{"datetime rejected", "2019-06-01T00:00:00Z", "2020-05-31", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ParseWindow(tt.since, tt.until)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidWindow)
				return
			}
			require.NoError(t, err)
			assert.True(t, w.Since.Before(w.Until))
			assert.Equal(t, tt.since, w.SinceString())
			assert.Equal(t, tt.until, w.UntilString())
		})
	}
}

func TestParseWindowDatesAreUTCMidnight(t *testing.T) {
	w, err := ParseWindow("2019-06-01", "2020-05-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC), w.Since)
	assert.Equal(t, time.Date(2020, 5, 31, 0, 0, 0, 0, time.UTC), w.Until)
}
