package sequencer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTiming(t *testing.T) {
	timing := DefaultTiming()

	assert.Equal(t, 2*time.Second, timing.SecondaryDelay)
	assert.Equal(t, 5*time.Second, timing.LoadingDuration)
	assert.Equal(t, 1*time.Second, timing.ExitDelay)
	assert.Equal(t, 6*time.Second, timing.Total())
	assert.NoError(t, timing.Validate())
}

func TestTimingValidate(t *testing.T) {
	testCases := []struct {
		name    string
		timing  Timing
		wantErr bool
		errMsg  string
	}{
		{
			name:   "zero exit delay",
			timing: Timing{SecondaryDelay: time.Second, LoadingDuration: 2 * time.Second},
		},
		{
			name:    "zero secondary delay",
			timing:  Timing{LoadingDuration: 2 * time.Second},
			wantErr: true,
			errMsg:  "secondary delay must be positive",
		},
		{
			name:    "zero loading duration",
			timing:  Timing{SecondaryDelay: time.Second},
			wantErr: true,
			errMsg:  "loading duration must be positive",
		},
		{
			name:    "negative exit delay",
			timing:  Timing{SecondaryDelay: time.Second, LoadingDuration: 2 * time.Second, ExitDelay: -time.Second},
			wantErr: true,
			errMsg:  "exit delay must not be negative",
		},
		{
			name:    "secondary equals loading",
			timing:  Timing{SecondaryDelay: 2 * time.Second, LoadingDuration: 2 * time.Second},
			wantErr: true,
			errMsg:  "must be shorter than loading duration",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.timing.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTiming)
				assert.Contains(t, err.Error(), tc.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
