package sequencer

import (
	"errors"
	"fmt"
	"time"
)

// Default durations of the welcome screen
const (
	DefaultSecondaryDelay  = 2 * time.Second
	DefaultLoadingDuration = 5 * time.Second
	DefaultExitDelay       = 1 * time.Second
)

// ErrInvalidTiming is returned by Timing.Validate
var ErrInvalidTiming = errors.New("invalid sequencer timing")

// Timing holds the three delays of a reveal sequence
type Timing struct {
	// SecondaryDelay is when the secondary effect turns on
	SecondaryDelay time.Duration
	// LoadingDuration is when loading ends
	LoadingDuration time.Duration
	// ExitDelay is the gap between the end of loading and completion
	ExitDelay time.Duration
}

// DefaultTiming returns the 2s/5s/1s timing of the welcome screen
func DefaultTiming() Timing {
	return Timing{
		SecondaryDelay:  DefaultSecondaryDelay,
		LoadingDuration: DefaultLoadingDuration,
		ExitDelay:       DefaultExitDelay,
	}
}

// Total is the time from activation to completion
func (t Timing) Total() time.Duration {
	return t.LoadingDuration + t.ExitDelay
}

// Validate checks that the secondary effect comes strictly before the end of loading
func (t Timing) Validate() error {
	if t.SecondaryDelay <= 0 {
		return fmt.Errorf("%w: secondary delay must be positive, got %s", ErrInvalidTiming, t.SecondaryDelay)
	}
	if t.LoadingDuration <= 0 {
		return fmt.Errorf("%w: loading duration must be positive, got %s", ErrInvalidTiming, t.LoadingDuration)
	}
	if t.ExitDelay < 0 {
		return fmt.Errorf("%w: exit delay must not be negative, got %s", ErrInvalidTiming, t.ExitDelay)
	}
	if t.SecondaryDelay >= t.LoadingDuration {
		return fmt.Errorf("%w: secondary delay %s must be shorter than loading duration %s",
			ErrInvalidTiming, t.SecondaryDelay, t.LoadingDuration)
	}
	return nil
}
