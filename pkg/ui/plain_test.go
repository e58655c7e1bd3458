package ui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/karthickk/welcome/pkg/config"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

const (
	waitFor = time.Second
	tick    = time.Millisecond
)

// syncBuffer lets the test read output while RunPlain is still writing
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) contains(s string) bool {
	return strings.Contains(b.String(), s)
}

func testConfig() *config.Config {
	return &config.Config{
		Splash: config.SplashConfig{
			SecondaryDelay: 2 * time.Second,
			Duration:       5 * time.Second,
			ExitDelay:      time.Second,
			TypewriterTick: 260 * time.Millisecond,
			FrameRate:      50 * time.Millisecond,
		},
		Site: config.SiteConfig{
			Owner:   "ogijksn",
			Heading: "Welcome To My",
			Title:   "Portfolio",
			URL:     "www.ogijksn.my.id",
		},
		LogLevel: "info",
	}
}

func TestRunPlainPlaysSequence(t *testing.T) {
	clk := testingclock.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	out := &syncBuffer{}

	errCh := make(chan error, 1)
	go func() {
		errCh <- RunPlain(context.Background(), out, testConfig(), clk, nil)
	}()

	require.Eventually(t, clk.HasWaiters, waitFor, tick)
	assert.True(t, out.contains("ogijksn"), "header should show the owner")
	assert.False(t, out.contains("www.ogijksn.my.id ⚡"))

	clk.Step(2 * time.Second)
	assert.Eventually(t, func() bool { return out.contains("✦ ✧ ✦") }, waitFor, tick)

	clk.Step(3 * time.Second)
	assert.Eventually(t, func() bool { return out.contains("◍ www.ogijksn.my.id ⚡") }, waitFor, tick)
	assert.False(t, out.contains("Welcome to"))

	clk.Step(time.Second)
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(waitFor):
		t.Fatal("RunPlain did not return after completion")
	}
	assert.True(t, out.contains("Welcome to ogijksn's Portfolio"))
}

func TestRunPlainCancelled(t *testing.T) {
	clk := testingclock.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- RunPlain(ctx, &syncBuffer{}, testConfig(), clk, nil)
	}()

	require.Eventually(t, clk.HasWaiters, waitFor, tick)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(waitFor):
		t.Fatal("RunPlain did not return after cancel")
	}
	assert.False(t, clk.HasWaiters(), "cancelling must release every timer")
}

func TestRunPlainInvalidConfig(t *testing.T) {
	clk := testingclock.NewFakeClock(time.Now())
	cfg := testConfig()
	cfg.Splash.SecondaryDelay = 10 * time.Second

	err := RunPlain(context.Background(), &syncBuffer{}, cfg, clk, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.False(t, clk.HasWaiters())
}

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		name     string
		level    string
		expected pterm.LogLevel
	}{
		{name: "trace", level: "trace", expected: pterm.LogLevelTrace},
		{name: "debug", level: "debug", expected: pterm.LogLevelDebug},
		{name: "upper case", level: "WARN", expected: pterm.LogLevelWarn},
		{name: "error", level: "error", expected: pterm.LogLevelError},
		{name: "disabled", level: "disabled", expected: pterm.LogLevelDisabled},
		{name: "unknown falls back to info", level: "loud", expected: pterm.LogLevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLogLevel(tc.level))
		})
	}
}

func TestNewLoggerWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("debug", &buf)
	logger.Debug("sequencer transition", logger.Args("event", "complete"))

	assert.Contains(t, buf.String(), "sequencer transition")
	assert.Contains(t, buf.String(), "complete")
}

func TestNewFileLogger(t *testing.T) {
	path := t.TempDir() + "/welcome.log"
	logger, closeFn, err := NewFileLogger("info", path)
	require.NoError(t, err)

	logger.Info("welcome screen complete")
	require.NoError(t, closeFn())

	_, _, err = NewFileLogger("info", t.TempDir()+"/missing/welcome.log")
	assert.Error(t, err)
}

func TestDisplayHeader(t *testing.T) {
	var buf bytes.Buffer
	site := testConfig().Site
	site.GitHub = "github.com/ogijksn"

	require.NoError(t, DisplayHeader(&buf, site))

	plain := pterm.RemoveColorFromString(buf.String())
	assert.Contains(t, plain, "Welcome To My")
	assert.Contains(t, plain, "www.ogijksn.my.id")
	assert.Contains(t, plain, "github.com/ogijksn")
}

func TestStatusMessages(t *testing.T) {
	testCases := []struct {
		name string
		show func(w io.Writer)
		want string
	}{
		{
			name: "success",
			show: func(w io.Writer) { ShowSuccess(w, "Set site.url = example.dev") },
			want: "✅ Success: Set site.url = example.dev",
		},
		{
			name: "info",
			show: func(w io.Writer) { ShowInfo(w, "run validate") },
			want: "ℹ️  Info: run validate",
		},
		{
			name: "warning",
			show: func(w io.Writer) { ShowWarning(w, "Configuration is now invalid") },
			want: "⚠️  Warning: Configuration is now invalid",
		},
		{
			name: "error",
			show: func(w io.Writer) { ShowError(w, "boom") },
			want: "❌ Error: boom",
		},
		{
			name: "goodbye",
			show: func(w io.Writer) { ShowGoodbye(w) },
			want: "👋 Thanks for visiting!",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			tc.show(&buf)
			assert.Contains(t, pterm.RemoveColorFromString(buf.String()), tc.want)
		})
	}
}
