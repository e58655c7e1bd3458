package views

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/karthickk/welcome/internal/ui/components"
	"github.com/karthickk/welcome/pkg/config"
	"github.com/karthickk/welcome/pkg/sequencer"
	"github.com/pterm/pterm"
	"k8s.io/utils/clock"
)

// View represents different views in the application
type View string

const (
	ViewWelcome View = "welcome"
	ViewSite    View = "site"
)

// NavigateMsg is sent to navigate between views
type NavigateMsg struct {
	To View
}

// AppModel shows the welcome screen and then the site
type AppModel struct {
	currentView View
	welcome     *components.WelcomeScreen
	site        *SiteModel
	logger      *pterm.Logger
	width       int
	height      int
	skipped     bool
	quitting    bool
}

// NewAppModel creates the application model around an inactive sequencer
func NewAppModel(cfg *config.Config, seq *sequencer.Sequencer, logger *pterm.Logger) *AppModel {
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	welcome := components.NewWelcomeScreen(seq, components.WelcomeOptions{
		Heading:        cfg.Site.Heading,
		Title:          cfg.Site.Title,
		URL:            cfg.Site.URL,
		TypewriterTick: cfg.Splash.TypewriterTick,
		FrameRate:      cfg.Splash.FrameRate,
		Particles:      cfg.Splash.Particles,
		Stars:          cfg.Splash.Stars,
		Seed:           cfg.Splash.Seed,
		SkipOnKeypress: cfg.Splash.SkipOnKeypress,
	})
	return &AppModel{
		currentView: ViewWelcome,
		welcome:     welcome,
		site:        NewSiteModel(cfg.Site),
		logger:      logger,
	}
}

// Init initializes the app
func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		tea.ClearScreen,
		m.welcome.Init(),
	)
}

// Update handles all messages and navigation
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.site.SetSize(size.Width, size.Height)
	}

	switch msg := msg.(type) {
	case components.CompleteMsg:
		m.skipped = msg.Skipped
		m.logger.Info("welcome screen complete", m.logger.Args("skipped", msg.Skipped))
		return m.navigate(NavigateMsg{To: ViewSite})

	case NavigateMsg:
		return m.navigate(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
	}

	switch m.currentView {
	case ViewWelcome:
		_, cmd := m.welcome.Update(msg)
		if m.welcome.Quitting() {
			m.quitting = true
		}
		return m, cmd
	case ViewSite:
		_, cmd := m.site.Update(msg)
		if m.site.Quitting() {
			m.quitting = true
		}
		return m, cmd
	}

	return m, nil
}

func (m *AppModel) quit() (tea.Model, tea.Cmd) {
	m.welcome.Release()
	m.quitting = true
	return m, tea.Quit
}

// View renders the current view
func (m *AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.currentView {
	case ViewSite:
		return m.site.View()
	default:
		return m.welcome.View()
	}
}

// CurrentView returns the view being shown
func (m *AppModel) CurrentView() View {
	return m.currentView
}

// Skipped reports whether the welcome screen was skipped
func (m *AppModel) Skipped() bool {
	return m.skipped
}

// navigate switches between views
func (m *AppModel) navigate(nav NavigateMsg) (tea.Model, tea.Cmd) {
	switch nav.To {
	case ViewWelcome:
		// the splash is single use
		return m, nil

	case ViewSite:
		m.welcome.Release()
		m.currentView = ViewSite
		return m, tea.Batch(tea.ClearScreen, m.site.Init())

	default:
		return m, nil
	}
}

// RunOptions controls where the program reads and writes
type RunOptions struct {
	Input     io.Reader
	Output    io.Writer
	AltScreen bool
}

// ShowWelcome runs the welcome screen followed by the site until the user
// quits or ctx is cancelled
func ShowWelcome(ctx context.Context, cfg *config.Config, logger *pterm.Logger, opts RunOptions) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	seq := sequencer.New(clock.RealClock{}, cfg.Timing(), sequencer.WithLogger(logger))
	app := NewAppModel(cfg, seq, logger)
	defer app.welcome.Release()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(app, programOpts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running application: %w", err)
	}
	return nil
}
