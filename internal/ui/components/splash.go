package components

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/karthickk/welcome/pkg/sequencer"
	"github.com/karthickk/welcome/pkg/utils"
	"github.com/pterm/pterm"
)

// When each part of the welcome screen appears
const (
	headingAt        = 1500 * time.Millisecond
	titleAt          = 2 * time.Second
	underlineAt      = 2500 * time.Millisecond
	underlineGrowFor = 1 * time.Second
	linkAt           = 3 * time.Second
	progressAt       = 4 * time.Second
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// frameMsg advances the background animation
type frameMsg struct{}

// WelcomeOptions configures the welcome screen
type WelcomeOptions struct {
	Heading        string
	Title          string
	URL            string
	TypewriterTick time.Duration
	FrameRate      time.Duration
	Particles      int
	Stars          int
	Seed           uint64
	SkipOnKeypress bool
}

type welcomeKeys struct {
	Quit key.Binding
	Skip key.Binding
}

var defaultWelcomeKeys = welcomeKeys{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
	Skip: key.NewBinding(
		key.WithKeys("enter", " ", "s"),
		key.WithHelp("enter", "skip"),
	),
}

// WelcomeScreen is the animated splash. It activates its sequencer in Init
// and releases it when the splash completes, is skipped or quits.
type WelcomeScreen struct {
	seq  *sequencer.Sequencer
	stop func()

	logo       *Logo
	titleLines []string
	icons      *IconRow
	particles  *ParticleField
	stars      *StarField
	typer      TypewriterModel
	indicator  LoadingIndicator
	keys       welcomeKeys

	frameRate      time.Duration
	skipOnKeypress bool

	elapsed time.Duration
	state   sequencer.State
	done    bool
	quit    bool
	width   int
	height  int
}

// NewWelcomeScreen creates the splash around an inactive sequencer
func NewWelcomeScreen(seq *sequencer.Sequencer, opts WelcomeOptions) *WelcomeScreen {
	if opts.FrameRate <= 0 {
		opts.FrameRate = 50 * time.Millisecond
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	logo := NewLogo(opts.Heading, opts.Title)
	logo.URL = opts.URL

	message := "enter to skip"
	if opts.SkipOnKeypress {
		message = "press any key to skip"
	}

	return &WelcomeScreen{
		seq:            seq,
		logo:           logo,
		titleLines:     logo.TitleLines(),
		icons:          NewIconRow(DefaultIcons),
		particles:      NewParticleField(opts.Particles, rng),
		stars:          NewStarField(opts.Stars, rng),
		typer:          NewTypewriter(opts.URL, opts.TypewriterTick),
		indicator:      NewLoadingIndicator(message),
		keys:           defaultWelcomeKeys,
		frameRate:      opts.FrameRate,
		skipOnKeypress: opts.SkipOnKeypress,
		state:          sequencer.State{IsLoading: true},
	}
}

// Init activates the sequencer and starts the animations
func (m *WelcomeScreen) Init() tea.Cmd {
	m.stop = m.seq.Start(nil)
	return tea.Batch(
		WaitForEvent(m.seq.Events()),
		m.nextFrame(),
		m.typer.Init(),
		m.indicator.Init(),
	)
}

func (m *WelcomeScreen) nextFrame() tea.Cmd {
	return tea.Tick(m.frameRate, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// Update handles sequencer events, animation ticks and keys
func (m *WelcomeScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case frameMsg:
		if m.done {
			return m, nil
		}
		m.elapsed += m.frameRate
		m.particles.Advance(m.frameRate)
		m.stars.Advance(m.frameRate)
		return m, m.nextFrame()

	case SequencerMsg:
		switch msg.Event {
		case sequencer.EventSecondaryEffect:
			m.state.ShowSecondaryEffect = true
			m.stars.Show()
		case sequencer.EventLoadingDone:
			m.state.IsLoading = false
			m.indicator.SetMessage("ready")
		case sequencer.EventComplete:
			m.state.Completed = true
			return m, m.finish(false)
		}
		return m, WaitForEvent(m.seq.Events())

	case sequencerClosedMsg:
		return m, nil

	case TypewriterTickMsg:
		var cmd tea.Cmd
		m.typer, cmd = m.typer.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.indicator, cmd = m.indicator.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quit = true
			m.Release()
			return m, tea.Quit
		}
		if m.skipOnKeypress || key.Matches(msg, m.keys.Skip) {
			return m, m.finish(true)
		}
	}

	return m, nil
}

// finish releases the sequencer and reports completion once
func (m *WelcomeScreen) finish(skipped bool) tea.Cmd {
	if m.done {
		return nil
	}
	m.done = true
	m.Release()
	return func() tea.Msg {
		return CompleteMsg{Skipped: skipped}
	}
}

// Release cancels any pending sequencer timer. Safe to call more than once.
func (m *WelcomeScreen) Release() {
	if m.stop != nil {
		m.stop()
		m.stop = nil
	}
}

// State returns the sequencer state as seen by the screen
func (m *WelcomeScreen) State() sequencer.State {
	return m.state
}

// Elapsed returns the animation time
func (m *WelcomeScreen) Elapsed() time.Duration {
	return m.elapsed
}

// Done reports whether the splash has completed or been skipped
func (m *WelcomeScreen) Done() bool {
	return m.done
}

// Quitting reports whether the user asked to quit from the splash
func (m *WelcomeScreen) Quitting() bool {
	return m.quit
}

// View renders the splash over the particle background
func (m *WelcomeScreen) View() string {
	width, height := m.width, m.height
	if width <= 0 || height <= 0 {
		width, height = defaultWidth, defaultHeight
	}

	canvas := NewCanvas(width, height)
	m.particles.Plot(canvas)
	if m.state.ShowSecondaryEffect {
		m.stars.Plot(canvas)
	}

	content := m.content()
	if !m.state.IsLoading {
		for i, line := range content {
			content[i] = FadeStyle.Render(pterm.RemoveColorFromString(line))
		}
	}

	top := (height - len(content)) / 2
	if top < 0 {
		top = 0
	}
	return canvas.Compose(content, top)
}

func (m *WelcomeScreen) content() []string {
	var lines []string

	lines = append(lines, strings.Split(m.icons.View(m.elapsed), "\n")...)
	lines = append(lines, "")

	lines = append(lines, revealed(m.elapsed >= headingAt, HeadingStyle.Render(m.logo.Heading)), "")

	for _, line := range m.titleLines {
		lines = append(lines, revealed(m.elapsed >= titleAt, line))
	}
	lines = append(lines, m.logo.Underline(float64(m.elapsed-underlineAt)/float64(underlineGrowFor)))
	lines = append(lines, "")

	link := LinkBoxStyle.Render(IconStyle.Render("◍") + " " + m.typer.ViewAt(m.elapsed) + " " + ZapStyle.Render("⚡"))
	for _, line := range strings.Split(link, "\n") {
		lines = append(lines, revealed(m.elapsed >= linkAt, line))
	}
	lines = append(lines, "")

	showProgress := m.elapsed >= progressAt
	total := m.seq.Timing().Total()
	lines = append(lines,
		revealed(showProgress, m.indicator.Dots()),
		revealed(showProgress, m.indicator.Bar(utils.Progress(m.elapsed, m.seq.Timing().LoadingDuration))),
		revealed(showProgress, m.indicator.Footer("revealing in "+utils.FormatRemaining(total-m.elapsed))),
	)

	return lines
}

func revealed(visible bool, line string) string {
	if visible {
		return line
	}
	return ""
}
