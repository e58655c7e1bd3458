package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/karthickk/welcome/internal/ui/views"
	"github.com/karthickk/welcome/pkg/config"
	"github.com/karthickk/welcome/pkg/sequencer"
	"github.com/karthickk/welcome/pkg/ui"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/utils/clock"
)

var (
	cfgFile   string
	debug     bool
	plainMode bool
)

// flagKeys maps welcome flags to configuration keys
var flagKeys = map[string]string{
	"secondary-delay": "splash.secondary_delay",
	"duration":        "splash.duration",
	"exit-delay":      "splash.exit_delay",
	"url":             "site.url",
	"seed":            "splash.seed",
}

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "welcome",
		Short: "Animated portfolio welcome screen",
		Long: `Welcome shows an animated welcome screen for a personal portfolio.
The title, link and progress bar are revealed on a timer, then the site page opens.
When stdout is not a terminal the sequence is printed as plain lines.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWelcome(cmd)
		},
	}

	cmd.AddCommand(newVersionCmd(version))
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newManCmd())

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/welcome/welcome.yaml)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	cmd.Flags().BoolVar(&plainMode, "plain", false, "Print the sequence as plain lines instead of the animated screen")
	cmd.Flags().Duration("secondary-delay", sequencer.DefaultSecondaryDelay, "Delay before the secondary effect starts")
	cmd.Flags().Duration("duration", sequencer.DefaultLoadingDuration, "How long the loading phase lasts")
	cmd.Flags().Duration("exit-delay", sequencer.DefaultExitDelay, "Delay between the end of loading and the site page")
	cmd.Flags().String("url", "", "Link typed out on the welcome screen")
	cmd.Flags().Uint64("seed", 0, "Seed for the background animation (0 picks one)")

	cmd.SetUsageTemplate(customUsageTemplate())

	return cmd
}

// Execute invokes the command.
func Execute(version string) error {
	if err := newRootCmd(version).Execute(); err != nil {
		return fmt.Errorf("error executing root command: %w", err)
	}

	return nil
}

// loadConfig reads the config file and environment, then applies any
// welcome flags found on cmd
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var err error
	if cfgFile != "" {
		_, err = config.LoadFile(cfgFile)
	} else {
		_, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}

	cfg, err := config.Reload()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if debug {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// runWelcome shows the welcome screen, animated on a terminal and as plain
// lines otherwise
func runWelcome(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := ui.SetupInterruptHandler(cmd.Context())
	defer cancel()

	out := cmd.OutOrStdout()
	if plainMode || !isTerminal(out) {
		logger := ui.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
		return ui.RunPlain(ctx, out, cfg, clock.RealClock{}, logger)
	}

	logger, closeLog, err := tuiLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	start := time.Now()
	if err := views.ShowWelcome(ctx, cfg, logger, views.RunOptions{Output: out, AltScreen: true}); err != nil {
		return err
	}
	logger.Debug("session finished", logger.Args("duration", time.Since(start).Round(time.Millisecond)))

	ui.ShowGoodbye(out)
	return nil
}

// tuiLogger logs to the configured file, since writing to the terminal
// would tear the alternate screen
func tuiLogger(cfg *config.Config) (*pterm.Logger, func() error, error) {
	path := cfg.LogFile
	if path == "" && debug {
		path = "welcome-debug.log"
	}
	if path == "" {
		return ui.NewLogger("disabled", io.Discard), func() error { return nil }, nil
	}
	return ui.NewFileLogger(cfg.LogLevel, path)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// customUsageTemplate returns a custom usage template
func customUsageTemplate() string {
	return `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
}
