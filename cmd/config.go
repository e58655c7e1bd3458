package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/karthickk/welcome/pkg/config"
	"github.com/karthickk/welcome/pkg/ui"
	"github.com/karthickk/welcome/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage welcome configuration",
		Long:  `Configure the site details and the timing of the welcome screen.`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigValidateCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration interactively",
		Long:  `Initialize the welcome configuration by prompting for the site details.`,
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  `Display the current welcome configuration.`,
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  `Set a specific configuration value. Use dot notation for nested keys (e.g., splash.duration).`,
		Args:  cobra.ExactArgs(2),
		RunE:  runConfigSet,
	}

	return cmd
}

func newConfigValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		Long:  `Validate the current configuration, including the reveal timing.`,
		Args:  cobra.NoArgs,
		RunE:  runConfigValidate,
	}

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "🚀 Initializing welcome configuration...")
	fmt.Fprintln(out)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var owner string
	prompt := &survey.Input{
		Message: "Your name or handle:",
		Default: cfg.Site.Owner,
	}
	if err := survey.AskOne(prompt, &owner, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var title string
	prompt = &survey.Input{
		Message: "Title shown in big letters:",
		Default: cfg.Site.Title,
	}
	if err := survey.AskOne(prompt, &title, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var url string
	prompt = &survey.Input{
		Message: "Website typed out on the welcome screen:",
		Default: cfg.Site.URL,
	}
	if err := survey.AskOne(prompt, &url, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	var github string
	prompt = &survey.Input{
		Message: "GitHub profile (optional):",
		Default: cfg.Site.GitHub,
	}
	if err := survey.AskOne(prompt, &github); err != nil {
		return err
	}

	var duration string
	prompt = &survey.Input{
		Message: "Loading duration:",
		Default: cfg.Splash.Duration.String(),
	}
	if err := survey.AskOne(prompt, &duration, survey.WithValidator(validateDuration)); err != nil {
		return err
	}

	values := []struct {
		key   string
		value interface{}
	}{
		{"site.owner", owner},
		{"site.title", title},
		{"site.url", url},
		{"site.github", github},
		{"splash.duration", duration},
	}
	for _, v := range values {
		if err := config.Update(v.key, v.value); err != nil {
			return fmt.Errorf("failed to save %s: %w", v.key, err)
		}
	}

	fmt.Fprintln(out)
	ui.ShowSuccess(out, "Configuration initialized successfully!")
	ui.ShowInfo(out, "Run 'welcome config validate' to check the configuration.")

	return nil
}

func validateDuration(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return fmt.Errorf("expected a duration")
	}
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if d <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "📋 Current welcome configuration:")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "🌐 Site:")
	fmt.Fprintf(out, "  Owner:      %s\n", cfg.Site.Owner)
	fmt.Fprintf(out, "  Heading:    %s\n", cfg.Site.Heading)
	fmt.Fprintf(out, "  Title:      %s\n", cfg.Site.Title)
	fmt.Fprintf(out, "  URL:        %s\n", cfg.Site.URL)
	fmt.Fprintf(out, "  GitHub:     %s\n", cfg.Site.GitHub)
	if len(cfg.Site.Links) > 0 {
		fmt.Fprintf(out, "  Links:      %s\n", strings.Join(cfg.Site.Links, ", "))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "✨ Splash:")
	fmt.Fprintf(out, "  Secondary:  %s\n", cfg.Splash.SecondaryDelay)
	fmt.Fprintf(out, "  Duration:   %s\n", cfg.Splash.Duration)
	fmt.Fprintf(out, "  Exit delay: %s\n", cfg.Splash.ExitDelay)
	fmt.Fprintf(out, "  Typewriter: %s\n", cfg.Splash.TypewriterTick)
	fmt.Fprintf(out, "  Particles:  %d\n", cfg.Splash.Particles)
	fmt.Fprintf(out, "  Stars:      %d\n", cfg.Splash.Stars)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "📊 Log Level:   %s\n", cfg.LogLevel)
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(out, "📁 Config file: %s\n", used)
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(args[0])
	value := args[1]

	if _, err := loadConfig(cmd); err != nil {
		return err
	}
	if !viper.IsSet(key) {
		return fmt.Errorf("unknown configuration key %q", key)
	}

	if err := config.Update(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	out := cmd.OutOrStdout()
	ui.ShowSuccess(out, fmt.Sprintf("Set %s = %s", key, value))
	if err := config.Get().Validate(); err != nil {
		ui.ShowWarning(out, fmt.Sprintf("Configuration is now invalid: %v", err))
	}
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "🔍 Validating welcome configuration...")
	fmt.Fprintln(out)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	ui.ShowSuccess(out, "Configuration is valid")

	timing := cfg.Timing()
	fmt.Fprintf(out, "⏱  Secondary effect after %s, site after %s\n",
		utils.FormatRemaining(timing.SecondaryDelay), utils.FormatRemaining(timing.Total()))

	return nil
}
