package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/karthickk/welcome/pkg/config"
	"github.com/pterm/pterm"
)

// DisplayHeader writes the big-text title and the owner panel to w
func DisplayHeader(w io.Writer, site config.SiteConfig) error {
	s, err := pterm.DefaultBigText.WithLetters(
		pterm.NewLettersFromStringWithStyle(site.Title, pterm.NewStyle(pterm.FgMagenta)),
	).Srender()
	if err != nil {
		return fmt.Errorf("rendering title: %w", err)
	}
	if site.Heading != "" {
		fmt.Fprintln(w, pterm.NewStyle(pterm.FgLightMagenta, pterm.Bold).Sprint(site.Heading))
	}
	fmt.Fprint(w, s)

	data := [][]string{
		{"👤", "Owner", site.Owner},
		{"🌐", "Website", site.URL},
	}
	if site.GitHub != "" {
		data = append(data, []string{"⎇", "GitHub", site.GitHub})
	}

	table, err := pterm.DefaultTable.WithHasHeader(false).
		WithBoxed(true).
		WithData(data).
		Srender()
	if err != nil {
		return fmt.Errorf("rendering owner panel: %w", err)
	}
	fmt.Fprintln(w, table)
	fmt.Fprintln(w)
	return nil
}

// SetupInterruptHandler returns a context cancelled on SIGINT or SIGTERM
func SetupInterruptHandler(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// ShowGoodbye prints the farewell line
func ShowGoodbye(w io.Writer) {
	fmt.Fprintln(w, color.CyanString("👋 Thanks for visiting!"))
}

// ShowError displays an error message in red
func ShowError(w io.Writer, msg string) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(w, "%s %s\n", red("❌ Error:"), msg)
}

// ShowSuccess displays a success message in green
func ShowSuccess(w io.Writer, msg string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(w, "%s %s\n", green("✅ Success:"), msg)
}

// ShowInfo displays an info message in blue
func ShowInfo(w io.Writer, msg string) {
	blue := color.New(color.FgBlue).SprintFunc()
	fmt.Fprintf(w, "%s %s\n", blue("ℹ️  Info:"), msg)
}

// ShowWarning displays a warning message in yellow
func ShowWarning(w io.Writer, msg string) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(w, "%s %s\n", yellow("⚠️  Warning:"), msg)
}
