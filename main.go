package main

import (
	"os"

	"github.com/karthickk/welcome/cmd"
	"github.com/karthickk/welcome/pkg/ui"
)

var version = "dev"

func main() {
	if err := cmd.Execute(version); err != nil {
		ui.ShowError(os.Stderr, err.Error())
		os.Exit(1)
	}
}
