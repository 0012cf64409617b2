package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/linecook/cmd/linecook"
)

func main() {
	rootCmd := linecook.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(err)
		os.Exit(1)
	}
}
