package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/linecook/cmd/linecook"
	"github.com/arthur-debert/linecook/internal/version"
)

func main() {
	rootCmd := linecook.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "LINECOOK",
		Section: "1",
		Source:  "linecook " + version.Version,
		Manual:  "linecook manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
