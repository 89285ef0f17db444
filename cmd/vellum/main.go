// Command vellum serves, renders, and publishes the built-in gallery.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vellum",
		Short: "An HTML rendering engine for Go",
		Long: `vellum renders declarative markup trees to HTML with
deterministic class names, grouped stylesheets, and progressive
streaming.

The CLI ships a small gallery of demo pages:

  vellum serve              serve the gallery over HTTP
  vellum render components  render one page to stdout
  vellum publish --out dst  render and publish the whole gallery`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config-file", "vellum.yaml", "Config file path")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		serveCmd(),
		renderCmd(),
		publishCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
		os.Exit(1)
	}
}
