package main

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(12)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version)
				return
			}

			fmt.Fprintln(out, bannerStyle.Render("vellum"))
			fmt.Fprintln(out, labelStyle.Render("Version:"), version)
			fmt.Fprintln(out, labelStyle.Render("Commit:"), commit)
			fmt.Fprintln(out, labelStyle.Render("Built:"), date)
			fmt.Fprintln(out, labelStyle.Render("Go version:"), runtime.Version())
			fmt.Fprintln(out, labelStyle.Render("OS/Arch:"), runtime.GOOS+"/"+runtime.GOARCH)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only the version number")

	return cmd
}
