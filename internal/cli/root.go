// Package cli defines the resumesite command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumesite",
	Short: "Resume and PDF document viewing backend",
	Long: `resumesite serves a personal resume site's backend: it discovers PDF
documents, extracts their text and table of contents, indexes them for
search, and parses the resume into structured sections.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
