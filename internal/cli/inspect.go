package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/noahwilliamshaffer/resumesite/internal/pdf"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.pdf>",
	Short: "Show a PDF's metadata and inferred table of contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(args[0])
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	proc, err := pdf.Load(pdf.NewEngine(), data)
	if err != nil {
		return err
	}
	defer proc.Destroy()

	meta := proc.Metadata()
	fmt.Println(headingStyle.Render("Document"))
	fmt.Printf("%s %d\n", labelStyle.Render("Pages:"), proc.NumPages())
	fmt.Printf("%s %s\n", labelStyle.Render("Fingerprint:"), proc.Fingerprint())
	for _, line := range []struct{ label, value string }{
		{"Title", meta.Title},
		{"Author", meta.Author},
		{"Subject", meta.Subject},
		{"Creator", meta.Creator},
		{"Producer", meta.Producer},
	} {
		if line.value != "" {
			fmt.Printf("%s %s\n", labelStyle.Render(line.label+":"), line.value)
		}
	}

	toc := proc.GenerateTOC()
	fmt.Println("\n" + headingStyle.Render("Table of Contents"))
	if len(toc) == 0 {
		fmt.Println(labelStyle.Render("(no headings found)"))
		return nil
	}
	for _, e := range toc {
		indent := strings.Repeat("  ", e.Level-1)
		fmt.Printf("%s%s %s\n", indent, e.Title, labelStyle.Render(fmt.Sprintf("p.%d", e.Page)))
	}
	return nil
}
