package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/noahwilliamshaffer/resumesite/internal/pdf"
	"github.com/noahwilliamshaffer/resumesite/internal/resume"
)

var parseAsJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a resume file into structured sections",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(args[0])
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseAsJSON, "json", false, "Emit raw JSON instead of formatted output")
	rootCmd.AddCommand(parseCmd)
}

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))
)

func runParse(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	text, err := resume.ExtractText(context.Background(), pdf.NewEngine(), filepath.Base(path), data)
	if err != nil {
		return err
	}
	parsed := resume.Parse(text)

	if parseAsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(parsed)
	}

	printResume(parsed)
	return nil
}

func printResume(r *resume.Resume) {
	fmt.Println(nameStyle.Render(r.Contact.Name))
	for _, line := range []struct{ label, value string }{
		{"Email", r.Contact.Email},
		{"Phone", r.Contact.Phone},
		{"Location", r.Contact.Location},
		{"LinkedIn", r.Contact.LinkedIn},
		{"GitHub", r.Contact.GitHub},
	} {
		if line.value != "" {
			fmt.Printf("%s %s\n", labelStyle.Render(line.label+":"), line.value)
		}
	}

	if r.Summary != "" {
		fmt.Println("\n" + headingStyle.Render("Summary"))
		fmt.Println(r.Summary)
	}

	if len(r.Skills) > 0 {
		fmt.Println("\n" + headingStyle.Render("Skills"))
		var names []string
		for _, s := range r.Skills {
			names = append(names, s.Name)
		}
		fmt.Println(strings.Join(names, ", "))
	}

	if len(r.Experience) > 0 {
		fmt.Println("\n" + headingStyle.Render("Experience"))
		for _, e := range r.Experience {
			fmt.Printf("%s — %s (%s - %s)\n", nameStyle.Render(e.Title), e.Company, e.StartDate, e.EndDate)
			for _, b := range e.Bullets {
				fmt.Println("  • " + b)
			}
		}
	}

	if len(r.Education) > 0 {
		fmt.Println("\n" + headingStyle.Render("Education"))
		for _, e := range r.Education {
			fmt.Printf("%s, %s %s\n", e.Degree, e.Institution, labelStyle.Render(e.GraduationDate))
		}
	}

	if len(r.Certifications) > 0 {
		fmt.Println("\n" + headingStyle.Render("Certifications"))
		for _, c := range r.Certifications {
			fmt.Printf("%s %s\n", c.Name, labelStyle.Render("("+c.Issuer+")"))
		}
	}

	if len(r.Keywords) > 0 {
		fmt.Println("\n" + headingStyle.Render("Keywords"))
		fmt.Println(labelStyle.Render(strings.Join(r.Keywords, ", ")))
	}
}
