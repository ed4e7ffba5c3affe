package main

import (
	"os"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	// Only apply formatting if output is a terminal
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatUpper returns the string in uppercase
func formatUpper(s string) string {
	return strings.ToUpper(s)
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":  formatBold,
		"upper": formatUpper,
	})
}

// renderMarkdown converts markdown to terminal output via glamour,
// falling back to the raw text when rendering is not possible
func renderMarkdown(content string) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		options = []glamour.TermRendererOption{glamour.WithStandardStyle("notty")}
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
