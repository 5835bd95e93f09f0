package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/openkraft/a11ykraft/internal/adapters/outbound/htmlreport"
	"github.com/openkraft/a11ykraft/internal/adapters/outbound/scanner"
	"github.com/openkraft/a11ykraft/internal/adapters/outbound/tui"
	"github.com/openkraft/a11ykraft/internal/application"
	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/openkraft/a11ykraft/internal/domain/report"
)

func newValidateCmd() *cobra.Command {
	var (
		component string
		level     string
		format    string
		output    string
		ciMode    bool
	)

	cmd := &cobra.Command{
		Use:   "validate <file|->",
		Short: "Validate one component source file",
		Long: "Check a component implementation against the WCAG criteria and ARIA patterns " +
			"for its type. The type is inferred from the file name unless --component is given. " +
			"Use - to read the source from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validFormat(format); err != nil {
				return err
			}
			lvl, err := parseLevelFlag(level)
			if err != nil {
				return err
			}

			file := args[0]
			code, err := readSource(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			if component == "" {
				if file == "-" {
					return fmt.Errorf("--component is required when reading from stdin")
				}
				component = scanner.NewClassifier().Classify(file)
			}

			svc := application.NewValidationService(slog.Default())
			r, err := svc.ValidateComponent(component, code, lvl)
			if err != nil {
				return fmt.Errorf("validate failed: %w", err)
			}
			if file != "-" {
				r.File = file
			}

			if err := renderReport(cmd, r, format, output); err != nil {
				return err
			}
			if ciMode && !r.Passed {
				return fmt.Errorf("%s failed accessibility validation (score %d)", r.Component, r.Score)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&component, "component", "c", "", "Component type (Button, Modal, Tabs, ...)")
	cmd.Flags().StringVarP(&level, "level", "l", "", "WCAG level: A, AA or AAA (default AA)")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json, markdown, html")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report to a file")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if the component fails")

	return cmd
}

func readSource(stdin io.Reader, file string) (string, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("reading source: %w", err)
	}
	return string(data), nil
}

func renderReport(cmd *cobra.Command, r domain.Report, format, output string) error {
	switch format {
	case formatJSON:
		return writeJSON(cmd, output, r)
	case formatMarkdown:
		return writeOutput(cmd, output, report.FormatMarkdown(r))
	case formatHTML:
		page, err := htmlreport.Report(r)
		if err != nil {
			return err
		}
		return writeOutput(cmd, output, page)
	default:
		return writeOutput(cmd, output, tui.RenderReport(r))
	}
}
