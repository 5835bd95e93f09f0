package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openkraft/a11ykraft/internal/adapters/outbound/cache"
	"github.com/openkraft/a11ykraft/internal/adapters/outbound/config"
	"github.com/openkraft/a11ykraft/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/a11ykraft/internal/adapters/outbound/history"
	"github.com/openkraft/a11ykraft/internal/adapters/outbound/htmlreport"
	"github.com/openkraft/a11ykraft/internal/adapters/outbound/scanner"
	"github.com/openkraft/a11ykraft/internal/adapters/outbound/tui"
	"github.com/openkraft/a11ykraft/internal/application"
	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/openkraft/a11ykraft/internal/domain/report"
)

func newScanService(logger *slog.Logger) *application.ScanService {
	return application.NewScanService(
		scanner.New(),
		scanner.NewClassifier(),
		config.New(),
		gitinfo.New(),
		application.NewValidationService(logger),
		logger,
	)
}

func newScanCmd() *cobra.Command {
	var (
		level       string
		format      string
		output      string
		ciMode      bool
		minScore    int
		badge       bool
		showHistory bool
		noHistory   bool
		useCache    bool
		clearCache  bool
	)

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Validate every component in a project",
		Long: "Walk a project for component sources, infer each component type, validate " +
			"them in parallel and summarize the results.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			hist := history.New()
			if showHistory {
				entries, err := hist.Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			if err := validFormat(format); err != nil {
				return err
			}
			lvl, err := parseLevelFlag(level)
			if err != nil {
				return err
			}

			logger := slog.Default()
			svc := newScanService(logger)
			store := cache.New()
			if clearCache {
				if err := svc.WithCache(store).ClearCache(absPath); err != nil {
					return err
				}
			}
			if useCache {
				svc = svc.WithCache(store)
			}
			scan, err := svc.ScanProject(cmd.Context(), absPath, lvl)
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			if !noHistory {
				if err := hist.Save(absPath, scan.Entry()); err != nil {
					logger.Warn("could not save scan history", "error", err)
				}
			}

			switch {
			case badge:
				fmt.Fprintln(cmd.OutOrStdout(), badgeURL(scan.Summary.AverageScore))
			case format == formatJSON:
				if err := writeJSON(cmd, output, scan); err != nil {
					return err
				}
			case format == formatMarkdown:
				if err := writeOutput(cmd, output, report.FormatScanMarkdown(*scan)); err != nil {
					return err
				}
			case format == formatHTML:
				page, err := htmlreport.Scan(*scan)
				if err != nil {
					return err
				}
				if err := writeOutput(cmd, output, page); err != nil {
					return err
				}
			default:
				if err := writeOutput(cmd, output, tui.RenderScan(scan)); err != nil {
					return err
				}
			}

			if ciMode {
				return ciGate(scan, minScore)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "", "WCAG level: A, AA or AAA (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text, json, markdown, html")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the report to a file")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if any component fails or the average is below --min")
	cmd.Flags().IntVar(&minScore, "min", -1, "Minimum average score for CI mode (default: min_score from config)")
	cmd.Flags().BoolVar(&badge, "badge", false, "Output shields.io badge URL")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show scan history")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this scan in history")
	cmd.Flags().BoolVar(&useCache, "cache", false, "Reuse reports for unchanged files (stored in .a11ykraft/cache)")
	cmd.Flags().BoolVar(&clearCache, "clear-cache", false, "Delete cached reports before scanning")

	return cmd
}

func ciGate(scan *domain.ProjectScan, minScore int) error {
	if minScore < 0 {
		cfg, err := config.New().Load(scan.Root)
		if err != nil {
			return err
		}
		minScore = cfg.MinScore
	}
	var failed []string
	for _, r := range scan.Reports {
		if !r.Passed {
			failed = append(failed, r.File)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d component(s) failed: %s", len(failed), strings.Join(failed, ", "))
	}
	if scan.Summary.AverageScore < minScore {
		return fmt.Errorf("average score %d is below minimum %d", scan.Summary.AverageScore, minScore)
	}
	return nil
}

func badgeURL(score int) string {
	return fmt.Sprintf("https://img.shields.io/badge/a11y-%d%%2F100-%s", score, domain.BadgeColor(score))
}
