package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openkraft/a11ykraft/internal/adapters/outbound/tui"
	"github.com/openkraft/a11ykraft/internal/domain"
	"github.com/openkraft/a11ykraft/internal/domain/criteria"
	"github.com/openkraft/a11ykraft/internal/domain/rules"
)

func newCriteriaCmd() *cobra.Command {
	var (
		level      string
		principle  string
		version    string
		component  string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "criteria [id]",
		Short: "Browse the WCAG success criteria catalog",
		Long: "List WCAG success criteria, filtered by level (at or below), principle, " +
			"WCAG version and component type, or show one criterion by id.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				c, ok := criteria.Get(args[0])
				if !ok {
					return fmt.Errorf("unknown criterion %q", args[0])
				}
				if jsonOutput {
					return renderJSON(cmd.OutOrStdout(), c)
				}
				fmt.Fprint(cmd.OutOrStdout(), renderCriterion(c))
				return nil
			}

			list, err := filterCriteria(level, principle, version, component)
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderJSON(cmd.OutOrStdout(), list)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCriteria(list))
			return nil
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "", "Only criteria at or below this level (A, AA, AAA)")
	cmd.Flags().StringVarP(&principle, "principle", "p", "", "Only this principle (Perceivable, Operable, Understandable, Robust)")
	cmd.Flags().StringVar(&version, "version", "", "Only criteria introduced in this WCAG version (2.0, 2.1, 2.2)")
	cmd.Flags().StringVarP(&component, "component", "c", "", "Only criteria applicable to this component type")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func filterCriteria(level, principle, version, component string) ([]domain.Criterion, error) {
	list := criteria.All()

	if level != "" {
		lvl, err := domain.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		list = keep(list, func(c domain.Criterion) bool { return lvl.Includes(c.Level) })
	}
	if principle != "" {
		i := slices.IndexFunc(domain.ValidPrinciples, func(p domain.Principle) bool {
			return strings.EqualFold(string(p), principle)
		})
		if i < 0 {
			return nil, fmt.Errorf("%w: unknown principle %q", domain.ErrInvalidArgument, principle)
		}
		p := domain.ValidPrinciples[i]
		list = keep(list, func(c domain.Criterion) bool { return c.Principle == p })
	}
	if version != "" {
		list = keep(list, func(c domain.Criterion) bool { return c.Version == version })
	}
	if component != "" {
		if name, ok := rules.Lookup(component); ok {
			component = name
		}
		list = keep(list, func(c domain.Criterion) bool { return c.AppliesTo(component) })
	}
	return list, nil
}

func keep(list []domain.Criterion, pred func(domain.Criterion) bool) []domain.Criterion {
	out := make([]domain.Criterion, 0, len(list))
	for _, c := range list {
		if pred(c) {
			out = append(out, c)
		}
	}
	return out
}

func renderCriterion(c domain.Criterion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s %s (Level %s, WCAG %s)\n", c.ID, c.Name, c.Level, c.Version)
	fmt.Fprintf(&b, "  %s / %s\n\n", c.Principle, c.Guideline)
	fmt.Fprintf(&b, "  %s\n\n", c.Description)
	if c.TestProcedure != "" {
		fmt.Fprintf(&b, "  Test: %s\n", c.TestProcedure)
	}
	if len(c.Techniques) > 0 {
		fmt.Fprintf(&b, "  Techniques: %s\n", strings.Join(c.Techniques, ", "))
	}
	if len(c.Failures) > 0 {
		fmt.Fprintf(&b, "  Failures: %s\n", strings.Join(c.Failures, ", "))
	}
	fmt.Fprintf(&b, "  Components: %s\n\n", strings.Join(c.Components, ", "))
	return b.String()
}
