package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkraft/a11ykraft/internal/adapters/outbound/tui"
	"github.com/openkraft/a11ykraft/internal/domain/rules"
)

func newRulesCmd() *cobra.Command {
	var (
		examples   bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "rules [component]",
		Short: "Show the accessibility rules for a component type",
		Long:  "Without arguments, list the component types that have rules. With a component type, show its requirements, keyboard interactions and common violations.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				names := rules.Components()
				if jsonOutput {
					return renderJSON(cmd.OutOrStdout(), names)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderComponents(names))
				return nil
			}

			name, ok := rules.Lookup(args[0])
			if !ok {
				return fmt.Errorf("no rules for component %q (run a11ykraft rules to list them)", args[0])
			}
			rule, _ := rules.For(name)
			if jsonOutput {
				return renderJSON(cmd.OutOrStdout(), rule)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, tui.RenderRule(rule))
			if examples {
				fmt.Fprintf(out, "  Compliant:\n\n%s\n\n", indent(rule.Examples.Compliant))
				fmt.Fprintf(out, "  Non-compliant:\n\n%s\n\n", indent(rule.Examples.NonCompliant))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&examples, "examples", false, "Include compliant and non-compliant code examples")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func indent(code string) string {
	out := make([]byte, 0, len(code)+64)
	out = append(out, "    "...)
	for i := 0; i < len(code); i++ {
		out = append(out, code[i])
		if code[i] == '\n' && i < len(code)-1 {
			out = append(out, "    "...)
		}
	}
	return string(out)
}
