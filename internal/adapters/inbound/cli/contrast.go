package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/openkraft/a11ykraft/internal/adapters/outbound/tui"
	"github.com/openkraft/a11ykraft/internal/application"
)

func newContrastCmd() *cobra.Command {
	var (
		jsonOutput bool
		largeText  bool
		ciMode     bool
	)

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Compute the WCAG contrast ratio of two colors",
		Long: "Accepts #rrggbb, #rgb (the # is optional) and rgb()/rgba() colors. " +
			"Unparseable colors are treated as black.",
		Example: "  a11ykraft contrast '#767676' white\n  a11ykraft contrast 'rgb(51, 51, 51)' '#fafafa' --json",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, bg := args[0], args[1]
			svc := application.NewValidationService(slog.Default())
			r := svc.CheckColorContrast(fg, bg)

			if jsonOutput {
				if err := renderJSON(cmd.OutOrStdout(), r); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderContrast(fg, bg, r))
			}

			if ciMode && !svc.MeetsAAContrast(fg, bg, largeText) {
				return fmt.Errorf("contrast %.2f:1 does not meet AA", r.Ratio)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON")
	cmd.Flags().BoolVar(&largeText, "large", false, "Judge AA for large text (3:1) in CI mode")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if the pair fails AA")

	return cmd
}
