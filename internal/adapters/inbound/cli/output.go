package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/openkraft/a11ykraft/internal/domain"
)

const (
	formatText     = "text"
	formatJSON     = "json"
	formatMarkdown = "markdown"
	formatHTML     = "html"
)

func validFormat(f string) error {
	switch f {
	case formatText, formatJSON, formatMarkdown, formatHTML:
		return nil
	}
	return fmt.Errorf("unknown format %q (valid: text, json, markdown, html)", f)
}

func parseLevelFlag(s string) (domain.Level, error) {
	if s == "" {
		return "", nil
	}
	return domain.ParseLevel(s)
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeJSON(cmd *cobra.Command, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return writeOutput(cmd, path, string(data)+"\n")
}

// writeOutput writes s to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path, s string) error {
	if path == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), s)
		return err
	}
	if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
	return nil
}
