package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// output renders a command result as JSON or as the text produced by textFn.
func output(w io.Writer, format string, v any, textFn func(w io.Writer)) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	textFn(w)
	return nil
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
