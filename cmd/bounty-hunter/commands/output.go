package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// timestampLayout is the layout of generated_at fields.
const timestampLayout = "2006-01-02 15:04:05 UTC"

// now is replaced in tests.
var now = time.Now

func nowUTC() string {
	return now().UTC().Format(timestampLayout)
}

// printJSON writes v as indented JSON without HTML escaping.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// printText writes s followed by a newline.
func printText(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
