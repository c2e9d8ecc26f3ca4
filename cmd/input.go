package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chris-regnier/moodtrack/internal/editor"
)

var stdin io.Reader = os.Stdin

// readEntryText collects entry text from the arguments, from stdin when the
// only argument is "-", or from the editor when edit is set.
func readEntryText(args []string, edit bool, help string) (string, error) {
	switch {
	case edit:
		if len(args) > 0 {
			return "", fmt.Errorf("--edit does not take text arguments")
		}
		return editor.Compose(editor.ResolveEditor(appConfig.Editor), help)
	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	default:
		return strings.Join(args, " "), nil
	}
}
