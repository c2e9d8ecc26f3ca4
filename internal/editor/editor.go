package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Scissors separates the text being written from the help shown below it.
// Everything from this line on is discarded.
const Scissors = "# ------------------------ >8 ------------------------"

// ResolveEditor determines which editor to use based on config, env vars, and fallback.
func ResolveEditor(configEditor string) string {
	if configEditor != "" {
		return configEditor
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	if ed := os.Getenv("VISUAL"); ed != "" {
		return ed
	}
	return "vi"
}

// Compose opens an empty buffer in the editor with help text under the
// scissors line and returns what the user wrote above it, trimmed. An empty
// result is not an error; callers apply their own validation.
func Compose(editorCmd, help string) (string, error) {
	parts := strings.Fields(editorCmd)
	if len(parts) == 0 {
		return "", fmt.Errorf("empty editor command")
	}

	tmp, err := os.CreateTemp("", "moodtrack-*.md")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	initial := "\n\n" + Scissors + "\n" + help
	if !strings.HasSuffix(initial, "\n") {
		initial += "\n"
	}
	if _, err := tmp.WriteString(initial); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	tmp.Close()

	cmd := exec.Command(parts[0], append(parts[1:], tmpName)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor exited with error: %w", err)
	}

	data, err := os.ReadFile(tmpName)
	if err != nil {
		return "", fmt.Errorf("reading edited file: %w", err)
	}
	return StripHelp(string(data)), nil
}

// StripHelp cuts s at the scissors line and trims the remainder.
func StripHelp(s string) string {
	if i := strings.Index(s, Scissors); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
