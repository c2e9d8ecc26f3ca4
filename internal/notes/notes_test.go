package notes

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/moodtrack/internal/entry"
)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.Local)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  entry.JournalEntry
	}{
		{
			name:  "no front matter",
			input: "Felt okay today\n",
			want:  entry.JournalEntry{Date: "2026-10-19", Mood: "Neutral", Notes: "Felt okay today"},
		},
		{
			name:  "date and mood",
			input: "---\ndate: 2026-10-17\nmood: Happy\n---\n\n# Saturday\n\nLong walk.\n",
			want:  entry.JournalEntry{Date: "2026-10-17", Mood: "Happy", Notes: "# Saturday\n\nLong walk."},
		},
		{
			name:  "date only",
			input: "---\ndate: \"2026-10-18\"\n---\nquiet day",
			want:  entry.JournalEntry{Date: "2026-10-18", Mood: "Neutral", Notes: "quiet day"},
		},
		{
			name:  "mood only",
			input: "---\nmood: Tired\n---\nlate night",
			want:  entry.JournalEntry{Date: "2026-10-19", Mood: "Tired", Notes: "late night"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input), now)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseEmptyBody(t *testing.T) {
	_, err := Parse(strings.NewReader("---\nmood: Sad\n---\n\n   \n"), now)
	if !errors.Is(err, entry.ErrEmptyText) {
		t.Errorf("expected ErrEmptyText, got %v", err)
	}
}

func TestParseBadDate(t *testing.T) {
	_, err := Parse(strings.NewReader("---\ndate: yesterday\n---\ntext"), now)
	if !errors.Is(err, ErrInvalidNote) {
		t.Errorf("expected ErrInvalidNote, got %v", err)
	}
}
