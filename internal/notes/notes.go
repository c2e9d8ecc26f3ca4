// Package notes reads Markdown journal notes with optional YAML front matter.
package notes

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/chris-regnier/moodtrack/internal/entry"
)

// ErrInvalidNote is returned for notes whose front matter cannot be used.
var ErrInvalidNote = errors.New("invalid note")

type frontMatter struct {
	Date string `yaml:"date"`
	Mood string `yaml:"mood"`
}

// Parse reads one note and turns it into a journal row. A missing date means
// the date of now, a missing mood means entry.Neutral. The body becomes the
// notes and must not be blank.
func Parse(r io.Reader, now time.Time) (entry.JournalEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return entry.JournalEntry{}, fmt.Errorf("reading note: %w", err)
	}

	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	if err != nil {
		return entry.JournalEntry{}, fmt.Errorf("%w: parsing front-matter: %v", ErrInvalidNote, err)
	}

	date := entry.FormatDate(now)
	if d := strings.TrimSpace(fm.Date); d != "" {
		t, err := parseDate(d)
		if err != nil {
			return entry.JournalEntry{}, fmt.Errorf("%w: date %q: %v", ErrInvalidNote, d, err)
		}
		date = t.Format(entry.DateLayout)
	}

	mood := strings.TrimSpace(fm.Mood)
	if mood == "" {
		mood = entry.Neutral
	}

	text := strings.TrimSpace(string(body))
	if err := entry.ValidateText(text); err != nil {
		return entry.JournalEntry{}, err
	}
	return entry.JournalEntry{Date: date, Mood: mood, Notes: text}, nil
}

// parseDate accepts a plain date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(entry.DateLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.Local(), nil
}
