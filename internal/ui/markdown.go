package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

const (
	defaultMarkdownWidth = 80
	defaultMarkdownStyle = "dark"
)

// mdCache keeps the last glamour renderer so a list of notes rendered at the
// same width and style builds it only once.
var mdCache struct {
	sync.Mutex
	renderer *glamour.TermRenderer
	width    int
	style    string
}

func markdownRendererFor(width int, style string) (*glamour.TermRenderer, error) {
	if width < 1 {
		width = defaultMarkdownWidth
	}
	if style == "" {
		style = defaultMarkdownStyle
	}

	mdCache.Lock()
	defer mdCache.Unlock()

	if mdCache.renderer != nil && mdCache.width == width && mdCache.style == style {
		return mdCache.renderer, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	mdCache.renderer, mdCache.width, mdCache.style = r, width, style
	return r, nil
}

// RenderMarkdownWithStyle renders markdown content using the specified glamour
// style. The original content is returned if rendering fails.
func RenderMarkdownWithStyle(content string, width int, style string) string {
	if content == "" {
		return ""
	}
	r, err := markdownRendererFor(width, style)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(rendered, "\n")
}

// RenderMarkdown renders with the default dark style.
func RenderMarkdown(content string, width int) string {
	return RenderMarkdownWithStyle(content, width, defaultMarkdownStyle)
}
