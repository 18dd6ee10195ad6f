package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pin-keeper/models"
)

const listPageSize = 12

func renderBookmarks(bookmarks []models.Bookmark, idx int) string {
	if len(bookmarks) == 0 {
		return renderPage("BOOKMARKS", "No bookmarks", "esc: back")
	}

	var b strings.Builder
	start, end := visibleRange(len(bookmarks), idx, listPageSize)
	for i := start; i < end; i++ {
		bm := bookmarks[i]
		cursor := "  "
		if i == idx {
			cursor = "> "
		}
		fmt.Fprintf(&b, "%s%s\n", cursor, fitText(valueOrDash(bm.Title), 60))
		fmt.Fprintf(&b, "    %s", helpStyle.Render(fitText(bm.URL, 60)))
		if len(bm.Tags) > 0 {
			b.WriteString("  ")
			b.WriteString(tagStyle.Render(strings.Join(bm.Tags, " ")))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n%d of %d", idx+1, len(bookmarks))

	return renderPage("BOOKMARKS", b.String(), "↑/↓: move  c: copy url  esc: back")
}
