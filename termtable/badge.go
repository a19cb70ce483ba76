package termtable

import (
	"context"
	"image/color"

	"charm.land/lipgloss/v2"

	gridtable "github.com/domonda/go-gridtable"
)

var _ gridtable.StatusRenderer = BadgeStatusRenderer{}

// DefaultBadgeColors are the ANSI colors of the status categories.
var DefaultBadgeColors = map[gridtable.StatusCategory]color.Color{
	gridtable.StatusNeutral:    lipgloss.Color("245"),
	gridtable.StatusPaid:       lipgloss.Color("2"),
	gridtable.StatusUnpaid:     lipgloss.Color("1"),
	gridtable.StatusPending:    lipgloss.Color("3"),
	gridtable.StatusProcessing: lipgloss.Color("4"),
	gridtable.StatusCancelled:  lipgloss.Color("8"),
}

// BadgeStatusRenderer renders a status as bold text
// in the color of its category.
// Colors defaults to DefaultBadgeColors,
// categories without color use the StatusNeutral color.
type BadgeStatusRenderer struct {
	NoColor bool
	Colors  map[gridtable.StatusCategory]color.Color
}

func (r BadgeStatusRenderer) RenderStatus(ctx context.Context, status string) (str string, raw bool, err error) {
	if r.NoColor || status == "" {
		return status, false, nil
	}
	colors := r.Colors
	if colors == nil {
		colors = DefaultBadgeColors
	}
	c, ok := colors[gridtable.CategorizeStatus(status)]
	if !ok {
		c = colors[gridtable.StatusNeutral]
	}
	style := lipgloss.NewStyle().Bold(true)
	if c != nil {
		style = style.Foreground(c)
	}
	// ANSI sequences must not be truncated
	return style.Render(status), true, nil
}
