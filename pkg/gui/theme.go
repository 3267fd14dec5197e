package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the colours used to paint a frame. Foreground and Background
// fill the screen; Wound marks the newest body part on the gallows and Reveal
// marks characters of the word that were just uncovered.
type Theme struct {
	Name       string
	Foreground tcell.Color
	Background tcell.Color
	Wound      tcell.Color
	Reveal     tcell.Color
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",            // Name
	tcell.ColorDefault, // Foreground
	tcell.ColorDefault, // Background
	tcell.ColorRed,     // Wound
	tcell.ColorDefault, // Reveal
}

const tagReset = "[-::-]"

// Style is the base style of the screen
func (t Theme) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(t.Foreground).Background(t.Background)
}

// woundTag opens the markup for a highlighted gallows segment
func (t Theme) woundTag() string {
	return colorTag(t.Wound, "b")
}

// revealTag opens the markup for a highlighted character of the word
func (t Theme) revealTag() string {
	return colorTag(t.Reveal, "b")
}

// colorTag returns a tview style tag. ColorDefault leaves the foreground
// untouched so only the attributes apply.
func colorTag(c tcell.Color, attrs string) string {
	if c == tcell.ColorDefault {
		return fmt.Sprintf("[::%s]", attrs)
	}
	return fmt.Sprintf("[%s::%s]", fmtHex(c.Hex()), attrs)
}

func fmtHex(v int32) string {
	return fmt.Sprintf("#%06x", v)
}
