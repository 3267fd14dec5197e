package gui

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Frame is a block of lines ready to be centred on the screen. Lines may carry
// tview style tags, which take up no columns.
type Frame struct {
	Lines  []string
	Width  int
	Height int
}

// Placement is a line of a frame positioned on a screen of a given size.
// Text must be cut off after MaxWidth columns.
type Placement struct {
	X, Y     int
	MaxWidth int
	Text     string
}

func newFrame(capacity int) *Frame {
	return &Frame{Lines: make([]string, 0, capacity)}
}

var (
	// tview style tags and escaped tags, as tview parses them
	styleTagPattern   = regexp.MustCompile(`\[([a-zA-Z]+|#[0-9a-zA-Z]{6}|\-)?(:([a-zA-Z]+|#[0-9a-zA-Z]{6}|\-)?(:([lbidrus]+|\-)?)?)?\]`)
	escapedTagPattern = regexp.MustCompile(`\[([a-zA-Z0-9_,;: \-\."#]+)\[(\])`)

	// Box drawing characters always count as one column, whatever the locale.
	narrow = &runewidth.Condition{EastAsianWidth: false}
)

// stripTags returns line as it appears on screen.
func stripTags(line string) string {
	line = styleTagPattern.ReplaceAllStringFunc(line, func(tag string) string {
		if tag == "[]" {
			return tag
		}
		return ""
	})
	return escapedTagPattern.ReplaceAllString(line, "[$1$2")
}

// textWidth is the number of columns line occupies once its tags are removed.
func textWidth(line string) int {
	return narrow.StringWidth(stripTags(line))
}

func (f *Frame) push(line string) {
	if w := textWidth(line); w > f.Width {
		f.Width = w
	}
	f.Height++
	f.Lines = append(f.Lines, line)
}

func (f *Frame) padToWidth(width int) {
	if width > f.Width {
		f.Width = width
	}
}

// pushCentered adds a line centred on the frame. A line wider than the frame
// widens it and shifts every earlier non-empty line right by half the growth.
func (f *Frame) pushCentered(line string) {
	w := textWidth(line)
	if w > f.Width {
		indent := strings.Repeat(" ", (w-f.Width)/2)
		for i, ln := range f.Lines {
			if ln != "" {
				f.Lines[i] = indent + ln
			}
		}
		f.Width = w
	} else if w < f.Width && line != "" {
		line = strings.Repeat(" ", (f.Width-w)/2) + line
	}
	f.Height++
	f.Lines = append(f.Lines, line)
}

// Place centres the frame on a screen of columns x rows cells. Lines below the
// bottom of the screen are dropped.
func (f Frame) Place(columns, rows int) []Placement {
	left := 0
	if columns > f.Width {
		left = (columns - f.Width) / 2
	}
	top := 0
	if rows > f.Height {
		top = (rows - f.Height) / 2
	}

	var out []Placement
	for i, ln := range f.Lines {
		if i >= rows {
			break
		}
		out = append(out, Placement{X: left, Y: top + i, MaxWidth: columns - left, Text: ln})
	}
	return out
}
