package gui

import (
	"strings"

	"github.com/qnkhuat/hangterm/pkg/hangman"
	"github.com/rivo/tview"
)

const (
	gallowsHeight = 5
	gallowsWidth  = 8
	letterColumns = 6
	gutter        = 4

	// FrameWidth and FrameHeight are the size of a frame whose hint, word and
	// message all fit within the gallows and letter grid.
	FrameWidth  = gallowsWidth + gutter + letterColumns*2 - 1
	FrameHeight = gallowsHeight + 8

	exitPrompt = "Press the Any Key to exit."
)

// LetterOption is one entry of the letter grid. Characters that were already
// guessed are no longer available and show as a gap.
type LetterOption struct {
	Char      rune
	Available bool
}

// Content is everything drawn for one turn of the game.
type Content struct {
	Hint         string
	Gallows      hangman.Gallows
	GuessOptions []LetterOption
	WordDisplay  []CharDisplay
	Message      Message
	GameOver     bool
}

// Render lays out c with the basic theme.
func (c Content) Render() Frame {
	return c.RenderTheme(ThemeBasic)
}

// RenderTheme lays out c. The result only depends on c and t.
func (c Content) RenderTheme(t Theme) Frame {
	frame := newFrame(FrameHeight)
	if c.Hint != "" {
		frame.push("Hint: " + tview.Escape(c.Hint))
	} else {
		frame.push("")
	}
	frame.push("")

	var hud []string
	for _, row := range drawGallows(c.Gallows, c.Message.gallowsAdvanced(), t) {
		hud = append(hud, row+strings.Repeat(" ", gutter))
	}
	for i := 0; i*letterColumns < len(c.GuessOptions); i++ {
		end := (i + 1) * letterColumns
		if end > len(c.GuessOptions) {
			end = len(c.GuessOptions)
		}
		if i == len(hud) {
			hud = append(hud, strings.Repeat(" ", gallowsWidth+gutter))
		}

		var b strings.Builder
		for j, opt := range c.GuessOptions[i*letterColumns : end] {
			if j > 0 {
				b.WriteRune(' ')
			}
			if opt.Available {
				b.WriteRune(opt.Char)
			} else {
				b.WriteRune(' ')
			}
		}
		hud[i] += b.String()
	}
	for _, ln := range hud {
		frame.push(ln)
	}
	frame.push("")
	frame.padToWidth(FrameWidth)

	word := make([]string, len(c.WordDisplay))
	for i, cd := range c.WordDisplay {
		word[i] = cd.render(t)
	}
	frame.pushCentered(strings.Join(word, " "))
	frame.push("")
	frame.pushCentered(tview.Escape(c.Message.String()))
	frame.push("")
	if c.GameOver {
		frame.pushCentered(exitPrompt)
	} else {
		frame.push("")
	}

	return *frame
}

var gallowsArt = map[hangman.Gallows][gallowsHeight]string{
	hangman.GallowsStart: {
		"  ┌───┐ ",
		"  │     ",
		"  │     ",
		"  │     ",
		"──┴──   ",
	},
	hangman.GallowsHead: {
		"  ┌───┐ ",
		"  │   o ",
		"  │     ",
		"  │     ",
		"──┴──   ",
	},
	hangman.GallowsTorso: {
		"  ┌───┐ ",
		"  │   o ",
		"  │   | ",
		"  │     ",
		"──┴──   ",
	},
	hangman.GallowsLeftArm: {
		"  ┌───┐ ",
		"  │   o ",
		"  │  /| ",
		"  │     ",
		"──┴──   ",
	},
	hangman.GallowsRightArm: {
		"  ┌───┐ ",
		"  │   o ",
		"  │  /|\\",
		"  │     ",
		"──┴──   ",
	},
	hangman.GallowsLeftLeg: {
		"  ┌───┐ ",
		"  │   o ",
		"  │  /|\\",
		"  │  /  ",
		"──┴──   ",
	},
	hangman.GallowsRightLeg: {
		"  ┌───┐ ",
		"  │   o ",
		"  │  /|\\",
		"  │  / \\",
		"──┴──   ",
	},
}

// woundAt is the row and column of the body part added by each stage.
var woundAt = map[hangman.Gallows][2]int{
	hangman.GallowsHead:     {1, 6},
	hangman.GallowsTorso:    {2, 6},
	hangman.GallowsLeftArm:  {2, 5},
	hangman.GallowsRightArm: {2, 7},
	hangman.GallowsLeftLeg:  {3, 5},
	hangman.GallowsRightLeg: {3, 7},
}

// drawGallows returns the art for a stage. With highlight set the body part
// added by that stage is wrapped in the theme's wound tag.
func drawGallows(g hangman.Gallows, highlight bool, t Theme) [gallowsHeight]string {
	art := gallowsArt[g]
	pos, ok := woundAt[g]
	if !highlight || !ok {
		return art
	}

	row := []rune(art[pos[0]])
	art[pos[0]] = string(row[:pos[1]]) + t.woundTag() + string(row[pos[1]]) + tagReset + string(row[pos[1]+1:])
	return art
}
