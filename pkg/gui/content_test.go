package gui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/qnkhuat/hangterm/pkg/hangman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// options lists A to Z with the letters in used no longer available.
func options(used string) []LetterOption {
	var opts []LetterOption
	for r := 'A'; r <= 'Z'; r++ {
		opts = append(opts, LetterOption{Char: r, Available: !strings.ContainsRune(used, r)})
	}
	return opts
}

func blanks(n int) []CharDisplay {
	out := make([]CharDisplay, n)
	for i := range out {
		out[i] = Blank()
	}
	return out
}

func TestGallowsWidths(t *testing.T) {
	for _, g := range hangman.Stages() {
		for _, highlight := range []bool{false, true} {
			for i, line := range drawGallows(g, highlight, ThemeBasic) {
				if w := textWidth(line); w != gallowsWidth {
					t.Errorf("stage %s (highlight %v) row %d: expected width %d, got %d", g, highlight, i, gallowsWidth, w)
				}
			}
		}
	}
}

// wideAmbiguous makes go-runewidth count box drawing characters as two
// columns, as it does under a CJK locale.
func wideAmbiguous(t *testing.T) {
	t.Helper()
	saved := runewidth.DefaultCondition.EastAsianWidth
	runewidth.DefaultCondition.EastAsianWidth = true
	t.Cleanup(func() { runewidth.DefaultCondition.EastAsianWidth = saved })
	require.Equal(t, 2, runewidth.RuneWidth('┌'))
}

func TestWidthsIgnoreLocale(t *testing.T) {
	wideAmbiguous(t)

	for _, g := range hangman.Stages() {
		for i, line := range drawGallows(g, true, ThemeBasic) {
			if w := textWidth(line); w != gallowsWidth {
				t.Errorf("stage %s row %d: expected width %d, got %d", g, i, gallowsWidth, w)
			}
		}
	}
	for _, tt := range renderTests {
		assert.Equal(t, tt.lines, tt.content.Render().Lines, tt.name)
	}
}

func TestGallowsHighlight(t *testing.T) {
	if art := drawGallows(hangman.GallowsStart, true, ThemeBasic); art != gallowsArt[hangman.GallowsStart] {
		t.Errorf("start has no body part to highlight, got %q", art)
	}

	art := drawGallows(hangman.GallowsLeftArm, true, ThemeBasic)
	assert.Equal(t, "  │  [#ff0000::b]/[-::-]| ", art[2])
}

var renderTests = []struct {
	name    string
	content Content
	lines   []string
}{
	{
		"start",
		Content{
			Hint:         "A difficult word",
			Gallows:      hangman.GallowsStart,
			GuessOptions: options(""),
			WordDisplay:  blanks(6),
			Message:      StartMessage(),
		},
		[]string{
			"   Hint: A difficult word",
			"",
			"     ┌───┐     A B C D E F",
			"     │         G H I J K L",
			"     │         M N O P Q R",
			"     │         S T U V W X",
			"   ──┴──       Y Z",
			"",
			"         _ _ _ _ _ _",
			"",
			"Try to guess the secret word!",
			"",
			"",
		},
	},
	{
		"no hint",
		Content{
			Gallows:      hangman.GallowsStart,
			GuessOptions: options(""),
			WordDisplay:  blanks(6),
			Message:      StartMessage(),
		},
		[]string{
			"",
			"",
			"     ┌───┐     A B C D E F",
			"     │         G H I J K L",
			"     │         M N O P Q R",
			"     │         S T U V W X",
			"   ──┴──       Y Z",
			"",
			"         _ _ _ _ _ _",
			"",
			"Try to guess the secret word!",
			"",
			"",
		},
	},
	{
		"after good guess",
		Content{
			Hint:         "A difficult word",
			Gallows:      hangman.GallowsStart,
			GuessOptions: options("A"),
			WordDisplay:  []CharDisplay{Highlighted('A'), Blank(), Highlighted('A'), Blank(), Blank(), Blank()},
			Message:      GoodGuessMessage('A', 2),
		},
		[]string{
			"        Hint: A difficult word",
			"",
			"          ┌───┐       B C D E F",
			"          │         G H I J K L",
			"          │         M N O P Q R",
			"          │         S T U V W X",
			"        ──┴──       Y Z",
			"",
			"              [::b]A[-::-] _ [::b]A[-::-] _ _ _",
			"",
			"Correct!  There are 2 'A's in the word.",
			"",
			"",
		},
	},
	{
		"after bad guess",
		Content{
			Hint:         "A difficult word",
			Gallows:      hangman.GallowsHead,
			GuessOptions: options("AE"),
			WordDisplay:  []CharDisplay{Plain('A'), Blank(), Plain('A'), Blank(), Blank(), Blank()},
			Message:      BadGuessMessage('E'),
		},
		[]string{
			"      Hint: A difficult word",
			"",
			"        ┌───┐       B C D   F",
			"        │   [#ff0000::b]o[-::-]     G H I J K L",
			"        │         M N O P Q R",
			"        │         S T U V W X",
			"      ──┴──       Y Z",
			"",
			"            A _ A _ _ _",
			"",
			"Wrong!  There's no 'E' in the word.",
			"",
			"",
		},
	},
	{
		"win",
		Content{
			Hint:         "A difficult word",
			Gallows:      hangman.GallowsRightArm,
			GuessOptions: options("ABCDEISTU"),
			WordDisplay:  []CharDisplay{Plain('A'), Plain('B'), Plain('A'), Plain('C'), Plain('U'), Plain('S')},
			Message:      WonMessage(),
			GameOver:     true,
		},
		[]string{
			" Hint: A difficult word",
			"",
			"   ┌───┐               F",
			"   │   o     G H   J K L",
			"   │  /|\\    M N O P Q R",
			"   │               V W X",
			" ──┴──       Y Z",
			"",
			"       A B A C U S",
			"",
			"        You win!",
			"",
			"Press the Any Key to exit.",
		},
	},
	{
		"lose",
		Content{
			Hint:         "A difficult word",
			Gallows:      hangman.GallowsRightLeg,
			GuessOptions: options("AEIORTUY"),
			WordDisplay:  []CharDisplay{Plain('A'), Highlighted('B'), Plain('A'), Highlighted('C'), Plain('U'), Highlighted('S')},
			Message:      LostMessage(),
			GameOver:     true,
		},
		[]string{
			" Hint: A difficult word",
			"",
			"   ┌───┐       B C D   F",
			"   │   o     G H   J K L",
			"   │  /|\\    M N   P Q  ",
			"   │  / [#ff0000::b]\\[-::-]    S     V W X",
			" ──┴──         Z",
			"",
			"       A [::b]B[-::-] A [::b]C[-::-] U [::b]S[-::-]",
			"",
			" Oh dear, you are dead!",
			"",
			"Press the Any Key to exit.",
		},
	},
}

func TestRender(t *testing.T) {
	for _, tt := range renderTests {
		t.Run(tt.name, func(t *testing.T) {
			frame := tt.content.Render()
			assert.Equal(t, tt.lines, frame.Lines)
			assert.Equal(t, len(tt.lines), frame.Height)

			width := 0
			for _, ln := range tt.lines {
				if w := textWidth(ln); w > width {
					width = w
				}
			}
			assert.Equal(t, width, frame.Width)
		})
	}
}

func TestRenderIsPure(t *testing.T) {
	c := renderTests[2].content
	first := c.Render()
	second := c.Render()
	require.Equal(t, first, second)
	assert.Equal(t, []CharDisplay{Highlighted('A'), Blank(), Highlighted('A'), Blank(), Blank(), Blank()}, c.WordDisplay)
}

func TestRenderBaseline(t *testing.T) {
	c := Content{
		Gallows:      hangman.GallowsStart,
		GuessOptions: options(""),
		WordDisplay:  blanks(3),
		Message:      WonMessage(),
	}
	frame := c.Render()
	if frame.Width != FrameWidth || frame.Height != FrameHeight {
		t.Errorf("expected a %dx%d frame, got %dx%d", FrameWidth, FrameHeight, frame.Width, frame.Height)
	}
}

func TestRenderEscapesHint(t *testing.T) {
	c := Content{
		Hint:         "[red]not a tag[-]",
		Gallows:      hangman.GallowsStart,
		GuessOptions: options(""),
		WordDisplay:  blanks(3),
		Message:      StartMessage(),
	}
	frame := c.Render()
	require.NotEmpty(t, frame.Lines)
	assert.Equal(t, len("Hint: [red]not a tag[-]"), textWidth(strings.TrimLeft(frame.Lines[0], " ")))
}

func TestRenderExtraLetterRows(t *testing.T) {
	var opts []LetterOption
	for _, r := range "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" {
		opts = append(opts, LetterOption{Char: r, Available: true})
	}
	c := Content{
		Gallows:      hangman.GallowsStart,
		GuessOptions: opts,
		WordDisplay:  blanks(3),
		Message:      WonMessage(),
	}
	frame := c.Render()
	require.Equal(t, FrameHeight+1, frame.Height)
	assert.Equal(t, strings.Repeat(" ", gallowsWidth+gutter)+"4 5 6 7 8 9", frame.Lines[2+gallowsHeight])
}

func TestMessageText(t *testing.T) {
	tests := []struct {
		m    Message
		text string
	}{
		{StartMessage(), "Try to guess the secret word!"},
		{GoodGuessMessage('A', 1), "Correct!  There is 1 'A' in the word."},
		{GoodGuessMessage('A', 3), "Correct!  There are 3 'A's in the word."},
		{BadGuessMessage('Q'), "Wrong!  There's no 'Q' in the word."},
		{AlreadyGuessedMessage('A'), "You already guessed 'A'."},
		{InvalidGuessMessage('1'), "'1' is not an option."},
		{WonMessage(), "You win!"},
		{LostMessage(), "Oh dear, you are dead!"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.text {
			t.Errorf("expected %q, got %q", tt.text, got)
		}
	}
}
