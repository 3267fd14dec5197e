package gui

import (
	"fmt"
)

type MessageKind int

const (
	MessageStart MessageKind = iota
	MessageGoodGuess
	MessageBadGuess
	MessageAlreadyGuessed
	MessageInvalidGuess
	MessageWon
	MessageLost
)

// Message describes the last thing that happened in the game.
type Message struct {
	Kind  MessageKind
	Guess rune
	Count int
}

func StartMessage() Message { return Message{Kind: MessageStart} }
func GoodGuessMessage(g rune, n int) Message { return Message{Kind: MessageGoodGuess, Guess: g, Count: n} }
func BadGuessMessage(g rune) Message { return Message{Kind: MessageBadGuess, Guess: g} }
func AlreadyGuessedMessage(g rune) Message { return Message{Kind: MessageAlreadyGuessed, Guess: g} }
func InvalidGuessMessage(g rune) Message { return Message{Kind: MessageInvalidGuess, Guess: g} }
func WonMessage() Message { return Message{Kind: MessageWon} }
func LostMessage() Message { return Message{Kind: MessageLost} }

// IsGameOver reports whether the message ends the game.
func (m Message) IsGameOver() bool {
	return m.Kind == MessageWon || m.Kind == MessageLost
}

// gallowsAdvanced reports whether the gallows grew with the event. The newest
// body part is then drawn highlighted.
func (m Message) gallowsAdvanced() bool {
	return m.Kind == MessageBadGuess || m.Kind == MessageLost
}

func (m Message) String() string {
	switch m.Kind {
	case MessageStart:
		return "Try to guess the secret word!"
	case MessageGoodGuess:
		if m.Count == 1 {
			return fmt.Sprintf("Correct!  There is 1 %q in the word.", m.Guess)
		}
		return fmt.Sprintf("Correct!  There are %d %qs in the word.", m.Count, m.Guess)
	case MessageBadGuess:
		return fmt.Sprintf("Wrong!  There's no %q in the word.", m.Guess)
	case MessageAlreadyGuessed:
		return fmt.Sprintf("You already guessed %q.", m.Guess)
	case MessageInvalidGuess:
		return fmt.Sprintf("%q is not an option.", m.Guess)
	case MessageWon:
		return "You win!"
	case MessageLost:
		return "Oh dear, you are dead!"
	default:
		return ""
	}
}

type DisplayKind int

const (
	DisplayBlank DisplayKind = iota
	DisplayPlain
	DisplayHighlighted
)

// CharDisplay is how one position of the secret word is shown.
type CharDisplay struct {
	Kind DisplayKind
	Char rune
}

func Blank() CharDisplay { return CharDisplay{Kind: DisplayBlank} }
func Plain(r rune) CharDisplay { return CharDisplay{Kind: DisplayPlain, Char: r} }
func Highlighted(r rune) CharDisplay { return CharDisplay{Kind: DisplayHighlighted, Char: r} }

// render returns the markup for the position under theme t
func (cd CharDisplay) render(t Theme) string {
	switch cd.Kind {
	case DisplayPlain:
		return string(cd.Char)
	case DisplayHighlighted:
		return t.revealTag() + string(cd.Char) + tagReset
	default:
		return "_"
	}
}
