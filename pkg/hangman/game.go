// Package hangman implements the rules of a game of hangman: a secret word,
// the characters the player may guess, and the gallows that fills in with
// every wrong guess.
//
// All text handed to a Game (the word, the alphabet and every guess) is
// normalized by upper-casing the ASCII letters a-z. Nothing else is touched.
package hangman

import (
	"errors"
	"fmt"
	"sort"
)

// ASCIIAlphabet is the alphabet used by the terminal game.
const ASCIIAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Hidden marks a position of KnownLetters that has not been revealed yet.
const Hidden rune = -1

var ErrNoAlphabetOverlap = errors.New("secret word must contain at least one letter from the alphabet")

type ResponseKind int

const (
	// GoodGuess means the guess occurs in the word and was not guessed before.
	GoodGuess ResponseKind = iota
	// BadGuess means the guess does not occur in the word.
	BadGuess
	// AlreadyGuessed means the guess was made earlier in this game.
	AlreadyGuessed
	// InvalidGuess means the guess is not part of the alphabet.
	InvalidGuess
	// GameOver means the game had already ended when the guess was made.
	GameOver
)

func (k ResponseKind) String() string {
	switch k {
	case GoodGuess:
		return "GoodGuess"
	case BadGuess:
		return "BadGuess"
	case AlreadyGuessed:
		return "AlreadyGuessed"
	case InvalidGuess:
		return "InvalidGuess"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown ResponseKind"
	}
}

// Response is the outcome of a single call to Guess.
type Response struct {
	Kind ResponseKind
	// Guess is the normalized guess. Zero for GameOver.
	Guess rune
	// Count is the number of positions revealed by a GoodGuess.
	Count int
	// Won is set on the GoodGuess that completes the word.
	Won bool
	// Lost is set on the BadGuess that completes the gallows.
	Lost *Lost
}

// Lost carries the secret word of a lost game.
type Lost struct {
	Word []rune
}

// Fate is the outcome of a finished game. Exactly one of Won and Lost is set.
type Fate struct {
	Won  bool
	Lost *Lost
}

// Letter is one entry of the alphabet.
type Letter struct {
	Char    rune
	Guessed bool
}

// Game is a single game of hangman.
type Game struct {
	// sorted by Char, no duplicates
	letters []Letter
	gallows Gallows
	word    []rune
	known   []rune
	fate    *Fate
}

// New starts a game whose secret is word and whose guessable characters are
// those of alphabet. Characters of word outside the alphabet are revealed
// from the start.
func New(word, alphabet string) (*Game, error) {
	g := &Game{gallows: GallowsStart}

	for _, r := range alphabet {
		g.letters = append(g.letters, Letter{Char: normalize(r)})
	}
	sort.Slice(g.letters, func(i, j int) bool { return g.letters[i].Char < g.letters[j].Char })
	g.letters = dedupLetters(g.letters)

	hidden := 0
	for _, r := range word {
		r = normalize(r)
		g.word = append(g.word, r)
		if g.letter(r) != nil {
			g.known = append(g.known, Hidden)
			hidden++
		} else {
			g.known = append(g.known, r)
		}
	}
	if hidden == 0 {
		return nil, ErrNoAlphabetOverlap
	}

	return g, nil
}

// Guess processes a guess at one character of the secret word.
func (g *Game) Guess(guess rune) Response {
	if g.fate != nil {
		return Response{Kind: GameOver}
	}

	guess = normalize(guess)
	l := g.letter(guess)
	if l == nil {
		return Response{Kind: InvalidGuess, Guess: guess}
	}
	if l.Guessed {
		return Response{Kind: AlreadyGuessed, Guess: guess}
	}
	l.Guessed = true

	count := 0
	for i, r := range g.word {
		if r != guess {
			continue
		}
		if g.known[i] != Hidden {
			panic(fmt.Sprintf("hangman: position %d revealed twice by %q", i, guess))
		}
		g.known[i] = r
		count++
	}

	if count > 0 {
		res := Response{Kind: GoodGuess, Guess: guess, Count: count}
		if g.solved() {
			g.fate = &Fate{Won: true}
			res.Won = true
		}
		return res
	}

	if next, ok := g.gallows.Next(); ok {
		g.gallows = next
	}
	res := Response{Kind: BadGuess, Guess: guess}
	if g.gallows == GallowsEnd {
		word := make([]rune, len(g.word))
		copy(word, g.word)
		g.fate = &Fate{Lost: &Lost{Word: word}}
		res.Lost = &Lost{Word: append([]rune(nil), word...)}
	}
	return res
}

// Letters returns the alphabet in ascending order together with whether each
// character has been guessed.
func (g *Game) Letters() []Letter {
	out := make([]Letter, len(g.letters))
	copy(out, g.letters)
	return out
}

// KnownLetters returns the secret word as far as the player knows it. Each
// position holds the character or Hidden.
func (g *Game) KnownLetters() []rune {
	out := make([]rune, len(g.known))
	copy(out, g.known)
	return out
}

func (g *Game) Gallows() Gallows {
	return g.gallows
}

// Fate returns nil while the game is still being played.
func (g *Game) Fate() *Fate {
	if g.fate == nil {
		return nil
	}
	f := &Fate{Won: g.fate.Won}
	if g.fate.Lost != nil {
		f.Lost = &Lost{Word: append([]rune(nil), g.fate.Lost.Word...)}
	}
	return f
}

func (g *Game) letter(r rune) *Letter {
	i := sort.Search(len(g.letters), func(i int) bool { return g.letters[i].Char >= r })
	if i < len(g.letters) && g.letters[i].Char == r {
		return &g.letters[i]
	}
	return nil
}

func (g *Game) solved() bool {
	for _, r := range g.known {
		if r == Hidden {
			return false
		}
	}
	return true
}

func dedupLetters(letters []Letter) []Letter {
	var out []Letter
	for _, l := range letters {
		if len(out) > 0 && out[len(out)-1].Char == l.Char {
			continue
		}
		out = append(out, l)
	}
	return out
}

func normalize(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}
