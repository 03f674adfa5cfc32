// internal/game/engine.go
//
// Core game engine for a single round.
// Responsibilities:
//   - Create new games with a sampled target and MaxAttempts tries.
//   - Validate and apply guesses (length only; case-insensitive).
//   - Score guesses with the simple containment policy.
//   - Track state transitions: in_progress → won/lost, and Reset back.
//
// Notes:
//   - The attempt counter is decremented before the win check, so a winning
//     guess still consumes an attempt.
//   - The engine never resets itself; the front end calls Reset after it has
//     shown a terminal result.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// New constructs a new game with a target drawn from s.
func New(s Sampler) *Game {
	g := &Game{ID: randomID()}
	g.Reset(s)
	return g
}

// Reset starts a fresh round: new target, full attempts, empty history.
// The ID is kept so a stored session continues under the same key.
func (g *Game) Reset(s Sampler) {
	g.Target = strings.ToUpper(s.Sample())
	g.AttemptsRemaining = MaxAttempts
	g.Status = StatusInProgress
	g.Guesses = []string{}
	g.StartedAt = time.Now().UTC()
}

// Submit validates and scores a guess, mutating the game state.
//
// Validation rules (no state change on error):
//   - Guess must have exactly len(Target) letters → ErrInvalidGuessLength.
//   - Round must be in progress with attempts left → ErrNoAttemptsRemaining.
//
// State transitions:
//   - Attempts are decremented first.
//   - Guess equals target → won, all correct.
//   - Otherwise, attempts exhausted → lost.
func (g *Game) Submit(guess string) (Result, error) {
	guess = strings.ToUpper(strings.TrimSpace(guess))
	if n := utf8.RuneCountInString(guess); n != utf8.RuneCountInString(g.Target) {
		return g.View(), fmt.Errorf("%w: got %d letters, want %d", ErrInvalidGuessLength, n, len(g.Target))
	}
	if g.Status.Terminal() || g.AttemptsRemaining <= 0 {
		return g.View(), ErrNoAttemptsRemaining
	}

	g.AttemptsRemaining--
	g.Guesses = append(g.Guesses, guess)

	var marks []Mark
	if guess == g.Target {
		g.Status = StatusWon
		marks = allCorrect(len(g.Target))
	} else {
		marks = Evaluate(g.Target, guess)
		if g.AttemptsRemaining == 0 {
			g.Status = StatusLost
		}
	}

	res := g.View()
	res.Marks = marks
	return res, nil
}

// View reports the current status without scoring anything.
// The target is only revealed once the round is over.
func (g *Game) View() Result {
	res := Result{Status: g.Status, AttemptsRemaining: g.AttemptsRemaining}
	if g.Status.Terminal() {
		res.Target = g.Target
	}
	return res
}

// Finished reports whether the round has ended.
func (g *Game) Finished() bool { return g.Status.Terminal() }

// Clone returns a deep copy, so stores never share the Guesses slice.
func (g *Game) Clone() *Game {
	c := *g
	c.Guesses = append([]string{}, g.Guesses...)
	return &c
}

// Evaluate scores guess against target position by position.
//
// A letter is correct when it matches the target at the same index, present
// when the target contains it anywhere else, and absent otherwise. Letter
// counts are not tracked: a repeated guess letter may be marked present more
// than once even if the target holds it only once.
//
// Both inputs are expected in the same case; Submit normalizes to uppercase.
func Evaluate(target, guess string) []Mark {
	t := []rune(target)
	gs := []rune(guess)
	res := make([]Mark, len(gs))
	for i, r := range gs {
		switch {
		case i < len(t) && t[i] == r:
			res[i] = MarkCorrect
		case strings.ContainsRune(target, r):
			res[i] = MarkPresent
		default:
			res[i] = MarkAbsent
		}
	}
	return res
}

// allCorrect returns n correct marks.
func allCorrect(n int) []Mark {
	m := make([]Mark, n)
	for i := range m {
		m[i] = MarkCorrect
	}
	return m
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
