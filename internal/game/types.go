// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Mark: per-letter feedback for a guess (correct/present/absent).
//   - Status: lifecycle of a round (in_progress/won/lost).
//   - Game: state for a single round.
//   - Result: what a submission reports back to the front end.

package game

import (
	"errors"
	"time"
)

// Mark represents the evaluation result for a single letter in a guess.
//   - "correct": letter is in the target at this position.
//   - "present": letter occurs somewhere else in the target.
//   - "absent":  letter does not occur in the target.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Status is the round state. Won and Lost are terminal until Reset.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Terminal reports whether s ends the round.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusLost }

const (
	// MaxAttempts is the number of guesses a round starts with.
	MaxAttempts = 10
	// WordLen is the length of every target and guess.
	WordLen = 4
)

var (
	// ErrInvalidGuessLength is a user input error; re-prompt.
	ErrInvalidGuessLength = errors.New("invalid guess length")
	// ErrNoAttemptsRemaining means submit was called on a finished round.
	ErrNoAttemptsRemaining = errors.New("no attempts remaining")
)

// Sampler draws a target word. *words.Bank and daily.Sampler implement it.
type Sampler interface {
	Sample() string
}

// Game holds the state of a single round.
type Game struct {
	ID                string    // Unique game identifier (random hex string).
	Target            string    // The answer (uppercase).
	AttemptsRemaining int       // Counts down from MaxAttempts.
	Status            Status    // in_progress | won | lost
	Guesses           []string  // Accepted guesses this round (uppercase).
	StartedAt         time.Time // When the current round began.
}

// Result is returned by Submit. Target is only set once the round is over.
type Result struct {
	Marks             []Mark `json:"marks,omitempty"`
	Status            Status `json:"status"`
	AttemptsRemaining int    `json:"attemptsRemaining"`
	Target            string `json:"target,omitempty"`
}
