// internal/game/types.go
//
// Core type definitions for the guessing game engine.
// Defines:
//   - Range: inclusive bounds the secret is drawn from.
//   - Kind/Outcome: classification of a single submitted guess.
//   - State: awaiting → won.
//   - Session: state for a single in-progress or finished game.

package game

import (
	"errors"
	"fmt"
	"math"
)

// MaxGuess is the largest guess ParseGuess accepts: an unsigned 32-bit
// value, capped by int on 32-bit platforms.
const MaxGuess = min(1<<32-1, math.MaxInt)

// DefaultRange is the classic 1..100 range.
var DefaultRange = Range{Low: 1, High: 100}

// ErrInvalidRange is returned when Low > High, Low is negative or High
// exceeds MaxGuess.
var ErrInvalidRange = errors.New("invalid range")

// Range is an inclusive interval [Low, High].
type Range struct {
	Low  int `yaml:"low"`
	High int `yaml:"high"`
}

// Validate reports ErrInvalidRange for empty ranges and for ranges
// holding a secret no guess could match.
func (r Range) Validate() error {
	if r.Low < 0 || r.Low > r.High {
		return fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, r.Low, r.High)
	}
	if uint64(r.High) > uint64(MaxGuess) {
		return fmt.Errorf("%w: high %d exceeds %d", ErrInvalidRange, r.High, uint64(MaxGuess))
	}
	return nil
}

// Contains reports whether n lies within the range, bounds included.
func (r Range) Contains(n int) bool { return n >= r.Low && n <= r.High }

func (r Range) String() string { return fmt.Sprintf("%d..%d", r.Low, r.High) }

// Kind classifies a guess.
type Kind string

const (
	KindInvalid Kind = "invalid"
	KindTooLow  Kind = "too_low"
	KindTooHigh Kind = "too_high"
	KindCorrect Kind = "correct"
)

// Outcome is the result of submitting one line of input.
type Outcome struct {
	Kind     Kind
	Guess    int   // parsed candidate; zero when Kind is KindInvalid
	Attempts int   // attempt count after this submission
	Err      error // *ParseError when Kind is KindInvalid
}

// Terminal reports whether the outcome ends the session.
func (o Outcome) Terminal() bool { return o.Kind == KindCorrect }

// State is the coarse session state.
type State string

const (
	StateAwaiting State = "awaiting"
	StateWon      State = "won"
)

// Session holds the state of a single game.
// The secret is fixed at construction; only attempts and state change.
type Session struct {
	secret   int
	rng      Range
	attempts int
	state    State
}

// ParseError describes why a line could not be read as a guess.
type ParseError struct {
	Input  string // trimmed input
	Reason string
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return "parse guess: " + e.Reason
	}
	return fmt.Sprintf("parse guess %q: %s", e.Input, e.Reason)
}
