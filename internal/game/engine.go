// internal/game/engine.go
//
// Core game engine for a single guessing session.
// Responsibilities:
//   - Create sessions with a secret drawn from an inclusive range.
//   - Parse and apply guesses (trimmed, non-negative base-10 integers).
//   - Count attempts for parsed guesses only.
//   - Track state transitions: awaiting → won.
//
// Notes:
//   - Secrets come from a SecretSource (see the random package) or are fixed
//     by the caller (daily mode, tests).
//   - Malformed input never mutates the session.
package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SecretSource draws an integer uniformly from [low, high].
type SecretSource interface {
	IntRange(low, high int) (int, error)
}

// New constructs a session whose secret is drawn from src.
// A failing source is fatal for the session and is returned wrapped.
func New(src SecretSource, r Range) (*Session, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	secret, err := src.IntRange(r.Low, r.High)
	if err != nil {
		return nil, fmt.Errorf("draw secret: %w", err)
	}
	return NewWithSecret(secret, r)
}

// NewWithSecret constructs a session around a fixed secret.
// The secret must lie within r.
func NewWithSecret(secret int, r Range) (*Session, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if !r.Contains(secret) {
		return nil, fmt.Errorf("%w: secret %d outside %s", ErrInvalidRange, secret, r)
	}
	return &Session{secret: secret, rng: r, state: StateAwaiting}, nil
}

// Submit parses raw and applies it as a guess.
//
// Parse failures return KindInvalid and leave the session untouched.
// Parsed guesses increment the attempt count, then compare against the secret.
// Guesses outside the range are still compared normally.
// Submitting to a won session reports KindCorrect without counting an attempt.
func (s *Session) Submit(raw string) Outcome {
	if s.state == StateWon {
		return Outcome{Kind: KindCorrect, Guess: s.secret, Attempts: s.attempts}
	}

	guess, err := ParseGuess(raw)
	if err != nil {
		return Outcome{Kind: KindInvalid, Attempts: s.attempts, Err: err}
	}

	s.attempts++
	out := Outcome{Guess: guess, Attempts: s.attempts}
	switch {
	case guess < s.secret:
		out.Kind = KindTooLow
	case guess > s.secret:
		out.Kind = KindTooHigh
	default:
		out.Kind = KindCorrect
		s.state = StateWon
	}
	return out
}

// Secret returns the session secret.
func (s *Session) Secret() int { return s.secret }

// Range returns the range the secret was drawn from.
func (s *Session) Range() Range { return s.rng }

// Attempts returns the number of parsed guesses so far.
func (s *Session) Attempts() int { return s.attempts }

// State reports whether the session is still awaiting a correct guess.
func (s *Session) State() State { return s.state }

// ParseGuess trims surrounding whitespace and parses a non-negative
// base-10 integer. Signs of either kind are rejected.
func ParseGuess(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &ParseError{Reason: "empty input"}
	}
	if s[0] == '-' || s[0] == '+' {
		return 0, &ParseError{Input: s, Reason: "sign not allowed"}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &ParseError{Input: s, Reason: "not a number"}
	}
	if err != nil || n > MaxGuess {
		return 0, &ParseError{Input: s, Reason: fmt.Sprintf("larger than %d", uint64(MaxGuess))}
	}
	return int(n), nil
}
