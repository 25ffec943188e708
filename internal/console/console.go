// internal/console/console.go
//
// Line-oriented control loop for one game session.
// Responsibilities:
//   - Print the greeting (and the secret when reveal is on).
//   - Prompt, read one line, submit it, and render the outcome.
//   - Stop on a correct guess.
//
// Notes:
//   - Reading is synchronous; the session is owned by the caller and only
//     mutated through game.Session.Submit.
//   - A failed read is fatal (ErrInputStream). Running out of input before
//     a win is fatal too (ErrInputClosed); a closed stream can never produce
//     the correct guess.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guess/assets"
	"github.com/robalobadob/guess/internal/game"
)

var (
	// ErrInputStream wraps a failure reading from the input stream.
	ErrInputStream = errors.New("read input")
	// ErrInputClosed is returned when input ends before the secret is guessed.
	ErrInputClosed = errors.New("input closed before a correct guess")
)

// Result summarizes a finished session.
type Result struct {
	Secret   int
	Attempts int
	Elapsed  time.Duration
}

// Console drives a session over a reader/writer pair.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	msgs   assets.Messages
	styles Styles
	reveal bool
	now    func() time.Time
}

// Option configures a Console.
type Option func(*Console)

// WithReveal prints the secret right after the greeting.
func WithReveal(on bool) Option { return func(c *Console) { c.reveal = on } }

// WithStyles overrides the output styles.
func WithStyles(s Styles) Option { return func(c *Console) { c.styles = s } }

// WithClock overrides the clock used to time sessions.
func WithClock(now func() time.Time) Option { return func(c *Console) { c.now = now } }

// New constructs a Console reading lines from in and writing to out.
// Styles default to colored output rendered for out.
func New(in io.Reader, out io.Writer, msgs assets.Messages, opts ...Option) *Console {
	c := &Console{
		in:     bufio.NewReader(in),
		out:    out,
		msgs:   msgs,
		styles: NewStyles(out, true),
		now:    time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Play runs s until it is won.
// ctx is checked between reads; a blocked read is not interrupted.
func (c *Console) Play(ctx context.Context, s *game.Session) (Result, error) {
	start := c.now()
	r := s.Range()

	c.println(c.styles.Title, c.msgs.Greeting)
	c.printf(c.styles.Muted, c.msgs.Range, r.Low, r.High)
	if c.reveal {
		c.printf(c.styles.Muted, c.msgs.Reveal, s.Secret())
	}

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		c.println(c.styles.Prompt, c.msgs.Prompt)

		line, err := c.readLine()
		if err != nil {
			log.Debug().Err(err).Int("attempts", s.Attempts()).Msg("input ended")
			return Result{}, err
		}

		out := s.Submit(line)
		log.Debug().
			Str("kind", string(out.Kind)).
			Int("guess", out.Guess).
			Int("attempts", out.Attempts).
			Msg("guess submitted")

		switch out.Kind {
		case game.KindInvalid:
			c.println(c.styles.Error, c.msgs.Invalid)
			continue
		case game.KindTooLow:
			c.printf(c.styles.Muted, c.msgs.Echo, out.Guess)
			c.println(c.styles.Hint, c.msgs.TooLow)
		case game.KindTooHigh:
			c.printf(c.styles.Muted, c.msgs.Echo, out.Guess)
			c.println(c.styles.Hint, c.msgs.TooHigh)
		case game.KindCorrect:
			c.printf(c.styles.Muted, c.msgs.Echo, out.Guess)
			c.printf(c.styles.Win, c.msgs.Win, out.Attempts)
		}

		if out.Terminal() {
			return Result{
				Secret:   s.Secret(),
				Attempts: out.Attempts,
				Elapsed:  c.now().Sub(start),
			}, nil
		}
	}
}

// Announce writes a title line, used by callers for round headers and summaries.
func (c *Console) Announce(format string, args ...any) {
	c.printf(c.styles.Title, format, args...)
}

// readLine returns the next line. A final line without a trailing newline
// is still returned; only an empty read at end of stream is ErrInputClosed.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}
		return "", ErrInputClosed
	}
	return "", fmt.Errorf("%w: %w", ErrInputStream, err)
}

func (c *Console) println(st lipgloss.Style, text string) {
	if text == "" {
		return
	}
	fmt.Fprintln(c.out, st.Render(text))
}

func (c *Console) printf(st lipgloss.Style, format string, args ...any) {
	if format == "" {
		return
	}
	c.println(st, fmt.Sprintf(format, args...))
}
