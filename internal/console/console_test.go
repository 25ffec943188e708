package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/robalobadob/guess/assets"
	"github.com/robalobadob/guess/internal/game"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestConsole(t *testing.T, input string, opts ...Option) (*Console, *bytes.Buffer) {
	t.Helper()
	msgs, err := assets.DefaultMessages()
	require.NoError(t, err)
	var out bytes.Buffer
	opts = append([]Option{WithStyles(PlainStyles())}, opts...)
	return New(strings.NewReader(input), &out, msgs, opts...), &out
}

func session(t *testing.T, secret int) *game.Session {
	t.Helper()
	s, err := game.NewWithSecret(secret, game.DefaultRange)
	require.NoError(t, err)
	return s
}

func TestPlay_Transcript(t *testing.T) {
	c, out := newTestConsole(t, "200\nabc\n50\n")
	res, err := c.Play(context.Background(), session(t, 50))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Attempts)
	assert.Equal(t, 50, res.Secret)

	want := strings.Join([]string{
		"Guess the number!",
		"I'm thinking of a number between 1 and 100.",
		"Please input your guess.",
		"You guessed: 200",
		"Too big!",
		"Please input your guess.",
		"Please type a number!",
		"Please input your guess.",
		"You guessed: 50",
		"You win! (2 attempts)",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestPlay_TooSmall(t *testing.T) {
	c, out := newTestConsole(t, "10\n90\n")
	res, err := c.Play(context.Background(), session(t, 90))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Attempts)
	assert.Contains(t, out.String(), "Too small!")
}

func TestPlay_LastLineWithoutNewline(t *testing.T) {
	c, _ := newTestConsole(t, "1")
	res, err := c.Play(context.Background(), session(t, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Attempts)
}

func TestPlay_Reveal(t *testing.T) {
	c, out := newTestConsole(t, "7\n", WithReveal(true))
	_, err := c.Play(context.Background(), session(t, 7))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "The secret number is: 7")
}

func TestPlay_InputClosed(t *testing.T) {
	c, _ := newTestConsole(t, "3\nxyz\n")
	s := session(t, 4)
	_, err := c.Play(context.Background(), s)
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, 1, s.Attempts())
}

func TestPlay_ReadFailure(t *testing.T) {
	msgs, err := assets.DefaultMessages()
	require.NoError(t, err)
	boom := errors.New("disk on fire")
	var out bytes.Buffer
	c := New(iotest.ErrReader(boom), &out, msgs, WithStyles(PlainStyles()))

	_, err = c.Play(context.Background(), session(t, 4))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputStream)
	assert.ErrorIs(t, err, boom)
}

func TestPlay_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c, _ := newTestConsole(t, "50\n")
	_, err := c.Play(ctx, session(t, 50))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlay_Elapsed(t *testing.T) {
	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	calls := 0
	clock := func() time.Time {
		calls++
		return base.Add(time.Duration(calls-1) * 3 * time.Second)
	}
	c, _ := newTestConsole(t, "5\n", WithClock(clock))
	res, err := c.Play(context.Background(), session(t, 5))
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, res.Elapsed)
}

func TestAnnounce(t *testing.T) {
	c, out := newTestConsole(t, "")
	c.Announce("Round %d of %d", 2, 3)
	assert.Equal(t, "Round 2 of 3\n", out.String())
}
