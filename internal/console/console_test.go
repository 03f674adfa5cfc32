package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixed string

func (f fixed) Sample() string { return string(f) }

func run(t *testing.T, target, input string, opts ...Option) string {
	t.Helper()
	var out bytes.Buffer
	c := New(strings.NewReader(input), &out, fixed(target), opts...)
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestConsoleFeedback(t *testing.T) {
	out := run(t, "READ", "road\n")
	assert.Contains(t, out, "Your guess: ROAD")
	assert.Contains(t, out, "Letter R is in the correct position.")
	assert.Contains(t, out, "Letter O is not in the word.")
	assert.Contains(t, out, "Letter A is in the correct position.")
	assert.Contains(t, out, "Letter D is in the correct position.")
	assert.Contains(t, out, "Tries left: 9")
	assert.Contains(t, out, "Bye!")
}

func TestConsolePresentLetter(t *testing.T) {
	out := run(t, "READ", "DART\n")
	assert.Contains(t, out, "Letter D is in the word but wrong position.")
	assert.Contains(t, out, "Letter T is not in the word.")
}

func TestConsoleRepromptsOnShortGuess(t *testing.T) {
	out := run(t, "READ", "r-e\n")
	assert.Contains(t, out, "Please enter all 4 letters!")
	assert.NotContains(t, out, "Your guess")
}

func TestConsoleWinResets(t *testing.T) {
	out := run(t, "BLUE", "b l u e\nblue\n")
	assert.Equal(t, 2, strings.Count(out, "Congratulations! You've guessed the word!"))
	assert.Equal(t, 2, strings.Count(out, "New word! You have 10 tries."))
}

func TestConsoleLoseResets(t *testing.T) {
	input := strings.Repeat("COOL\n", 10) + "READ\n"
	out := run(t, "READ", input)
	assert.Contains(t, out, "Tries left: 1")
	assert.Contains(t, out, "Game over! The word was: READ")
	assert.Contains(t, out, "New word! You have 10 tries.")
	assert.Contains(t, out, "Congratulations!")
}

func TestConsoleQuitCommand(t *testing.T) {
	out := run(t, "READ", ":quit\nREAD\n")
	assert.NotContains(t, out, "Your guess")

	// QUIT is a word, not a command.
	out = run(t, "QUIT", "quit\n")
	assert.Contains(t, out, "Congratulations!")
}

func TestConsoleColorTiles(t *testing.T) {
	out := run(t, "READ", "ROAD\n", WithColor(true))
	assert.Contains(t, out, ansiCorrect+" R "+ansiReset)
	assert.Contains(t, out, ansiAbsent+" O "+ansiReset)

	out = run(t, "READ", "ROAD\n")
	assert.NotContains(t, out, "\x1b[")
}

func TestConsoleStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	c := New(pr, &out, fixed("READ"))
	errc := make(chan error, 1)
	go func() { errc <- c.Run(ctx) }()
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("console did not stop after cancel")
	}
}

func TestLettersOnly(t *testing.T) {
	assert.Equal(t, "ROAD", lettersOnly(" r0-o a\td! "))
	assert.Equal(t, "", lettersOnly("1234"))
}
