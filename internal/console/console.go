// internal/console/console.go
//
// Terminal front end.
// Responsibilities:
//   - Read one guess per line, keeping only letters (uppercased).
//   - Submit it to the game and print per-letter feedback.
//   - Reset the game after a win or a loss and keep playing.
//
// Commands: ":quit" / ":q" leave the loop (QUIT itself is a playable word).

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/fourword/internal/game"
)

// Console plays rounds against one reader/writer pair.
type Console struct {
	in      io.Reader
	out     io.Writer
	sampler game.Sampler
	color   bool
}

// Option customizes a Console.
type Option func(*Console)

// WithColor turns ANSI tile rendering on or off.
func WithColor(on bool) Option { return func(c *Console) { c.color = on } }

// New builds a Console drawing targets from s.
func New(in io.Reader, out io.Writer, s game.Sampler, opts ...Option) *Console {
	c := &Console{in: in, out: out, sampler: s}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Stdout returns an ANSI-capable stdout and whether it is a terminal.
func Stdout() (io.Writer, bool) {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return colorable.NewColorableStdout(), tty
}

// Run plays until EOF, a quit command, or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	errc := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(c.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		errc <- sc.Err()
	}()

	g := game.New(c.sampler)
	log.Debug().Str("target", g.Target).Msg("new round")
	c.printf("Guess the %d-letter word. You have %d tries. Type :quit to leave.\n", len(g.Target), g.AttemptsRemaining)

	for {
		c.printf("> ")
		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				c.printf("\nBye!\n")
				select {
				case err := <-errc:
					return err
				default:
					return nil
				}
			}
			line = l
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case ":q", ":quit":
			c.printf("Bye!\n")
			return nil
		}

		c.play(g, lettersOnly(line))
	}
}

// play submits one guess and renders the outcome, resetting on a terminal status.
func (c *Console) play(g *game.Game, guess string) {
	res, err := g.Submit(guess)
	switch {
	case errors.Is(err, game.ErrInvalidGuessLength):
		c.printf("Please enter all %d letters!\n", len(g.Target))
		return
	case err != nil:
		// Only reachable if the loop forgot to reset; recover by resetting.
		log.Warn().Err(err).Msg("submit on finished round")
		c.reset(g)
		return
	}

	guess = strings.ToUpper(guess)
	c.printf("Your guess: %s\n", guess)
	if c.color {
		c.printf("%s\n", tiles(guess, res.Marks))
	}

	switch res.Status {
	case game.StatusWon:
		c.printf("Congratulations! You've guessed the word!\n")
		c.reset(g)
	case game.StatusLost:
		c.describe(guess, res.Marks)
		c.printf("Game over! The word was: %s\n", res.Target)
		c.reset(g)
	default:
		c.describe(guess, res.Marks)
		c.printf("Tries left: %d\n", res.AttemptsRemaining)
	}
}

// describe prints one line per letter.
func (c *Console) describe(guess string, marks []game.Mark) {
	for i, r := range []rune(guess) {
		switch marks[i] {
		case game.MarkCorrect:
			c.printf("Letter %c is in the correct position.\n", r)
		case game.MarkPresent:
			c.printf("Letter %c is in the word but wrong position.\n", r)
		default:
			c.printf("Letter %c is not in the word.\n", r)
		}
	}
}

func (c *Console) reset(g *game.Game) {
	g.Reset(c.sampler)
	log.Debug().Str("target", g.Target).Msg("new round")
	c.printf("New word! You have %d tries.\n", g.AttemptsRemaining)
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// lettersOnly drops everything that isn't a letter and uppercases the rest.
func lettersOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

const (
	ansiReset   = "\x1b[0m"
	ansiCorrect = "\x1b[1;30;42m"
	ansiPresent = "\x1b[1;30;43m"
	ansiAbsent  = "\x1b[1;37;100m"
)

// tiles renders the guess as coloured blocks.
func tiles(guess string, marks []game.Mark) string {
	var b strings.Builder
	for i, r := range []rune(guess) {
		switch marks[i] {
		case game.MarkCorrect:
			b.WriteString(ansiCorrect)
		case game.MarkPresent:
			b.WriteString(ansiPresent)
		default:
			b.WriteString(ansiAbsent)
		}
		b.WriteString(" " + string(r) + " ")
		b.WriteString(ansiReset)
	}
	return b.String()
}
