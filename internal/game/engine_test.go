package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/fourword/internal/words"
)

// fixed always draws the same word.
type fixed string

func (f fixed) Sample() string { return string(f) }

func TestNewGame(t *testing.T) {
	g := New(fixed("READ"))
	assert.Len(t, g.ID, 16)
	assert.Equal(t, "READ", g.Target)
	assert.Equal(t, MaxAttempts, g.AttemptsRemaining)
	assert.Equal(t, StatusInProgress, g.Status)
	assert.Empty(t, g.Guesses)
	assert.False(t, g.Finished())
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name          string
		target, guess string
		want          []Mark
	}{
		{"mixed", "READ", "ROAD", []Mark{MarkCorrect, MarkAbsent, MarkCorrect, MarkCorrect}},
		{"all absent", "READ", "COOL", []Mark{MarkAbsent, MarkAbsent, MarkAbsent, MarkAbsent}},
		{"present", "READ", "DART", []Mark{MarkPresent, MarkPresent, MarkPresent, MarkAbsent}},
		{"all correct", "BLUE", "BLUE", []Mark{MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect}},
		// Target has one E, both guess Es are reported present.
		{"repeated letter", "READ", "BEER", []Mark{MarkAbsent, MarkCorrect, MarkPresent, MarkPresent}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Evaluate(tc.target, tc.guess))
		})
	}
}

func TestSubmitScenarioReadRoad(t *testing.T) {
	g := New(fixed("READ"))
	res, err := g.Submit("ROAD")
	require.NoError(t, err)
	assert.Equal(t, []Mark{MarkCorrect, MarkAbsent, MarkCorrect, MarkCorrect}, res.Marks)
	assert.Equal(t, StatusInProgress, res.Status)
	assert.Equal(t, 9, res.AttemptsRemaining)
	assert.Empty(t, res.Target, "target stays hidden while in progress")
	assert.Equal(t, []string{"ROAD"}, g.Guesses)
}

func TestSubmitWinDecrementsAttempt(t *testing.T) {
	g := New(fixed("BLUE"))
	_, err := g.Submit("COOL")
	require.NoError(t, err)
	before := g.AttemptsRemaining

	res, err := g.Submit("blue")
	require.NoError(t, err)
	assert.Equal(t, StatusWon, res.Status)
	assert.Equal(t, []Mark{MarkCorrect, MarkCorrect, MarkCorrect, MarkCorrect}, res.Marks)
	assert.Equal(t, before-1, res.AttemptsRemaining)
	assert.Equal(t, "BLUE", res.Target)
	assert.True(t, g.Finished())
}

func TestSubmitIsCaseInsensitive(t *testing.T) {
	lower := New(fixed("READ"))
	upper := New(fixed("READ"))
	a, err := lower.Submit("road")
	require.NoError(t, err)
	b, err := upper.Submit("ROAD")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSubmitLosesAfterMaxAttempts(t *testing.T) {
	g := New(fixed("READ"))
	var res Result
	var err error
	for i := 0; i < MaxAttempts; i++ {
		res, err = g.Submit("COOL")
		require.NoError(t, err)
	}
	assert.Equal(t, StatusLost, res.Status)
	assert.Equal(t, 0, res.AttemptsRemaining)
	assert.Equal(t, "READ", res.Target)

	_, err = g.Submit("READ")
	assert.ErrorIs(t, err, ErrNoAttemptsRemaining)
	assert.Equal(t, 0, g.AttemptsRemaining)
	assert.Equal(t, StatusLost, g.Status)
}

func TestSubmitAfterWinFails(t *testing.T) {
	g := New(fixed("READ"))
	_, err := g.Submit("READ")
	require.NoError(t, err)

	_, err = g.Submit("ROAD")
	assert.ErrorIs(t, err, ErrNoAttemptsRemaining)
	assert.Equal(t, MaxAttempts-1, g.AttemptsRemaining)
	assert.Equal(t, []string{"READ"}, g.Guesses)
}

func TestSubmitWrongLengthChangesNothing(t *testing.T) {
	g := New(fixed("READ"))
	before := g.Clone()

	for _, guess := range []string{"", "REA", "READS", "  RE "} {
		_, err := g.Submit(guess)
		assert.ErrorIs(t, err, ErrInvalidGuessLength, "guess %q", guess)
	}
	assert.Equal(t, before, g)
}

func TestResetAfterTerminal(t *testing.T) {
	bank, err := words.Load("", rand.NewPCG(7, 7))
	require.NoError(t, err)

	g := New(bank)
	id := g.ID
	for !g.Finished() {
		_, err := g.Submit("ZZZZ")
		require.NoError(t, err)
	}
	require.Equal(t, StatusLost, g.Status)

	g.Reset(bank)
	assert.Equal(t, id, g.ID)
	assert.Equal(t, StatusInProgress, g.Status)
	assert.Equal(t, MaxAttempts, g.AttemptsRemaining)
	assert.Empty(t, g.Guesses)
	assert.True(t, bank.Contains(g.Target))
}

func TestCloneIsDeep(t *testing.T) {
	g := New(fixed("READ"))
	_, err := g.Submit("ROAD")
	require.NoError(t, err)

	c := g.Clone()
	c.Guesses[0] = "BLUE"
	assert.Equal(t, "ROAD", g.Guesses[0])
}
