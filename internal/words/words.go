// internal/words/words.go
//
// Word bank for the game engine.
//
// Responsibilities:
//   - Validate a candidate list (non-empty, uppercase A–Z, one shared length).
//   - Load the list from a file, or fall back to the embedded default.
//   - Draw targets uniformly at random from an injected random source.
//
// Word list format:
//   - One word per line; blank lines and '#' comments are ignored.
//   - Words are trimmed and uppercased before validation.
//   - Duplicates collapse to a single entry.
//
// Environment variables (read by config, passed in as a path):
//   WORDS_FILE=/path/to/words.txt

package words

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/fourword/assets"
)

var (
	ErrEmpty       = errors.New("words: word list is empty")
	ErrInvalidWord = errors.New("words: word must be uppercase letters A-Z")
	ErrMixedLength = errors.New("words: all words must share one length")
)

// Bank is an immutable set of same-length words.
// Sample is safe for concurrent use.
type Bank struct {
	list    []string
	set     map[string]struct{}
	wordLen int

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// New validates list and builds a Bank drawing from src.
// A nil src is replaced by a PCG source seeded from crypto/rand.
func New(list []string, src rand.Source) (*Bank, error) {
	if src == nil {
		src = cryptoSeeded()
	}
	b := &Bank{
		set: make(map[string]struct{}, len(list)),
		rng: rand.New(src),
	}
	for _, raw := range list {
		w := strings.ToUpper(strings.TrimSpace(raw))
		if w == "" {
			continue
		}
		if !isUpperAlpha(w) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, raw)
		}
		if b.wordLen == 0 {
			b.wordLen = len(w)
		} else if len(w) != b.wordLen {
			return nil, fmt.Errorf("%w: %q has %d letters, want %d", ErrMixedLength, w, len(w), b.wordLen)
		}
		if _, dup := b.set[w]; dup {
			continue
		}
		b.set[w] = struct{}{}
		b.list = append(b.list, w)
	}
	if len(b.list) == 0 {
		return nil, ErrEmpty
	}
	return b, nil
}

// Load reads a word list from path. An empty path uses the embedded default.
func Load(path string, src rand.Source) (*Bank, error) {
	if path == "" {
		list, err := assets.WordList()
		if err != nil {
			return nil, fmt.Errorf("read embedded word list: %w", err)
		}
		return New(list, src)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	list, err := assets.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return New(list, src)
}

// Sample returns a word chosen uniformly at random.
func (b *Bank) Sample() string {
	b.mu.Lock()
	i := b.rng.IntN(len(b.list))
	b.mu.Unlock()
	return b.list[i]
}

// At returns the word at index i mod Len(). Used for deterministic draws.
func (b *Bank) At(i int) string {
	n := len(b.list)
	return b.list[((i%n)+n)%n]
}

// Contains reports whether w (any case) is in the bank.
func (b *Bank) Contains(w string) bool {
	_, ok := b.set[strings.ToUpper(w)]
	return ok
}

// Len returns the number of distinct words.
func (b *Bank) Len() int { return len(b.list) }

// WordLen returns the shared word length.
func (b *Bank) WordLen() int { return b.wordLen }

// Words returns a copy of the word list in load order.
func (b *Bank) Words() []string {
	return append([]string(nil), b.list...)
}

// isUpperAlpha reports whether s is all uppercase ASCII letters.
func isUpperAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// cryptoSeeded returns a PCG source with a seed from crypto/rand.
func cryptoSeeded() rand.Source {
	var b [16]byte
	_, _ = crand.Read(b[:])
	return rand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]))
}
