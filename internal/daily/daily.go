// internal/daily/daily.go
//
// Daily target selection.
// Every player who starts a daily game on the same UTC date gets the same
// word: the index is HMAC-SHA256(salt, YYYY-MM-DD) mod bank size.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Bank is the subset of *words.Bank the sampler needs.
type Bank interface {
	Len() int
	At(i int) string
}

// Sampler draws the day's word. It satisfies game.Sampler, so a daily game
// is an ordinary game whose Reset lands on the same word until midnight UTC.
type Sampler struct {
	Bank Bank
	Salt string
	Now  func() time.Time // defaults to time.Now
}

// Sample returns the word for the current date.
func (s Sampler) Sample() string {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return s.Bank.At(WordIndex(now(), s.Salt, s.Bank.Len()))
}
