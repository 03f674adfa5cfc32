package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed words.txt
var FS embed.FS

// ReadLines parses a one-word-per-line list. Blank lines and lines starting
// with '#' are skipped; words are trimmed and uppercased.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToUpper(s))
	}
	return out, sc.Err()
}

// WordList returns the embedded default word list.
func WordList() ([]string, error) {
	f, err := FS.Open("words.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}
