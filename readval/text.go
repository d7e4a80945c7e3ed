package readval

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Text reads whitespace-separated decimal integers.
type Text struct {
	s     *bufio.Scanner
	count int
}

var _ Source = (*Text)(nil)

// NewText reads integers from r, splitting on any whitespace.
func NewText(r io.Reader) *Text {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &Text{s: s}
}

// Int parses the next token. Tokens that strconv.Atoi rejects yield
// ErrNotInteger.
func (t *Text) Int() (int, error) {
	if !t.s.Scan() {
		if err := t.s.Err(); err != nil {
			return 0, errors.Wrap(err, "reading text input")
		}
		return 0, errors.Wrapf(ErrExhausted, "after %d values", t.count)
	}
	tok := t.s.Text()
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.Wrapf(ErrNotInteger, "token %d %q", t.count, tok)
	}
	t.count++
	return n, nil
}
