package loader

import (
	"bufio"
	"errors"
	"io"
)

// tokenizer splits a stream into words while tracking the byte offset and
// line number, which fscanf-style readers do not expose.
type tokenizer struct {
	r      *bufio.Reader
	offset int64 // bytes consumed so far
	line   int   // line of the next unread byte
	buf    []byte
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{r: bufio.NewReader(r), line: 1}
}

// next returns the next whitespace-delimited word. It returns io.EOF when only whitespace is left
// and any other reader error unchanged.
func (z *tokenizer) next() (string, error) {
	// skip leading whitespace
	var c byte
	var err error
	for {
		if c, err = z.r.ReadByte(); err != nil {
			return "", err
		}
		z.offset++
		if !isSpace(c) {
			break
		}
		if c == '\n' {
			z.line++
		}
	}

	z.buf = append(z.buf[:0], c)
	for {
		if c, err = z.r.ReadByte(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", err
		}
		if isSpace(c) {
			// leave the delimiter for the next call so offsets stop at the token
			_ = z.r.UnreadByte()
			break
		}
		z.offset++
		z.buf = append(z.buf, c)
	}
	return string(z.buf), nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}

	return false
}
