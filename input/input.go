// Package input reads puzzle-style text: one value per line, or groups of
// values separated by blank lines.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrRead indicates the underlying reader failed.
var ErrRead = errors.New("input: read failed")

// Values parses one value per line. Lines that parse rejects are skipped,
// so blank separators and headers simply disappear.
func Values[T any](r io.Reader, parse func(string) (T, error)) ([]T, error) {
	var out []T
	err := scanLines(r, func(line string) {
		if v, err := parse(line); err == nil {
			out = append(out, v)
		}
	})
	return out, err
}

// Chunks splits the input on blank lines and parses each line of every
// chunk like Values. Runs of blank lines do not produce empty chunks.
func Chunks[T any](r io.Reader, parse func(string) (T, error)) ([][]T, error) {
	var (
		out     [][]T
		current []T
		open    bool
	)
	err := scanLines(r, func(line string) {
		if strings.TrimSpace(line) == "" {
			if open {
				out = append(out, current)
				current, open = nil, false
			}
			return
		}
		open = true
		if v, err := parse(line); err == nil {
			current = append(current, v)
		}
	})
	if open {
		out = append(out, current)
	}
	return out, err
}

// Int parses a base-10 integer, ignoring surrounding whitespace.
func Int(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// Line returns s unchanged; it lets Values and Chunks collect raw lines.
func Line(s string) (string, error) {
	return s, nil
}

func scanLines(r io.Reader, fn func(string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for sc.Scan() {
		fn(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRead, err)
	}
	return nil
}
