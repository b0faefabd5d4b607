// Package scores reads and writes tab-separated score files.
package scores

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"deedles.dev/xlist"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingTab is returned when a line has no tab between the
	// score and the name.
	ErrMissingTab = errors.New("missing tab separator")

	// ErrBadScore is returned when the score field is not an integer.
	ErrBadScore = errors.New("score is not an integer")
)

// Record is a single line of a score file.
type Record struct {
	Score int    `yaml:"score"`
	Name  string `yaml:"name"`
}

// ParseError is returned by [Read] when a line can't be parsed.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("line %v: %v: %q", err.Line, err.Err, err.Text)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// ParseLine parses a line of the form "<score>\t<name>". The name is
// everything after the first tab and may itself contain tabs.
func ParseLine(line string) (Record, error) {
	score, name, ok := strings.Cut(line, "\t")
	if !ok {
		return Record{}, ErrMissingTab
	}

	n, err := strconv.Atoi(score)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrBadScore, err)
	}

	return Record{Score: n, Name: name}, nil
}

// Read parses one record per line from r and returns them in a list
// in the order that they were read. Blank lines are skipped.
func Read(r io.Reader) (*xlist.List[Record], error) {
	l := xlist.New[Record]()

	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		text := strings.TrimSuffix(s.Text(), "\r")
		if text == "" {
			continue
		}

		rec, err := ParseLine(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}

		_, err = l.Insert(l.End(), rec)
		if err != nil {
			return nil, fmt.Errorf("line %v: %w", line, err)
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}

	return l, nil
}

// WriteTSV writes the records in l to w in the same format that Read
// accepts.
func WriteTSV(w io.Writer, l *xlist.List[Record]) error {
	bw := bufio.NewWriter(w)
	for it := l.ConstBegin(); it != l.ConstEnd(); it.Next() {
		rec := it.Value()
		_, err := fmt.Fprintf(bw, "%v\t%v\n", rec.Score, rec.Name)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteYAML writes the records in l to w as a YAML sequence.
func WriteYAML(w io.Writer, l *xlist.List[Record]) error {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(l.Collect()); err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	return e.Close()
}
