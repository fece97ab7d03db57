// Package prompt asks the user for the query and result count when they are
// not given on the command line.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"sigrank/internal/engine"
)

const (
	QueryPrompt = "Enter target sequence: "
	LimitPrompt = "How many results to keep? (default all): "
)

// Prompter reads answers line by line from in and writes prompts to out.
type Prompter struct {
	r   *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(in), out: out}
}

func (p *Prompter) ask(q string) (string, error) {
	if _, err := io.WriteString(p.out, q); err != nil {
		return "", err
	}
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Query asks for the target sequence and normalizes it. An empty answer
// (including end of input) yields "".
func (p *Prompter) Query() (string, error) {
	s, err := p.ask(QueryPrompt)
	if err != nil {
		return "", err
	}
	return NormalizeQuery(s), nil
}

// Limit asks for the result count. ok=false means the answer was empty or
// not a non-negative integer and n is 0 (keep all).
func (p *Prompter) Limit() (n int, ok bool, err error) {
	s, err := p.ask(LimitPrompt)
	if err != nil {
		return 0, false, err
	}
	n, ok = engine.ParseLimit(s)
	return n, ok, nil
}

// NormalizeQuery applies NFKC (so full-width letters become ASCII) and trims
// surrounding whitespace. Case is kept.
func NormalizeQuery(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}
