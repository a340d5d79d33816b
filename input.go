package sqlclient

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// InputKind tells what reading one unit of input produced.
type InputKind uint

const (
	// InputLine carries a line of text.
	InputLine InputKind = iota
	// InputCancelled is an interrupt (Ctrl+C) while reading.
	InputCancelled
	// InputEOF is the end of input (Ctrl+D).
	InputEOF
)

func (k InputKind) String() string {
	switch k {
	case InputLine:
		return "Line"
	case InputCancelled:
		return "Cancelled"
	case InputEOF:
		return "EndOfInput"
	default:
		return "Error"
	}
}

type Input struct {
	Kind InputKind
	Text string
}

// InputReader reads one line of user input after showing prompt. An error
// is returned only when the reader itself failed.
type InputReader interface {
	ReadInput(prompt string) (Input, error)
}

// ReadlineInput is an InputReader on top of a readline terminal.
type ReadlineInput struct {
	rl *readline.Instance
}

func NewReadlineInput(historyFile string) (*ReadlineInput, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Painter:         newKeywordPainter(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "initializing readline")
	}
	return &ReadlineInput{rl: rl}, nil
}

func (r *ReadlineInput) ReadInput(prompt string) (Input, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err == readline.ErrInterrupt {
		return Input{Kind: InputCancelled}, nil
	} else if err == io.EOF {
		return Input{Kind: InputEOF}, nil
	}
	if err != nil {
		return Input{}, errors.Wrap(err, "reading line")
	}
	return Input{Kind: InputLine, Text: line}, nil
}

func (r *ReadlineInput) Close() error {
	return r.rl.Close()
}

// keywordPainter highlights SQL keywords in the line being edited.
type keywordPainter struct {
	bold *color.Color
}

func newKeywordPainter() *keywordPainter {
	return &keywordPainter{bold: color.New(color.Bold)}
}

func (p *keywordPainter) Paint(line []rune, _ int) []rune {
	source := string(line)
	var b strings.Builder
	last := uint(0)
	for _, t := range lex(source) {
		switch t.kind {
		case keywordKind, boolKind, nullKind:
		default:
			continue
		}
		b.WriteString(source[last:t.start])
		b.WriteString(p.bold.Sprint(source[t.start:t.end]))
		last = t.end
	}
	if last == 0 {
		return line
	}
	b.WriteString(source[last:])
	return []rune(b.String())
}
