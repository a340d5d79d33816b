package sqlclient

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

const (
	primaryPrompt      = ">>> "
	continuationPrompt = "... "
)

// PrintBanner prints the usage help and the effective settings.
func PrintBanner(out io.Writer, cfg *Config) {
	bold := color.New(color.Bold)

	bold.Fprintln(out, "SimpleDB Client")
	fmt.Fprintln(out)
	bold.Fprintln(out, "Usage")
	fmt.Fprintln(out, "  Execute:   end with ';' or an empty line")
	fmt.Fprintln(out, "  Discard:   Ctrl + C")
	fmt.Fprintln(out, "  Terminate: Ctrl + D")
	fmt.Fprintln(out)
	bold.Fprintln(out, "Run configurations")
	fmt.Fprintf(out, "  Server addr: %s\n", cfg.ServerAddr)
	fmt.Fprintf(out, "  Connect timeout: %s\n", cfg.DialTimeout)
	fmt.Fprintf(out, "  Page threshold: %d\n", cfg.PageThreshold)
	if cfg.HistoryFile != "" {
		fmt.Fprintf(out, "  History file: %s\n", cfg.HistoryFile)
	}
	fmt.Fprintln(out)
}

func promptFor(db string) string {
	if db == "" {
		return primaryPrompt
	}
	return "(" + db + ") " + primaryPrompt
}

// readProgram collects input lines into one SQL program. A line ending in
// ';' submits, as does an empty line after some text. A cancel drops
// whatever was typed so far.
func readProgram(in InputReader, prompt string) (Input, error) {
	var buf strings.Builder
	for {
		p := prompt
		if buf.Len() > 0 {
			p = continuationPrompt
		}

		line, err := in.ReadInput(p)
		if err != nil {
			return Input{}, err
		}
		if line.Kind != InputLine {
			return line, nil
		}

		trimmed := strings.TrimSpace(line.Text)
		if trimmed == "" {
			if buf.Len() == 0 {
				continue
			}
			return Input{Kind: InputLine, Text: buf.String()}, nil
		}

		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(line.Text)
		if strings.HasSuffix(trimmed, ";") {
			return Input{Kind: InputLine, Text: buf.String()}, nil
		}
	}
}

// RunRepl reads programs from in and prints the server's answers until the
// end of input. RPC failures are printed and the loop goes on; any other
// failure is printed and returned marked with ErrReported.
func RunRepl(ctx context.Context, s *Session, r *Renderer, in InputReader, out io.Writer) error {
repl:
	for {
		program, err := readProgram(in, promptFor(s.CurrentDatabase()))
		if err != nil {
			fmt.Fprintln(out, "Exception occurred:", err)
			return errors.Mark(err, ErrReported)
		}

		switch program.Kind {
		case InputCancelled:
			continue repl
		case InputEOF:
			return nil
		}

		batch, err := s.Execute(ctx, program.Text)
		if err != nil {
			var rpcErr *RPCError
			if errors.As(err, &rpcErr) {
				fmt.Fprintf(out, "%s\n\n", rpcErr)
				continue repl
			}
			fmt.Fprintln(out, "Exception occurred:", err)
			return errors.Mark(err, ErrReported)
		}

		r.RenderBatch(batch)
	}
}
