package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// prompter asks the user for input on out and reads answers from in. It
// shares in with the REPL so no input is buffered away from either.
type prompter struct {
	in  *bufio.Reader
	out io.Writer

	fd         int
	isTerminal func(fd int) bool
	readSecret func(fd int) ([]byte, error)
}

func newPrompter(in *bufio.Reader, out io.Writer) *prompter {
	return &prompter{
		in:         in,
		out:        out,
		fd:         int(os.Stdin.Fd()),
		isTerminal: term.IsTerminal,
		readSecret: term.ReadPassword,
	}
}

// readLine returns the next line without its line ending. A final line
// without '\n' is returned as is; io.EOF is reported only when nothing was
// read.
func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Line prints prompt and reads one trimmed line.
func (p *prompter) Line(prompt string) (string, error) {
	fmt.Fprintf(p.out, "%s\n> ", prompt)
	line, err := p.readLine()
	return strings.TrimSpace(line), err
}

// Secret reads without echo from a terminal. Piped input is read as a plain
// line so scripts can drive the CLI. Callers wipe the result.
func (p *prompter) Secret(prompt string) ([]byte, error) {
	fmt.Fprintf(p.out, "%s: ", prompt)
	if !p.isTerminal(p.fd) {
		line, err := p.readLine()
		fmt.Fprintln(p.out)
		return []byte(line), err
	}
	secret, err := p.readSecret(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return nil, err
	}
	return secret, nil
}

// Lines reads until an empty line or end of input and joins the lines with
// '\n'.
func (p *prompter) Lines(prompt string) (string, error) {
	fmt.Fprintf(p.out, "%s\n(press Enter on an empty line to finish)\n", prompt)

	var b strings.Builder
	for {
		line, err := p.readLine()
		if line == "" {
			break
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if err != nil {
			break
		}
	}
	return strings.TrimSpace(b.String()), nil
}
