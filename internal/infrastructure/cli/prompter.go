package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/doeshing/safety-dash/internal/domain"
	"github.com/doeshing/safety-dash/internal/ports"
)

// Prompter reads the API key from the terminal without echo.
type Prompter struct {
	in  *os.File
	out io.Writer
}

// NewPrompter constructs a prompter referencing stdio.
func NewPrompter(in *os.File, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	return &Prompter{in: in, out: out}
}

// Enabled reports whether input is an interactive terminal.
func (p *Prompter) Enabled() bool {
	return term.IsTerminal(int(p.in.Fd()))
}

// ReadCredential shows prompt and reads one line. Echo is disabled when the
// input is a terminal.
func (p *Prompter) ReadCredential(prompt string) (domain.Credential, error) {
	fmt.Fprint(p.out, prompt)
	defer fmt.Fprintln(p.out)

	if p.Enabled() {
		raw, err := term.ReadPassword(int(p.in.Fd()))
		if err != nil {
			return "", fmt.Errorf("read API key: %w", err)
		}
		return domain.NewCredential(string(raw)), nil
	}

	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read API key: %w", err)
	}
	return domain.NewCredential(line), nil
}

var _ ports.CredentialPrompter = (*Prompter)(nil)
