package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/term"
)

// terminalPrompter reads a password from stdin without echo when stdin is a terminal
type terminalPrompter struct {
	in  *os.File
	out *os.File
}

func newTerminalPrompter() *terminalPrompter {
	return &terminalPrompter{in: os.Stdin, out: os.Stderr}
}

func (p *terminalPrompter) Prompt(ctx context.Context, username string) (string, error) {
	fmt.Fprintf(p.out, "Password for username %s: ", username)

	fd := int(p.in.Fd())
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(p.in).ReadString('\n')
		if err != nil && line == "" {
			return "", goerr.Wrap(err, "failed to read password from stdin")
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read password from terminal")
	}
	return string(raw), nil
}
