// Package replshell implements the interactive jsubset prompt: one
// persistent *interp.Interpreter fed a line at a time through
// chzyer/readline (SPEC_FULL.md's Ambient Stack section). Declarations
// made on one line stay visible to every line after it, matching
// spec.md §2's "repeatedly" data-flow note about a REPL host.
package replshell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/jsubset/jsubset/internal/interp"
)

const prompt = "> "

// Run drives the prompt loop until the user quits or stdin closes.
// Script stdout goes to out; script stderr, lexical errors and the
// interrupt hint go to errOut, mirroring the CLI's own stdout/stderr
// split. A read error other than an interrupt or EOF is returned.
func Run(out, errOut io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("replshell: could not start line editor: %w", err)
	}
	defer rl.Close()

	in := interp.New()
	interrupted := false

	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if interrupted {
				return nil
			}
			interrupted = true
			fmt.Fprintln(errOut, "(To exit, press Ctrl-C again or Ctrl-D, or type .exit)")
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}
		interrupted = false

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" || line == "exit()" {
			return nil
		}

		if !strings.HasSuffix(line, ";") {
			line += ";"
		}

		stdout, stderr, runErr := in.Interpret(line)
		if stdout != "" {
			fmt.Fprint(out, stdout)
		}
		if stderr != "" {
			fmt.Fprint(errOut, stderr)
		}
		if runErr != nil {
			fmt.Fprintln(errOut, runErr)
		}
	}
}
