package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsubset/jsubset/internal/interp"
	"github.com/jsubset/jsubset/internal/lexer"
	"github.com/jsubset/jsubset/internal/parser"
)

var (
	evalExpr    string
	dumpAST     bool
	dumpTokens  bool
	traceExec   bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a jsubset program",
	Long: `Execute a jsubset program from a file or an inline expression.

Examples:
  # Run a script file (must have a .js suffix)
  jsubset run script.js

  # Evaluate inline code
  jsubset run -e "console.log('hello');"

  # Dump the parsed AST instead of running
  jsubset run --dump-ast script.js`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from a file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST instead of running it")
	runCmd.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "dump the token stream instead of running it")
	runCmd.Flags().BoolVar(&traceExec, "trace", false, "write the parsed top-level statement count to stderr before running")
}

func runScript(cmd *cobra.Command, args []string) error {
	source, _, err := resolveSource(args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	if dumpTokens {
		dumpTokenStream(source)
		return nil
	}

	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := l.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "LexicalError at line %d: %s\n", e.Pos.Line, e.Message)
		}
		return fmt.Errorf("lexing failed with %d error(s)", len(errs))
	}
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	if dumpAST {
		fmt.Println(program.String())
		return nil
	}

	if traceExec || verbose {
		fmt.Fprintf(os.Stderr, "trace: parsed %d top-level statement(s)\n", len(program.Statements))
	}

	in := interp.New()
	stdout, stderr, runErr := in.Interpret(source)
	fmt.Print(stdout)
	fmt.Fprint(os.Stderr, stderr)
	if runErr != nil {
		return runErr
	}
	return nil
}

// resolveSource reads program text either from -e/--eval or from a
// file argument. File mode requires a ".js" suffix so a script is never
// mistaken for some other kind of input; --eval bypasses that check
// entirely since there's no path to inspect (SPEC_FULL.md's Ambient
// Stack section).
func resolveSource(args []string) (source, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) != 1 {
		return "", "", fmt.Errorf("either provide a .js file path or use -e/--eval for inline code")
	}
	filename = args[0]
	if !strings.HasSuffix(filename, ".js") {
		return "", "", fmt.Errorf("file %q must have a .js suffix", filename)
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return string(content), filename, nil
}

func dumpTokenStream(source string) {
	l := lexer.New(source)
	for {
		tok := l.NextToken()
		fmt.Printf("%-14s %-20q line=%d col=%d\n", tok.Type, tok.Literal, tok.Pos.Line, tok.Pos.Column)
		if tok.Type == lexer.EOF {
			break
		}
	}
}
