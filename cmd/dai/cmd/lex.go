package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/yetsing/dai/internal/daierrors"
	"github.com/yetsing/dai/internal/dailog"
	"github.com/yetsing/dai/internal/lexer"
	"github.com/yetsing/dai/pkg/token"
	"github.com/spf13/cobra"
)

var (
	lexEval       string
	lexShowPos    bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Dai source file",
	Long: `Tokenize a Dai program and print the resulting tokens, one per line.

If no file is given, reads from standard input. Use -e to tokenize an
inline snippet instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline source instead of reading a file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show each token's line:column")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "exit with the first illegal token instead of printing all tokens")
}

func runLex(cmd *cobra.Command, args []string) error {
	src, filename, err := readSource(lexEval, args)
	if err != nil {
		return err
	}

	var opts []lexer.Option
	if verboseCount > 0 {
		opts = append(opts, lexer.WithTracing(dailog.TokenTracer("dai.lex")))
	}

	tokens, diagErr := lexer.Tokenize(src, opts...)
	if diagErr != nil {
		diagErr = diagErr.WithFilename(filename)
		return fmt.Errorf("%s", diagErr.Pretty(src))
	}

	if lexOnlyErrors {
		return nil
	}

	for i := 0; i < tokens.Len(); i++ {
		printToken(tokens.Get(i))
	}
	return nil
}

func printToken(t token.Token) {
	if lexShowPos {
		fmt.Printf("[%-12s] %-20q @%d:%d\n", t.Type, t.Literal, t.Start().Line, t.Start().Column)
	} else {
		fmt.Printf("[%-12s] %q\n", t.Type, t.Literal)
	}
}

// readSource resolves the -e flag, a file argument, or stdin (in that
// order) into source text and a display filename.
func readSource(eval string, args []string) (src string, filename string, err error) {
	switch {
	case eval != "":
		return eval, "<eval>", nil
	case len(args) == 1:
		data, readErr := os.ReadFile(args[0])
		if readErr != nil {
			if os.IsNotExist(readErr) {
				return "", "", daierrors.NotFoundf("script %q", args[0])
			}
			return "", "", daierrors.Annotatef(readErr, "reading %s", args[0])
		}
		return string(data), args[0], nil
	default:
		data, readErr := io.ReadAll(os.Stdin)
		if readErr != nil {
			return "", "", fmt.Errorf("reading stdin: %w", readErr)
		}
		return string(data), "<stdin>", nil
	}
}
