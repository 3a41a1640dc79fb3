package cmd

import (
	"fmt"
	"os"

	"github.com/yetsing/dai/internal/debugprint"
	"github.com/spf13/cobra"
)

var (
	showASTPlain bool
	showASTQuery string
)

var showASTCmd = &cobra.Command{
	Use:   "show-ast [file]",
	Short: "Parse a Dai source file and print its AST as JSON",
	Long: `show-ast parses Dai source and prints the resulting AST as JSON, coloured
by default when standard output is a terminal. --plain forces uncoloured
output, and --query pulls a single subtree out by gjson path instead of
printing the whole tree.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShowAST,
}

var showASTEval string

func init() {
	rootCmd.AddCommand(showASTCmd)
	showASTCmd.Flags().StringVarP(&showASTEval, "eval", "e", "", "parse inline source instead of reading a file")
	showASTCmd.Flags().BoolVar(&showASTPlain, "plain", false, "force uncoloured JSON output")
	showASTCmd.Flags().StringVar(&showASTQuery, "query", "", "gjson path selecting one subtree to print")
}

func runShowAST(cmd *cobra.Command, args []string) error {
	src, filename, err := readSource(showASTEval, args)
	if err != nil {
		return err
	}

	prog, parseErr := parseFile(src, filename)
	if parseErr != nil {
		return fmt.Errorf("%s", parseErr.Error())
	}

	if showASTQuery != "" {
		result, queryErr := debugprint.Query(prog, showASTQuery)
		if queryErr != nil {
			return fmt.Errorf("query %q: %w", showASTQuery, queryErr)
		}
		fmt.Println(result)
		return nil
	}

	var out []byte
	if showASTPlain || cfg.ASTStyle == "plain" || !isTerminal(os.Stdout) {
		out, err = debugprint.Plain(prog)
	} else {
		out, err = debugprint.Colored(prog)
	}
	if err != nil {
		return fmt.Errorf("rendering AST: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// isTerminal reports whether f looks like an interactive terminal rather
// than a pipe or redirected file, by checking the character-device bit on
// its file mode.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
