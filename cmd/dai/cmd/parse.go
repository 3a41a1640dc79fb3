package cmd

import (
	"fmt"

	"github.com/yetsing/dai/internal/ast"
	"github.com/yetsing/dai/internal/diag"
	"github.com/yetsing/dai/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Dai source file and report success or the diagnostic",
	Long: `Parse reads Dai source (from a file, -e, or stdin), runs it through the
lexer and parser, and prints "ok" on success or the diagnostic in its
canonical "Kind: message in file:line:col" form on failure.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParseCmd,
}

var parseEval string

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline source instead of reading a file")
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	src, filename, err := readSource(parseEval, args)
	if err != nil {
		return err
	}

	if _, parseErr := parseFile(src, filename); parseErr != nil {
		return fmt.Errorf("%s", parseErr.Error())
	}

	fmt.Println("ok")
	return nil
}

// parseFile tokenizes and parses src, tagging any diagnostic with filename.
func parseFile(src, filename string) (*ast.Program, *diag.Diagnostic) {
	return parser.ParseSource(src, filename)
}
