package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yetsing/dai/internal/daierrors"
	"github.com/yetsing/dai/internal/lexer"
	"github.com/yetsing/dai/internal/parser"
	"github.com/yetsing/dai/pkg/printer"
	"github.com/gkampitakis/go-diff/diffmatchpatch"
	"github.com/maruel/natural"
	"github.com/spf13/cobra"
)

var (
	fmtWrite     bool
	fmtList      bool
	fmtDiff      bool
	fmtRecursive bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [files or directories...]",
	Short: "Format Dai source files",
	Long: `fmt reads Dai source, parses it into an AST, and pretty-prints it back
to source text with consistent formatting, replaying comments and
literal spellings from the original token stream.

By default fmt writes the formatted result to standard output. If no
path is given, it formats standard input.`,
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to (source) file instead of stdout")
	fmtCmd.Flags().BoolVarP(&fmtList, "list", "l", false, "list files whose formatting differs")
	fmtCmd.Flags().BoolVarP(&fmtDiff, "diff", "d", false, "display diffs instead of rewriting files")
	fmtCmd.Flags().BoolVarP(&fmtRecursive, "recursive", "r", false, "process directories recursively")
}

func runFmt(cmd *cobra.Command, args []string) error {
	if fmtWrite && fmtList {
		return fmt.Errorf("cannot use -w and -l together")
	}
	if fmtWrite && fmtDiff {
		return fmt.Errorf("cannot use -w and -d together")
	}

	if len(args) == 0 {
		return formatStdin()
	}

	paths, err := collectPaths(args)
	if err != nil {
		return err
	}
	sort.Slice(paths, func(i, j int) bool { return natural.Less(paths[i], paths[j]) })

	hasErrors := false
	for _, path := range paths {
		if err := formatFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
			hasErrors = true
		}
	}
	if hasErrors {
		return fmt.Errorf("formatting failed for one or more files")
	}
	return nil
}

// collectPaths expands args into a flat list of .dai file paths, walking
// any directories when -r is set.
func collectPaths(args []string) ([]string, error) {
	var paths []string
	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, daierrors.NotFoundf("path %q", path)
			}
			return nil, daierrors.Annotatef(err, "stat %s", path)
		}
		if !info.IsDir() {
			paths = append(paths, path)
			continue
		}
		if !fmtRecursive {
			return nil, fmt.Errorf("%s is a directory (use -r to process recursively)", path)
		}
		err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && strings.HasSuffix(p, ".dai") {
				paths = append(paths, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func formatStdin() error {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	formatted, err := formatSource(string(src), "<stdin>")
	if err != nil {
		return err
	}
	fmt.Print(formatted)
	return nil
}

func formatFile(filename string) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return daierrors.NotFoundf("script %q", filename)
		}
		return daierrors.Annotatef(err, "reading %s", filename)
	}
	original := string(src)

	formatted, err := formatSource(original, filename)
	if err != nil {
		return err
	}
	changed := original != formatted

	switch {
	case fmtList:
		if changed {
			fmt.Println(filename)
		}
	case fmtDiff:
		if changed {
			fmt.Printf("--- %s (original)\n", filename)
			fmt.Printf("+++ %s (formatted)\n", filename)
			printDiff(original, formatted)
		}
	case fmtWrite:
		if changed {
			if err := os.WriteFile(filename, []byte(formatted), 0o644); err != nil {
				return daierrors.Annotatef(err, "writing %s", filename)
			}
			if verboseCount > 0 {
				fmt.Printf("Formatted %s\n", filename)
			}
		}
	default:
		fmt.Print(formatted)
	}
	return nil
}

// formatSource tokenizes, parses, and reformats source, tagging any
// diagnostic with filename.
func formatSource(source, filename string) (string, error) {
	tokens, lexErr := lexer.Tokenize(source)
	if lexErr != nil {
		return "", fmt.Errorf("%s", lexErr.WithFilename(filename).Error())
	}
	prog, parseErr := parser.Parse(tokens, filename)
	if parseErr != nil {
		return "", fmt.Errorf("%s", parseErr.Error())
	}
	return printer.Format(prog, tokens, cfg), nil
}

// printDiff renders a human-readable diff of original vs. formatted using
// the classic diff-match-patch algorithm.
func printDiff(original, formatted string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(original, formatted, false)
	fmt.Println(dmp.DiffPrettyText(diffs))
}
