// Command dai is the CLI front end for the lexer, parser, and formatter:
// tokenize, parse/show-ast, and fmt subcommands over a Dai source file.
package main

import (
	"os"

	"github.com/yetsing/dai/cmd/dai/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
