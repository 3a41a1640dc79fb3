package cmd

import (
	"fmt"
	"os"

	"github.com/yetsing/dai/internal/config"
	"github.com/yetsing/dai/internal/daierrors"
	"github.com/yetsing/dai/internal/dailog"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verboseCount int
	configPath   string
	cfg          config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dai",
	Short: "Dai language toolchain",
	Long: `dai is the command-line front end for the Dai scripting language
front end: it tokenizes, parses, formats, and inspects the AST of Dai
source, without touching the bytecode compiler or VM.`,
	Version:           Version,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Main runs the root command and returns a process exit code, the shape
// rogpeppe/go-internal/testscript.RunMain wants for registering dai as an
// in-process "binary" the .txtar scripts under testdata/script can invoke.
func Main() int {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if verboseCount > 0 {
			if stack := daierrors.Stack(err); stack != "" {
				fmt.Fprintln(os.Stderr, stack)
			}
		}
		return 1
	}
	return 0
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().CountVarP(&verboseCount, "verbose", "v", "increase logging verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a .dai.yaml config file (default: ./.dai.yaml if present)")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadDefaultFile()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	return dailog.SetVerbosity(verboseCount)
}
