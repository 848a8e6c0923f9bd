// Command py launches the right Python interpreter for the current
// context: an activated virtual environment, a script's shebang line, an
// environment-variable override, or the newest interpreter on PATH.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pylaunch/pylaunch/pkg/exec"
	"github.com/pylaunch/pylaunch/pkg/finder"
	"github.com/pylaunch/pylaunch/pkg/launcher"
	"github.com/pylaunch/pylaunch/pkg/output"
)

func main() {
	configureLogging()

	if err := rootCmd.Execute(); err != nil {
		output.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

// The launcher's argument grammar (version flags like -3.12, verbatim
// passthrough to the interpreter) cannot go through pflag, so flag parsing
// is disabled and the dispatcher receives the arguments raw.
var rootCmd = &cobra.Command{
	Use:                "py",
	Short:              "Python Launcher for Unix",
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               run,
}

var executor exec.Executor = &exec.RealExecutor{}

func run(cmd *cobra.Command, args []string) error {
	argv := append([]string{os.Args[0]}, args...)

	action, err := launcher.FromArgs(argv, finder.PathFinder{})
	if err != nil {
		return err
	}

	switch a := action.(type) {
	case launcher.Help:
		fmt.Fprint(cmd.OutOrStdout(), a.Message)
		// The interpreter appends its own help output.
		return executor.Exec(a.Executable, []string{"-h"})
	case launcher.List:
		fmt.Fprint(cmd.OutOrStdout(), a.Output)
		return nil
	case launcher.VersionInfo:
		fmt.Fprintf(cmd.OutOrStdout(), "py %s\n", a.Version)
		return nil
	case launcher.Execute:
		log.Debug("launching", "executable", a.Executable, "args", a.Args)
		return executor.Exec(a.Executable, a.Args)
	}
	return nil
}

// configureLogging keeps the launcher silent unless PYLAUNCH_DEBUG is set.
func configureLogging() {
	log.SetOutput(os.Stderr)
	if os.Getenv("PYLAUNCH_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(false)
	} else {
		log.SetLevel(log.ErrorLevel)
	}
}
