package main

import (
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// setMaxProcs matches GOMAXPROCS to the container CPU quota.
// Its report is only logged with --verbose.
func setMaxProcs(logger *slog.Logger, verbose bool) {
	logf := func(string, ...any) {}
	if verbose {
		logf = func(format string, args ...any) {
			logger.Debug(fmt.Sprintf(format, args...))
		}
	}
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(logf))
}

// runMain dispatches to a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "build":
		return runBuildCmd(rest, env)
	case "check":
		return runCheckCmd(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "blogsite %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// isCommand reports whether name is a known command.
func isCommand(name string) bool {
	switch name {
	case "build", "check", "version", "help":
		return true
	}
	return false
}
