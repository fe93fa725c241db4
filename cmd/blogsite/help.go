package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogsite <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Render every published post and the index page")
	fmt.Fprintln(w, "  check      Validate posts and print the index order without writing")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'blogsite help <command>' for details on a specific command.")
}

// printSiteFlags prints the flags shared by build and check.
func printSiteFlags(w io.Writer) {
	fmt.Fprintln(w, "Paths:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default: blogsite)")
	fmt.Fprintln(w, "      --posts <dir>         Posts directory (default: data/posts)")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: public)")
	fmt.Fprintln(w, "      --layouts <dir>       Custom layouts directory (default: templates)")
	fmt.Fprintln(w, "      --static <dir>        Static assets directory (default: static)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-post details")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  BLOGSITE_CONFIG, BLOGSITE_TITLE, BLOGSITE_BASE_URL, BLOGSITE_POSTS_DIR,")
	fmt.Fprintln(w, "  BLOGSITE_LAYOUTS_DIR, BLOGSITE_STATIC_DIR, BLOGSITE_OUTPUT_DIR, BLOGSITE_CLEAN")
	fmt.Fprintln(w, "  Flags override environment, which overrides the config file.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogsite build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render one page per published post plus the index page, then copy")
	fmt.Fprintln(w, "static assets. Any broken post aborts the build before pages are written.")
	fmt.Fprintln(w)
	printSiteFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build:")
	fmt.Fprintln(w, "      --clean               Remove the output directory first")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogsite check [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assemble, filter and sort every post without writing any file.")
	fmt.Fprintln(w, "Prints the index order, one post per line, newest first.")
	fmt.Fprintln(w)
	printSiteFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if !isCommand(args[0]) {
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: blogsite version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: blogsite help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	}
	return ExitSuccess
}
