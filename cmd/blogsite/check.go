package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	blogsite "github.com/alnah/go-blogsite"
)

// runCheckCmd runs the check command: a build without any writes.
func runCheckCmd(args []string, env *Environment) int {
	s, code := setupSite("check", args, printCheckUsage, env)
	if s == nil {
		return code
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	col, err := s.gen.Collect(ctx)
	if err != nil {
		reportError(env.Stderr, err, s.cfg)
		return exitCodeFor(err)
	}

	printCollection(env.Stdout, col)
	return ExitSuccess
}

// printCollection writes the index order followed by skipped posts.
func printCollection(w io.Writer, col *blogsite.Collection) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range col.Posts {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Time, p.ID, p.Title)
	}
	_ = tw.Flush()

	for _, id := range col.Skipped {
		fmt.Fprintf(w, "skipped: %s\n", id)
	}
	fmt.Fprintf(w, "%d published, %d skipped\n", len(col.Posts), len(col.Skipped))
}
