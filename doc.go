// Package blogsite builds a static blog from a directory of posts.
//
// # Quick Start
//
// Each post is a pair of files sharing a base name: a TOML metadata file and
// a Markdown body.
//
//	data/posts/hello.toml
//	data/posts/hello.md
//
// Create a generator and build:
//
//	gen, err := blogsite.NewGenerator(
//	    blogsite.WithPostsDir("data/posts"),
//	    blogsite.WithOutputDir("public"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := gen.Build(ctx)
//
// # Build Pipeline
//
//  1. Discovery: every metadata file in the posts directory names a post
//  2. Assembly: metadata decode, body read, Markdown to HTML, class annotation
//  3. Filtering: posts with publish = false are skipped
//  4. Sorting: newest first by the YYYY-MM-DD time field, ties in discovery order
//  5. Rendering: one page per post plus an index page listing all of them
//  6. Static assets are copied into the output directory
//
// Every post is assembled and dated before the first page is written, so a
// broken post produces no output at all.
//
// # Metadata
//
// Required keys are title, url, time, image, image_contribution and intro.
// The optional publish key hides a post when false.
//
//	title = "Hello"
//	url = "hello"
//	time = "2021-06-15"
//	image = "/img/hello.jpg"
//	image_contribution = "Photo by someone"
//	intro = "First post."
//
// # Layouts
//
// Pages are rendered with html/template. Embedded post and index layouts are
// used unless WithLayoutsDir points at a directory overriding them. Layouts
// can call site, date, link and asset.
//
// # Error Handling
//
// Failures tied to one post are *PostError values. Use errors.Is with the
// sentinel errors:
//
//	_, err := gen.Build(ctx)
//	if errors.Is(err, blogsite.ErrDateParse) {
//	    // a post has a malformed time field
//	}
package blogsite
