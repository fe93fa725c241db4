// Package pipeline implements the Markdown-to-HTML content transform for posts.
//
// The transform runs in three stages:
//   - Markdown preprocessing (BOM removal, line ending normalization)
//   - Markdown to HTML fragment conversion via Goldmark
//   - Class annotation: literal substring rewrite of bare opening tags
//     (e.g. <h1> and <p>) into variants carrying presentation classes
//
// Page layout and file output are handled by the root blogsite package.
// This package only turns one post body into the HTML stored in Post.Content.
package pipeline
