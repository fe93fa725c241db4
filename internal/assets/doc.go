// Package assets provides the HTML page layouts used to render a site.
//
// # Loader Architecture
//
//	LayoutLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in layouts compiled into the binary
//	    ├── FilesystemLoader  - layouts from a directory on disk
//	    └── LayoutResolver    - custom-first with embedded fallback
//
// A site only needs to provide the layouts it wants to change: any layout
// missing from the custom directory is served from the embedded defaults.
//
// # Directory Structure
//
//	{basePath}/
//	├── post.html    # one page per published post
//	└── index.html   # listing of all published posts
//
// # Security
//
// Layout names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
