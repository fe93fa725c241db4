package blogsite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-blogsite"
)

// Example builds a one-post site into a temporary directory.
func Example() {
	dir, err := os.MkdirTemp("", "blogsite-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	posts := filepath.Join(dir, "posts")
	_ = os.MkdirAll(posts, 0o750)
	_ = os.WriteFile(filepath.Join(posts, "hello.toml"), []byte(`title = "Hello"
url = "hello"
time = "2021-06-15"
image = ""
image_contribution = ""
intro = "First post."
`), 0o600)
	_ = os.WriteFile(filepath.Join(posts, "hello.md"), []byte("# Hello\n\nWorld"), 0o600)

	gen, err := blogsite.NewGenerator(
		blogsite.WithPostsDir(posts),
		blogsite.WithOutputDir(filepath.Join(dir, "public")),
		blogsite.WithStaticDir(""),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := gen.Build(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result.Pages)
	// Output: [hello index]
}

// ExampleNormalizeDate shows that only bare calendar dates are accepted.
func ExampleNormalizeDate() {
	t, err := blogsite.NormalizeDate("2021-06-15")
	fmt.Println(t.UTC(), err == nil)

	_, err = blogsite.NormalizeDate("2017-13-31")
	fmt.Println(err != nil)
	// Output:
	// 2021-06-15 00:00:00 +0000 UTC true
	// true
}
