package blogsite

import (
	"errors"
	"testing"

	"github.com/alnah/go-blogsite/internal/codec"
)

// ---------------------------------------------------------------------------
// TestTOMLCodec_Decode - required keys, types, optional publish
// ---------------------------------------------------------------------------

func TestTOMLCodec_Decode(t *testing.T) {
	t.Parallel()

	full := `title = "Hello"
url = "hello-world"
time = "2021-06-15"
image = "/img/a.jpg"
image_contribution = "Photo by A"
intro = "Short intro"
`

	t.Run("all fields", func(t *testing.T) {
		t.Parallel()

		post, err := (&TOMLCodec{}).Decode("hello", []byte(full))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := Post{
			ID:                "hello",
			Title:             "Hello",
			URL:               "hello-world",
			Time:              "2021-06-15",
			Image:             "/img/a.jpg",
			ImageContribution: "Photo by A",
			Intro:             "Short intro",
		}
		if *post != want {
			t.Errorf("Decode() = %+v, want %+v", *post, want)
		}
		if post.Content != nil {
			t.Error("Content should be unset after decode")
		}
		if post.Publish != nil {
			t.Error("Publish should be nil when absent")
		}
	})

	t.Run("publish false", func(t *testing.T) {
		t.Parallel()

		post, err := (&TOMLCodec{}).Decode("p", []byte(full+"publish = false\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if post.Publish == nil || *post.Publish {
			t.Errorf("Publish = %v, want false", post.Publish)
		}
	})

	t.Run("unknown keys ignored", func(t *testing.T) {
		t.Parallel()

		_, err := (&TOMLCodec{}).Decode("p", []byte(full+"tags = [\"go\"]\n"))
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	errTests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"missing title", `url = "u"
time = "2021-06-15"
image = ""
image_contribution = ""
intro = ""
`, codec.ErrMissingKey},
		{"malformed", "title = \n", nil},
		{"publish wrong type", full + "publish = \"no\"\n", nil},
		{"time wrong type", `title = "T"
url = "u"
time = 2021-06-15
image = ""
image_contribution = ""
intro = ""
`, nil},
		{"empty", "", codec.ErrNilData},
	}

	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := (&TOMLCodec{}).Decode("p", []byte(tt.input))
			if !errors.Is(err, ErrMetadataDecode) {
				t.Fatalf("error = %v, want ErrMetadataDecode", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
