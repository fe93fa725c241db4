package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadLayout(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name        string
		layout      string
		wantErr     error
		wantContain string
	}{
		{name: "post layout", layout: PostLayout, wantContain: "{{.ContentHTML}}"},
		{name: "index layout", layout: IndexLayout, wantContain: "{{range .}}"},
		{name: "unknown layout", layout: "sidebar-xyz", wantErr: ErrLayoutNotFound},
		{name: "traversal rejected", layout: "../post", wantErr: ErrInvalidLayoutName},
		{name: "extension rejected", layout: "post.html", wantErr: ErrInvalidLayoutName},
		{name: "empty rejected", layout: "", wantErr: ErrInvalidLayoutName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadLayout(tt.layout)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadLayout(%q) error = %v, want %v", tt.layout, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadLayout(%q) error = %v", tt.layout, err)
			}
			if !strings.Contains(got, tt.wantContain) {
				t.Errorf("LoadLayout(%q) missing %q", tt.layout, tt.wantContain)
			}
		})
	}
}
