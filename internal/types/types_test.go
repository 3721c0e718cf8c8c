package types

import "testing"

func TestParseContentType(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		want    ContentType
		wantErr bool
	}{
		{"blog", "blog", ContentTypeBlog, false},
		{"email", "email", ContentTypeEmail, false},
		{"social", "social", ContentTypeSocial, false},
		{"landing page", "landing_page", ContentTypeLandingPage, false},
		{"youtube", "youtube", ContentTypeYouTube, false},
		{"unknown", "podcast", "", true},
		{"empty", "", "", true},
		{"wrong case", "Blog", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseContentType(tt.label)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseContentType(%q) error = %v, wantErr %v", tt.label, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseContentType(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}

func TestContentTypesAllValid(t *testing.T) {
	if len(ContentTypes) != 5 {
		t.Fatalf("ContentTypes has %d entries, want 5", len(ContentTypes))
	}
	for _, ct := range ContentTypes {
		if !ct.Valid() {
			t.Errorf("%q.Valid() = false, want true", ct)
		}
	}
}
