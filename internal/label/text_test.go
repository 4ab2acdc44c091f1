package label

import "testing"

func TestStripNonAlphanumeric(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{
			name:  "mixed punctuation and symbols",
			parts: []string{"ÅA. B. Testing 12+}[.@~_", " 3%"},
			want:  "ÅABTesting123",
		},
		{
			name:  "plain word unchanged",
			parts: []string{"Einstein"},
			want:  "Einstein",
		},
		{
			name:  "joins without separator",
			parts: []string{"A.", "Einstein"},
			want:  "AEinstein",
		},
		{
			name:  "non-ASCII letters kept",
			parts: []string{"Müller-Lüdenscheidt"},
			want:  "MüllerLüdenscheidt",
		},
		{
			name:  "digits kept",
			parts: []string{"4th Workshop"},
			want:  "4thWorkshop",
		},
		{
			name:  "case preserved",
			parts: []string{"McBride"},
			want:  "McBride",
		},
		{
			name:  "only symbols",
			parts: []string{"+[.@~_%{}"},
			want:  "",
		},
		{
			name:  "empty parts",
			parts: []string{"", ""},
			want:  "",
		},
		{
			name:  "no parts",
			parts: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripNonAlphanumeric(tt.parts)
			if got != tt.want {
				t.Errorf("StripNonAlphanumeric(%q) = %q, want %q", tt.parts, got, tt.want)
			}
		})
	}
}

func TestStripNonAlphanumeric_Idempotent(t *testing.T) {
	parts := []string{"ÅA. B. Testing 12+}[.@~_", " 3%"}
	once := StripNonAlphanumeric(parts)
	twice := StripNonAlphanumeric([]string{once})
	if twice != once {
		t.Errorf("StripNonAlphanumeric not idempotent: %q then %q", once, twice)
	}
}

func TestNormalizeBraces(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"abc", "abc"},
		{`\{abc`, "&#123;abc"},
		{`abc\}`, "abc&#125;"},
		{`\{abc\}`, "&#123;abc&#125;"},
		{"{abc", "abc"},
		{"abc}", "abc"},
		{"{abc}", "abc"},
		{`\{{abc}\}`, "&#123;abc&#125;"},
		{"", ""},
		{"{The {ACM} Digital Library}", "The ACM Digital Library"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeBraces(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeBraces(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeBraces_IdempotentOnNormalized(t *testing.T) {
	inputs := []string{`\{{abc}\}`, "{abc}", "plain"}
	for _, input := range inputs {
		once := NormalizeBraces(input)
		twice := NormalizeBraces(once)
		if twice != once {
			t.Errorf("NormalizeBraces not idempotent on %q: %q then %q", input, once, twice)
		}
	}
}
