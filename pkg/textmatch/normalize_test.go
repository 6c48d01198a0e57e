package textmatch

import "testing"

func TestCleanName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Frank Herbert", "frank herbert"},
		{"Ursula K. Le Guin", "ursula k le guin"},
		{"Gabriel García Márquez", "gabriel garcia marquez"},
		{"O'Brien", "obrien"},
		{"Simon & Schuster", "simon and schuster"},
		{"Anne-Marie", "anne marie"},
		{"  Extra   Spaces  ", "extra spaces"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := CleanName(tt.input)
			if got != tt.want {
				t.Errorf("CleanName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Frank Herbert", "frank-herbert"},
		{"Ursula K. Le Guin", "ursula-k-le-guin"},
		{"José Saramago", "jose-saramago"},
		{"  padded  ", "padded"},
		{"Already-Hyphenated", "already-hyphenated"},
		{"trailing punctuation!", "trailing-punctuation"},
		{"", ""},
		{"...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Slugify(tt.input)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
