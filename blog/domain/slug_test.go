package domain

import "testing"

func TestEncodeSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "simple title",
			title: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "uppercase collapses",
			title: "HELLO",
			want:  "hello",
		},
		{
			name:  "accents and punctuation",
			title: "¡Hola,   Ñandú!",
			want:  "hola-nandu",
		},
		{
			name:  "all accent groups",
			title: "áäâà éëêè íïîì óöôò úüûù ñ",
			want:  "aaaa-eeee-iiii-oooo-uuuu-n",
		},
		{
			name:  "digits kept",
			title: "Top 10 Go Tips",
			want:  "top-10-go-tips",
		},
		{
			name:  "existing hyphens collapse",
			title: "go -- the - language",
			want:  "go-the-language",
		},
		{
			name:  "repeated whitespace",
			title: "a\t b\n  c",
			want:  "a-b-c",
		},
		{
			name:  "non-breaking space",
			title: "Hola Mundo",
			want:  "hola-mundo",
		},
		{
			name:  "unicode space separators",
			title: "uno dos　tres",
			want:  "uno-dos-tres",
		},
		{
			name:  "line and paragraph separators",
			title: "uno dos tres",
			want:  "uno-dos-tres",
		},
		{
			name:  "vertical tab",
			title: "uno\vdos",
			want:  "uno-dos",
		},
		{
			name:  "symbols stripped before spacing",
			title: "C++ & Go: A Comparison",
			want:  "c-go-a-comparison",
		},
		{
			name:  "empty title",
			title: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			title: "!!!",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeSlug(tt.title); got != tt.want {
				t.Errorf("EncodeSlug(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestEncodeSlugDeterministic(t *testing.T) {
	title := "Árboles y Señales, edición 2024"
	first := EncodeSlug(title)
	for i := 0; i < 10; i++ {
		if got := EncodeSlug(title); got != first {
			t.Fatalf("EncodeSlug not deterministic: %q != %q", got, first)
		}
	}
}
