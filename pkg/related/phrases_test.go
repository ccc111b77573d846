package related

import "testing"

func TestExtractPhrases(t *testing.T) {
	t.Run("empty description", func(t *testing.T) {
		phrases := ExtractPhrases("")
		if phrases == nil {
			t.Fatal("want non-nil set for empty description")
		}
		if len(phrases) != 0 {
			t.Errorf("want empty set, got %v", phrases)
		}
	})

	t.Run("windows of one to four words", func(t *testing.T) {
		phrases := ExtractPhrases("media streaming server")
		for _, want := range []string{
			"media",
			"streaming",
			"server",
			"media streaming",
			"streaming server",
			"media streaming server",
		} {
			if !phrases[want] {
				t.Errorf("missing phrase %q in %v", want, phrases)
			}
		}
	})

	t.Run("short descriptions produce no long windows", func(t *testing.T) {
		phrases := ExtractPhrases("photo gallery")
		if phrases["photo gallery / extra"] {
			t.Error("unexpected phrase")
		}
		if !phrases["photo gallery"] {
			t.Errorf("want 2-gram, got %v", phrases)
		}
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		phrases := ExtractPhrases("gallery gallery gallery")
		if !phrases["gallery"] {
			t.Fatalf("want %q present", "gallery")
		}
	})

	t.Run("accented words keep their letters", func(t *testing.T) {
		phrases := ExtractPhrases("Café management for cafés")
		for _, want := range []string{"café", "cafés", "café management"} {
			if !phrases[want] {
				t.Errorf("missing phrase %q in %v", want, phrases)
			}
		}
		if phrases["caf"] || phrases["caf s"] {
			t.Errorf("accented letters were stripped: %v", phrases)
		}
	})
}

// The denylist must drop marketing terms before any weighting happens:
// "open-source" would otherwise carry a compound-token boost.
func TestExtractPhrasesDenylistBeforeWeighting(t *testing.T) {
	phrases := ExtractPhrases("open-source")
	if len(phrases) != 0 {
		t.Errorf("denylisted word survived extraction: %v", phrases)
	}
}

func TestIsSignificantPhraseSingleWords(t *testing.T) {
	// rejected: too short, purely numeric, generic, marketing filler
	tests := []struct {
		phrase string
		want   bool
	}{
		{"data", true},
		{"app", false},
		{"12345", false},
		{"the", false},
		{"best", false},
		{"grafana", true},
	}

	for _, tt := range tests {
		if got := IsSignificantPhrase(tt.phrase, 1); got != tt.want {
			t.Errorf("IsSignificantPhrase(%q, 1) = %v, want %v", tt.phrase, got, tt.want)
		}
	}
}

func TestIsSignificantPhraseMultiWord(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		length int
		want   bool
	}{
		{"mostly generic", "with great power", 3, false},
		{"leading article", "the media server", 3, false},
		{"leading auxiliary", "is really good", 3, false},
		{"leading pronoun", "your media files", 3, false},
		{"leading discourse marker", "also supports streaming", 3, false},
		{"all short words", "ab cd", 2, false},
		{"half generic is kept", "self-hosted media", 2, true},
		{"plain technical phrase", "media streaming", 2, true},
		{"four significant words", "music library metadata manager", 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSignificantPhrase(tt.phrase, tt.length); got != tt.want {
				t.Errorf("IsSignificantPhrase(%q, %d) = %v, want %v", tt.phrase, tt.length, got, tt.want)
			}
		})
	}
}

func TestIsGenericWord(t *testing.T) {
	for _, word := range []string{"the", "using", "powerful", "self-hosted", "lightweight"} {
		if !IsGenericWord(word) {
			t.Errorf("want %q generic", word)
		}
	}
	for _, word := range []string{"media", "kubernetes", "backup"} {
		if IsGenericWord(word) {
			t.Errorf("want %q kept", word)
		}
	}
}
