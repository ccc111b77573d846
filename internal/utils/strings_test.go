package utils

import "testing"

func TestIsOnlyNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2024", true},
		{"0", true},
		{"v2", false},
		{"2.0", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsOnlyNumbers(tt.in); got != tt.want {
			t.Errorf("IsOnlyNumbers(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Media Streaming", "media-streaming"},
		{"  Photo & Video Galleries  ", "photo-video-galleries"},
		{"C#", "c"},
		{"already-slugged", "already-slugged"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512.0 B"},
		{2048, "2.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
