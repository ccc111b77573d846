package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", SnapshotFile)

	cat := &Catalog{
		Apps: []*Application{
			{
				ID:            "jellyfin",
				Name:          "Jellyfin",
				Description:   "Media server",
				Categories:    []string{"Media Streaming"},
				Stars:         starp(30000),
				ForkOf:        "Emby",
				AlternativeTo: []string{"Plex"},
			},
		},
		Tags: map[string]Tag{
			"media-streaming": {ID: "media-streaming", Name: "Media Streaming"},
		},
		Platforms: map[string]Platform{
			"go": {ID: "go", Name: "Go"},
		},
		Licenses: Registry{
			"MIT": {ID: "MIT", Name: "MIT License", Free: true},
		},
	}

	if err := SaveSnapshot(path, cat); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	got, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	if len(got.Apps) != 1 {
		t.Fatalf("apps = %d, want 1", len(got.Apps))
	}
	app := got.Apps[0]
	if app.ID != "jellyfin" || app.ForkOf != "Emby" {
		t.Errorf("app = %+v, marker fields must survive the round trip", app)
	}
	if app.StarCount() != 30000 {
		t.Errorf("StarCount = %d, want 30000", app.StarCount())
	}
	if got.Tags["media-streaming"].Name != "Media Streaming" {
		t.Errorf("tags = %v", got.Tags)
	}
	if lic := got.Licenses["MIT"]; !lic.Free {
		t.Error("license free flag must survive the round trip")
	}
}

func TestLoadSnapshotCorrupt(t *testing.T) {
	dir := t.TempDir()

	truncated := filepath.Join(dir, "short.bin")
	if err := os.WriteFile(truncated, []byte{1, 2, 3}, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnapshot(truncated); err == nil {
		t.Error("truncated snapshot should fail to load")
	}

	path := filepath.Join(dir, SnapshotFile)
	if err := SaveSnapshot(path, &Catalog{}); err != nil {
		t.Fatal(err)
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	buf[len(buf)-1] ^= 0xff
	if err := os.WriteFile(path, buf, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnapshot(path); err == nil {
		t.Error("checksum mismatch should fail to load")
	}
}

func TestLoadSnapshotMissing(t *testing.T) {
	if _, err := LoadSnapshot(filepath.Join(t.TempDir(), "absent.bin")); err == nil {
		t.Fatal("missing snapshot should be an error")
	}
}
