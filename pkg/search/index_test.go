package search

import (
	"testing"

	"github.com/ashfoss/ashgen/pkg/catalog"
)

func intp(n int) *int { return &n }

func testIndex() *Index {
	return FromApps([]*catalog.Application{
		{ID: "jellyfin", Name: "Jellyfin", Stars: intp(30000)},
		{ID: "jellyseerr", Name: "Jellyseerr", Stars: intp(6000)},
		{ID: "jenkins", Name: "Jenkins", Stars: intp(23000)},
		{ID: "gitea", Name: "Gitea", Stars: intp(40000)},
		{ID: "unstarred", Name: "Jelly"},
	})
}

func TestCompletePrefix(t *testing.T) {
	ix := testIndex()

	got := ix.Complete("jelly", 0)
	want := []string{"jellyfin", "jellyseerr", "unstarred"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d: %v", len(got), len(want), got)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestCompleteCaseInsensitive(t *testing.T) {
	ix := testIndex()
	if got := ix.Complete("JELLY", 0); len(got) != 3 {
		t.Errorf("uppercase prefix matched %d, want 3", len(got))
	}
}

func TestCompleteLimit(t *testing.T) {
	ix := testIndex()
	got := ix.Complete("j", 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "jellyfin" || got[1].ID != "jenkins" {
		t.Errorf("top two = %s, %s; want jellyfin, jenkins", got[0].ID, got[1].ID)
	}
}

func TestCompleteEmptyPrefixMatchesAll(t *testing.T) {
	ix := testIndex()
	if got := ix.Complete("", 0); len(got) != ix.Len() {
		t.Errorf("empty prefix matched %d, want all %d", len(got), ix.Len())
	}
}

func TestCompleteNoMatch(t *testing.T) {
	ix := testIndex()
	if got := ix.Complete("zzz", 0); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}

func TestAddSharedName(t *testing.T) {
	ix := NewIndex()
	ix.Add(&catalog.Application{ID: "one", Name: "Dupe", Stars: intp(10)})
	ix.Add(&catalog.Application{ID: "two", Name: "dupe", Stars: intp(20)})

	if ix.Len() != 2 {
		t.Fatalf("Len = %d, want 2", ix.Len())
	}
	got := ix.Complete("dupe", 0)
	if len(got) != 2 || got[0].ID != "two" {
		t.Errorf("got %v, want both entries with two ranked first", got)
	}
}

func TestAddIgnoresEmpty(t *testing.T) {
	ix := NewIndex()
	ix.Add(nil)
	ix.Add(&catalog.Application{ID: "x"})
	if ix.Len() != 0 {
		t.Errorf("Len = %d, want 0", ix.Len())
	}
}
