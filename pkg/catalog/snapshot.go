package catalog

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ashfoss/ashgen/internal/utils"
	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// SnapshotFile is the processed-catalog cache filename under the cache dir.
const SnapshotFile = "catalog.bin"

// snapshot is the on-disk form of a processed catalog: an xxhash64 of the
// msgpack payload in the first 8 bytes, payload after. Only catalog data is
// persisted here, never similarity scores.
type snapshot struct {
	Apps      []*Application      `msgpack:"apps"`
	Tags      map[string]Tag      `msgpack:"tags"`
	Platforms map[string]Platform `msgpack:"platforms"`
	Licenses  Registry            `msgpack:"licenses"`
	SavedAt   time.Time           `msgpack:"saved_at"`
}

// SaveSnapshot writes the catalog to path, creating parent directories.
func SaveSnapshot(path string, cat *Catalog) error {
	payload, err := msgpack.Marshal(snapshot{
		Apps:      cat.Apps,
		Tags:      cat.Tags,
		Platforms: cat.Platforms,
		Licenses:  cat.Licenses,
		SavedAt:   time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	buf := make([]byte, 8+len(payload))
	binary.BigEndian.PutUint64(buf[:8], xxhash.Sum64(payload))
	copy(buf[8:], payload)

	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	log.Debugf("saved snapshot %s (%s)", path, utils.FormatBytes(int64(len(buf))))
	return nil
}

// LoadSnapshot reads a catalog back from path, verifying the checksum. A
// corrupt or truncated file is an error; callers fall back to loading the
// raw dataset.
func LoadSnapshot(path string) (*Catalog, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(buf) < 8 {
		return nil, fmt.Errorf("snapshot %s is truncated", path)
	}
	payload := buf[8:]
	if sum := binary.BigEndian.Uint64(buf[:8]); sum != xxhash.Sum64(payload) {
		return nil, fmt.Errorf("snapshot %s checksum mismatch", path)
	}

	var snap snapshot
	if err := msgpack.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", path, err)
	}
	log.Debugf("loaded snapshot %s (saved %s)", path, snap.SavedAt.Format(time.RFC3339))
	return &Catalog{
		Apps:      snap.Apps,
		Tags:      snap.Tags,
		Platforms: snap.Platforms,
		Licenses:  snap.Licenses,
	}, nil
}
