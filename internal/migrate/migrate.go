// Package migrate converts legacy JSON bookmark records to the
// current YAML format.
package migrate

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/svanberg/goto/internal/model"
	"github.com/svanberg/goto/internal/storage"
)

// legacyRecord is the deprecated JSON on-disk format.
type legacyRecord struct {
	URL   string   `json:"url"`
	Title *string  `json:"title"`
	Tags  []string `json:"tags"`
}

// Run walks the store's data directory and re-saves every legacy .json
// record through the store, then removes the JSON file. Saving goes
// through the store's merge semantics, so re-running after a partial
// migration is a no-op for already converted records. Returns the
// number of migrated records.
func Run(store *storage.Store, log *slog.Logger) (int, error) {
	if log == nil {
		log = slog.Default()
	}

	migrated := 0
	err := filepath.WalkDir(store.Dir(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == store.Dir() && os.IsNotExist(err) {
				return filepath.SkipAll
			}
			return fmt.Errorf("walk %s: %w", path, err)
		}
		if strings.HasPrefix(d.Name(), ".") && path != store.Dir() {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		if err := record(store, path); err != nil {
			log.Warn("skipping legacy record", "path", path, "error", err)
			return nil
		}
		migrated++
		return nil
	})
	if err != nil {
		return migrated, err
	}

	return migrated, nil
}

func record(store *storage.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var legacy legacyRecord
	if err := json.Unmarshal(data, &legacy); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	title := ""
	if legacy.Title != nil {
		title = *legacy.Title
	}
	b, err := model.NewBookmark(legacy.URL, title, legacy.Tags)
	if err != nil {
		return fmt.Errorf("legacy record %s: %w", path, err)
	}

	if _, err := store.Save(b); err != nil {
		return err
	}
	return os.Remove(path)
}
