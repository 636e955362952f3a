package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/intervid/intervid-backend/internal/clients/youtube"
	"github.com/intervid/intervid-backend/internal/pkg/logger"
	"github.com/intervid/intervid-backend/internal/types"
)

const DefaultDir = "saved_notebooks"

// NotebookStore keeps one pretty-printed JSON file per notebook under a
// single directory. Writes sanitize the notebook name; list, load and
// delete use the caller-supplied name as-is, matching the names Save and
// List hand back. There is no locking: concurrent writers to the same
// sanitized name race, last writer wins.
type NotebookStore struct {
	log *logger.Logger
	dir string
}

func NewNotebookStore(baseLog *logger.Logger, dir string) *NotebookStore {
	if strings.TrimSpace(dir) == "" {
		dir = DefaultDir
	}
	return &NotebookStore{
		log: baseLog.With("store", "NotebookStore"),
		dir: dir,
	}
}

// SanitizeName keeps only letters, digits, spaces, hyphens and underscores,
// then trims surrounding whitespace. Distinct raw names may collapse to the
// same sanitized name and silently overwrite each other.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func (ns *NotebookStore) ensureDir() error {
	return os.MkdirAll(ns.dir, 0o755)
}

// Save writes data as indented JSON under the sanitized name, overwriting
// any existing file, and returns the filename used (with .json extension).
func (ns *NotebookStore) Save(name string, data map[string]any) (string, error) {
	if err := ns.ensureDir(); err != nil {
		return "", err
	}
	filename := SanitizeName(name) + ".json"

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode notebook: %w", err)
	}
	if err := os.WriteFile(filepath.Join(ns.dir, filename), raw, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// List returns a summary per stored notebook in sorted filename order.
// Files that cannot be parsed are skipped with a warning.
func (ns *NotebookStore) List() ([]types.NotebookSummary, error) {
	if err := ns.ensureDir(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(ns.dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	notebooks := make([]types.NotebookSummary, 0, len(names))
	for _, filename := range names {
		raw, err := os.ReadFile(filepath.Join(ns.dir, filename))
		if err != nil {
			ns.log.Warn("Skipping unreadable notebook", "filename", filename, "error", err)
			continue
		}
		var doc map[string]any
		if err := json.Unmarshal(raw, &doc); err != nil {
			ns.log.Warn("Skipping notebook with invalid JSON", "filename", filename, "error", err)
			continue
		}

		videoID, _ := doc["video_id"].(string)
		videoTitle, _ := doc["video_title"].(string)
		if videoTitle == "" {
			videoTitle = "Untitled Video"
		}

		notebooks = append(notebooks, types.NotebookSummary{
			Filename:   strings.TrimSuffix(filename, ".json"),
			VideoTitle: videoTitle,
			VideoID:    videoID,
			Thumbnail:  youtube.ThumbnailURL(videoID),
		})
	}
	return notebooks, nil
}

// Load reads the notebook stored under name verbatim. A missing file is
// reported as (nil, nil); a present but unreadable document is an error.
func (ns *NotebookStore) Load(name string) (json.RawMessage, error) {
	if err := ns.ensureDir(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(filepath.Join(ns.dir, name+".json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("notebook %q contains invalid JSON", name)
	}
	return raw, nil
}

// Delete removes the notebook stored under name and reports whether a file
// was actually removed.
func (ns *NotebookStore) Delete(name string) (bool, error) {
	if err := ns.ensureDir(); err != nil {
		return false, err
	}
	err := os.Remove(filepath.Join(ns.dir, name+".json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
