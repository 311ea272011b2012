// Package catalog loads the list of selectable emotions shown by the UI.
// The list is read once at startup and is never stored in the database.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// DefaultPath is the catalogue location relative to the working directory
const DefaultPath = "emotions.json"

var (
	// ErrNotFound means the catalogue file doesn't exist
	ErrNotFound = errors.New("emotions file not found")
	// ErrMalformed means the file exists but isn't {"emotions": [string, ...]}
	ErrMalformed = errors.New("emotions file is malformed")
)

type catalogFile struct {
	Emotions *[]string `json:"emotions"`
}

// Load reads the emotion names from path. Blank names are dropped and the rest
// keep file order. On any error the returned slice is empty, not nil, so callers
// can warn and carry on with no selectable emotions.
func Load(path string) ([]string, error) {
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return []string{}, fmt.Errorf("failed to read emotions file: %w", err)
	}

	return Parse(data)
}

// Parse decodes catalogue JSON
func Parse(data []byte) ([]string, error) {
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return []string{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if file.Emotions == nil {
		return []string{}, fmt.Errorf("%w: missing \"emotions\" list", ErrMalformed)
	}

	emotions := make([]string, 0, len(*file.Emotions))
	for _, name := range *file.Emotions {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		emotions = append(emotions, name)
	}
	return emotions, nil
}
