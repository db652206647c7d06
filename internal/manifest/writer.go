package manifest

import (
	"encoding/json"
	"fmt"
	"image"
	"os"
	"time"
)

// New creates an empty index with defaults.
func New() *Index {
	return &Index{
		Version:     SupportedIndexVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// AddCell records that frame idx occupies rect.
func (x *Index) AddCell(idx int, rect image.Rectangle) {
	x.Cells = append(x.Cells, Cell{
		Index: idx,
		X:     rect.Min.X,
		Y:     rect.Min.Y,
		W:     rect.Dx(),
		H:     rect.Dy(),
	})
}

// PathFor returns the index file path for a sheet file.
func PathFor(sheetPath string) string {
	return sheetPath + ".json"
}

// WriteJSON serializes the index to a JSON file.
func WriteJSON(x *Index, path string) error {
	data, err := json.MarshalIndent(x, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON loads an index file.
func ReadJSON(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	var x Index
	if err := json.Unmarshal(data, &x); err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}
	return &x, nil
}
