package rates

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads the named rates file from the data folder, parses the JSON array
// literal it contains, and returns the validated tensor. The file must hold a
// 3D numeric array of shape (periods, currencies, currencies).
func Load(folder, filename string) (*Tensor, error) {
	path := filepath.Join(folder, filename)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rates file %s: %w", path, err)
	}

	var values [][][]float64
	if err := json.Unmarshal(content, &values); err != nil {
		return nil, fmt.Errorf("parsing rates file %s: %w", path, err)
	}

	tensor, err := New(values)
	if err != nil {
		return nil, fmt.Errorf("validating rates file %s: %w", path, err)
	}
	return tensor, nil
}
