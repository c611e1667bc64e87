package memory

import (
	"encoding/json"
	"os"

	"github.com/staffdeck/directory-service/internal/domain"
)

// LoadFixtures preloads the store with user records from a JSON file of raw
// attribute objects. Meant for the test environment; a missing or
// unreadable file loads nothing. Records without a string id are skipped.
func (s *UserStore) LoadFixtures(path string) int {
	if path == "" {
		return 0
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}

	var records []map[string]any
	if err := json.Unmarshal(data, &records); err != nil {
		return 0
	}

	loaded := 0
	for _, attrs := range records {
		id, ok := attrs[domain.AttrID].(string)
		if !ok || id == "" {
			continue
		}
		s.put(id, attrs)
		loaded++
	}
	return loaded
}
