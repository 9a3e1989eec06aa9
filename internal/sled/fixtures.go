package sled

import (
	"encoding/json"
	"fmt"
	"os"

	"gitlab.com/aockit-2025.net/internal/domain"
)

// LoadTestCases reads the fixtures declared for (year, day, part) from the
// day's JSON fixture file: an object keyed by part number, each holding an
// ordered list of test cases. A missing file or an absent part key means
// "nothing declared" and yields an empty list, not an error.
func (t TestSled) LoadTestCases(year, day int, part domain.Part) ([]domain.TestCase, error) {
	path := t.DayFile(year, day)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read fixtures %s: %w", path, err)
	}

	var byPart map[string][]domain.TestCase
	if err := json.Unmarshal(raw, &byPart); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures %s: %w", path, err)
	}

	cases := byPart[part.String()]
	for i := range cases {
		if cases[i].Name == "" {
			cases[i].Name = fmt.Sprintf("test_%d", i+1)
		}
	}
	return cases, nil
}
