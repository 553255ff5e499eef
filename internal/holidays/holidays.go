// Package holidays loads a holiday table from a JSON file so day cells can
// carry holiday names and rest-day tinting. The file is a flat list of
// entries; there is no network fetch.
package holidays

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const dateLayout = "2006-01-02"

// Entry is one dated record in the holidays file.
type Entry struct {
	// Date in YYYY-MM-DD form.
	Date string `json:"date"`
	// Name of the holiday or observance.
	Name string `json:"name"`
	// Holiday is true for a rest day, false for a compensating workday.
	Holiday bool `json:"holiday"`
}

// Info is what the rendering layer asks about a specific date.
type Info struct {
	Name      string
	IsHoliday bool
}

// Set maps YYYY-MM-DD dates to holiday info.
type Set map[string]Info

// Load reads and indexes a holidays file.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read holidays file: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse holidays JSON: %w", err)
	}
	set := make(Set, len(entries))
	for _, e := range entries {
		if _, err := time.Parse(dateLayout, e.Date); err != nil {
			return nil, fmt.Errorf("invalid date %q in holidays file: %w", e.Date, err)
		}
		set[e.Date] = Info{Name: e.Name, IsHoliday: e.Holiday}
	}
	return set, nil
}

// CachePath returns the holidays file location in the user cache directory.
func CachePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get cache directory: %w", err)
	}
	return filepath.Join(cacheDir, "swipecal", "holidays.json"), nil
}

// LoadFromCache loads the holidays file from the cache location.
func LoadFromCache() (Set, error) {
	path, err := CachePath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// IsFresh reports whether the file at path exists and was written within
// the last six months.
func IsFresh(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.ModTime().After(time.Now().AddDate(0, -6, 0)), nil
}

// ForDate looks up holiday info for a date.
func (s Set) ForDate(t time.Time) (Info, bool) {
	if s == nil {
		return Info{}, false
	}
	info, ok := s[t.Format(dateLayout)]
	return info, ok
}
