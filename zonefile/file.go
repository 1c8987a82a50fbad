package zonefile

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// ParseFile reads a zone file from disk and parses it. The engine itself
// holds no state, so concurrent calls on different files are safe.
func ParseFile(path string, opts ParseOptions) ([]ZoneEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading zone file %s: %w", path, err)
	}
	log.Debugf("parsing zone file %s (%d bytes)", path, len(data))

	entries, err := Parse(string(data), opts)
	if err != nil {
		return nil, fmt.Errorf("parsing zone file %s: %w", path, err)
	}
	log.Debugf("parsed %d entries from %s", len(entries), path)
	return entries, nil
}

// WriteFile serializes entries and writes them to path.
func WriteFile(path string, entries []ZoneEntry, opts FormatOptions) error {
	text := Format(entries, opts)
	log.Debugf("writing %d entries to %s", len(entries), path)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing zone file %s: %w", path, err)
	}
	return nil
}
