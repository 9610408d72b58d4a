package store

import (
	"encoding/json"
	"fmt"

	c "git.cmcode.dev/cmcode/finance-calendar-tui/constants"
	m "git.cmcode.dev/cmcode/finance-calendar-tui/models"

	"github.com/sirupsen/logrus"
)

// loadEntries reads one collection. Anything that goes wrong results in an
// empty collection; the reason is only logged.
func loadEntries(kv KV, key string, log logrus.FieldLogger) []m.Entry {
	l := log.WithField("key", key)

	b, ok, err := kv.Get(key)
	if err != nil {
		l.WithError(err).Warn("failed to read entries, starting empty")
		return []m.Entry{}
	}

	if !ok {
		l.Debug("no saved entries")
		return []m.Entry{}
	}

	entries := []m.Entry{}

	err = json.Unmarshal(b, &entries)
	if err != nil {
		l.WithError(err).Warn("failed to parse saved entries, starting empty")
		return []m.Entry{}
	}

	// a stored "null" unmarshals into a nil slice
	if entries == nil {
		entries = []m.Entry{}
	}

	l.WithField("count", len(entries)).Debug("loaded entries")

	return entries
}

// Load reads both collections from kv. It never fails: a missing or
// unparseable collection is treated as empty.
func Load(kv KV, log logrus.FieldLogger) m.Collections {
	return m.Collections{
		Salaries:  loadEntries(kv, c.KeySalaries, log),
		Spendings: loadEntries(kv, c.KeySpendings, log),
	}
}

func marshalEntries(entries []m.Entry) ([]byte, error) {
	if entries == nil {
		entries = []m.Entry{}
	}

	b, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entries: %w", err)
	}

	return b, nil
}

// Save overwrites both collections in kv.
func Save(kv KV, col m.Collections) error {
	salaries, err := marshalEntries(col.Salaries)
	if err != nil {
		return err
	}

	spendings, err := marshalEntries(col.Spendings)
	if err != nil {
		return err
	}

	err = kv.Set(c.KeySalaries, salaries)
	if err != nil {
		return fmt.Errorf("failed to save %v: %w", c.KeySalaries, err)
	}

	err = kv.Set(c.KeySpendings, spendings)
	if err != nil {
		return fmt.Errorf("failed to save %v: %w", c.KeySpendings, err)
	}

	return nil
}
