package store

import (
	"os"
	"path/filepath"
	"testing"

	c "git.cmcode.dev/cmcode/finance-calendar-tui/constants"
	m "git.cmcode.dev/cmcode/finance-calendar-tui/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testCollections() m.Collections {
	return m.Collections{
		Salaries: []m.Entry{
			{Date: "2024-03-15", Card: "Visa", Description: "Paycheck"},
			{Date: "2024-03-15", Card: "Visa", Description: "Paycheck"},
			{Date: "2024-04-15", Card: "", Description: ""},
		},
		Spendings: []m.Entry{
			{Date: "2024-03-02", Card: "Amex", Description: "Groceries & \"stuff\""},
		},
	}
}

func backends(t *testing.T) map[string]KV {
	dir := t.TempDir()

	file, err := NewFileKV(filepath.Join(dir, "nested", c.DefaultFileStore))
	require.NoError(t, err)

	sqlite, err := NewSQLiteKV(filepath.Join(dir, c.DefaultSQLiteStore))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, sqlite.Close())
	})

	return map[string]KV{
		c.StoreBackendFile:   file,
		c.StoreBackendSQLite: sqlite,
		c.StoreBackendMemory: NewMemoryKV(),
	}
}

func TestKV_GetSet(t *testing.T) {
	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := kv.Get("missing")
			require.NoError(t, err)
			require.False(t, ok)

			require.NoError(t, kv.Set("a", []byte(`[1]`)))
			require.NoError(t, kv.Set("b", []byte(`[2]`)))
			require.NoError(t, kv.Set("a", []byte(`[3]`)))

			v, ok, err := kv.Get("a")
			require.NoError(t, err)
			require.True(t, ok)
			require.JSONEq(t, `[3]`, string(v))

			v, ok, err = kv.Get("b")
			require.NoError(t, err)
			require.True(t, ok)
			require.JSONEq(t, `[2]`, string(v))
		})
	}
}

func TestEntries_RoundTrip(t *testing.T) {
	log := logrus.New()

	for name, kv := range backends(t) {
		t.Run(name, func(t *testing.T) {
			col := testCollections()

			require.NoError(t, Save(kv, col))
			require.Equal(t, col, Load(kv, log))
		})
	}
}

func TestEntries_LoadEmpty(t *testing.T) {
	col := Load(NewMemoryKV(), logrus.New())
	require.NotNil(t, col.Salaries)
	require.NotNil(t, col.Spendings)
	require.Equal(t, 0, col.Len())
}

func TestEntries_SaveNilWritesEmptyArrays(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, Save(kv, m.Collections{}))

	v, ok, err := kv.Get(c.KeySalaries)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[]`, string(v))

	v, _, _ = kv.Get(c.KeySpendings)
	require.Equal(t, `[]`, string(v))
}

func TestEntries_PersistedLayout(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, Save(kv, m.Collections{
		Salaries: []m.Entry{{Date: "2024-03-15", Card: "Visa", Description: "Paycheck"}},
	}))

	v, _, _ := kv.Get(c.KeySalaries)
	require.JSONEq(t, `[{"date":"2024-03-15","card":"Visa","description":"Paycheck"}]`, string(v))
}

func TestEntries_LoadFailsSoftPerKey(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(c.KeySalaries, []byte(`{not json`)))
	require.NoError(t, kv.Set(c.KeySpendings, []byte(`[{"date":"2024-03-02","card":"Amex","description":"Groceries"}]`)))

	col := Load(kv, logrus.New())
	require.Equal(t, 0, len(col.Salaries))
	require.Equal(t, 1, len(col.Spendings))

	require.NoError(t, kv.Set(c.KeySalaries, []byte(`null`)))
	col = Load(kv, logrus.New())
	require.NotNil(t, col.Salaries)
	require.Equal(t, 0, len(col.Salaries))
}

func TestFileKV_CorruptFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), c.DefaultFileStore)
	require.NoError(t, os.WriteFile(file, []byte("garbage"), 0o644))

	kv, err := NewFileKV(file)
	require.NoError(t, err)

	_, _, err = kv.Get(c.KeySalaries)
	require.Error(t, err)

	col := Load(kv, logrus.New())
	require.Equal(t, 0, col.Len())

	// writing replaces the corrupt file
	require.NoError(t, Save(kv, testCollections()))
	require.Equal(t, testCollections(), Load(kv, logrus.New()))
}

func TestFileKV_RejectsInvalidJSON(t *testing.T) {
	kv, err := NewFileKV(filepath.Join(t.TempDir(), c.DefaultFileStore))
	require.NoError(t, err)
	require.Error(t, kv.Set("a", []byte("{")))
}

func TestSQLiteKV_Reopen(t *testing.T) {
	file := filepath.Join(t.TempDir(), c.DefaultSQLiteStore)

	kv, err := NewSQLiteKV(file)
	require.NoError(t, err)
	require.NoError(t, Save(kv, testCollections()))
	require.NoError(t, kv.Close())

	// migrations must be a no-op the second time around
	kv, err = NewSQLiteKV(file)
	require.NoError(t, err)

	defer kv.Close()

	require.Equal(t, testCollections(), Load(kv, logrus.New()))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	kv, err := Open(m.StoreConfig{Backend: c.StoreBackendMemory})
	require.NoError(t, err)
	require.IsType(t, &MemoryKV{}, kv)

	kv, err = Open(m.StoreConfig{Path: filepath.Join(dir, c.DefaultFileStore)})
	require.NoError(t, err)
	require.IsType(t, &FileKV{}, kv)

	kv, err = Open(m.StoreConfig{Backend: c.StoreBackendSQLite, Path: filepath.Join(dir, c.DefaultSQLiteStore)})
	require.NoError(t, err)
	require.IsType(t, &SQLiteKV{}, kv)
	require.NoError(t, kv.Close())

	_, err = Open(m.StoreConfig{Backend: "redis", Path: dir})
	require.Error(t, err)
}
