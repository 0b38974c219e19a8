package datastore

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	ds, err := New(filepath.Join(t.TempDir(), "data.json"), func() ([]byte, error) {
		return []byte(`{}`), nil
	})
	require.NoError(t, err)
	defer ds.Close()

	raw, err := ds.Load()
	require.NoError(t, err)
	require.Nil(t, raw)
}

func TestScheduleSaveCoalesces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	var snapshots atomic.Int32
	cfg := &Config{
		FilePath:       path,
		DebounceWindow: 50 * time.Millisecond,
	}
	ds, err := NewWithConfig(cfg, func() ([]byte, error) {
		snapshots.Add(1)
		return []byte(`{"guilds":{}}`), nil
	})
	require.NoError(t, err)
	defer ds.Close()

	for i := 0; i < 10; i++ {
		ds.ScheduleSave()
	}

	require.Eventually(t, func() bool {
		return ds.Stats()["saves"].(int64) == int64(1)
	}, 2*time.Second, 10*time.Millisecond, "ten schedules inside one window must produce one write")
	require.Equal(t, int32(1), snapshots.Load())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, `{"guilds":{}}`, string(raw))
}

func TestSaveNowSkipsUnchangedContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	ds, err := New(path, func() ([]byte, error) {
		return []byte(`{"guilds":{}}`), nil
	})
	require.NoError(t, err)
	defer ds.Close()

	require.NoError(t, ds.SaveNow())
	require.Equal(t, int64(1), ds.Stats()["saves"].(int64))

	// Identical content does not hit the disk again.
	require.NoError(t, ds.SaveNow())
	require.Equal(t, int64(1), ds.Stats()["saves"].(int64))
}

func TestCloseFlushesPendingSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	content := []byte(`{"guilds":{"g1":{}}}`)
	cfg := &Config{
		FilePath:       path,
		DebounceWindow: time.Hour, // never fires on its own
	}
	ds, err := NewWithConfig(cfg, func() ([]byte, error) {
		return content, nil
	})
	require.NoError(t, err)

	ds.ScheduleSave()
	require.NoError(t, ds.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, string(content), string(raw))
}

func TestReopenSeesSavedContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	ds, err := New(path, func() ([]byte, error) {
		return []byte(`{"guilds":{"g1":{"mode":"tired"}}}`), nil
	})
	require.NoError(t, err)
	require.NoError(t, ds.SaveNow())
	require.NoError(t, ds.Close())

	ds2, err := New(path, func() ([]byte, error) { return nil, nil })
	require.NoError(t, err)
	defer ds2.Close()

	raw, err := ds2.Load()
	require.NoError(t, err)
	require.JSONEq(t, `{"guilds":{"g1":{"mode":"tired"}}}`, string(raw))
}
