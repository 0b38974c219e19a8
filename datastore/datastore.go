// Package datastore persists a JSON document to disk with debounced,
// coalesced writes. The caller owns the data; the store only asks for a
// serialized snapshot when it is time to write. Writes are atomic
// (temp file + rename), skipped when the content checksum is unchanged,
// and optionally backed up with rotation.
package datastore

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Snapshot returns the current serialized document. It is called outside
// the store's own locks, so the owner's synchronization applies.
type Snapshot func() ([]byte, error)

// Config holds configuration options for the DataStore.
type Config struct {
	FilePath       string
	DebounceWindow time.Duration // coalescing window for ScheduleSave
	FlushInterval  time.Duration // safety-net periodic flush (0 = disabled)
	BackupCount    int           // number of backup files to keep (0 = no backups)
	Logger         *log.Logger
}

// DefaultConfig returns a default configuration.
func DefaultConfig(filePath string) *Config {
	return &Config{
		FilePath:       filePath,
		DebounceWindow: 500 * time.Millisecond,
		FlushInterval:  time.Minute,
		BackupCount:    3,
		Logger:         log.New(os.Stderr, "[datastore] ", log.LstdFlags),
	}
}

type DataStore struct {
	cfg      *Config
	snapshot Snapshot

	mu      sync.Mutex // guards pending/timer/closed/saves
	pending bool
	timer   *time.Timer
	closed  bool
	saves   int64

	fileMu       sync.Mutex // serializes actual disk writes
	lastChecksum string

	done chan struct{}
	wg   sync.WaitGroup
}

// New creates a DataStore with default configuration.
func New(filePath string, snapshot Snapshot) (*DataStore, error) {
	return NewWithConfig(DefaultConfig(filePath), snapshot)
}

// NewWithConfig creates a DataStore with custom configuration.
func NewWithConfig(cfg *Config, snapshot Snapshot) (*DataStore, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.FilePath == "" {
		return nil, fmt.Errorf("file path cannot be empty")
	}
	if snapshot == nil {
		return nil, fmt.Errorf("snapshot callback cannot be nil")
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(os.Stderr, "[datastore] ", log.LstdFlags)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %v", err)
	}

	ds := &DataStore{
		cfg:      cfg,
		snapshot: snapshot,
		done:     make(chan struct{}),
	}

	if cfg.FlushInterval > 0 {
		ds.wg.Add(1)
		go ds.flushLoop()
	}

	return ds, nil
}

// Load reads the current document from disk. Returns (nil, nil) when the
// file does not exist yet.
func (ds *DataStore) Load() ([]byte, error) {
	data, err := os.ReadFile(ds.cfg.FilePath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %v", err)
	}
	ds.fileMu.Lock()
	ds.lastChecksum = checksum(data)
	ds.fileMu.Unlock()
	return data, nil
}

// ScheduleSave marks the document dirty. It is idempotent: at most one
// flush is pending at a time, and every mark within the debounce window
// coalesces into that single flush.
func (ds *DataStore) ScheduleSave() {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.closed || ds.pending {
		return
	}
	ds.pending = true
	ds.timer = time.AfterFunc(ds.cfg.DebounceWindow, ds.flush)
}

func (ds *DataStore) flush() {
	ds.mu.Lock()
	if ds.closed {
		ds.mu.Unlock()
		return
	}
	ds.pending = false
	ds.mu.Unlock()

	if err := ds.saveToFile(); err != nil {
		// Not retried here; the next ScheduleSave arms a fresh attempt.
		ds.cfg.Logger.Printf("Deferred save failed: %v", err)
	}
}

// SaveNow forces an immediate write, bypassing the debounce window.
func (ds *DataStore) SaveNow() error {
	ds.mu.Lock()
	if ds.closed {
		ds.mu.Unlock()
		return fmt.Errorf("datastore is closed")
	}
	ds.mu.Unlock()
	return ds.saveToFile()
}

// Close stops background work and performs a final flush.
func (ds *DataStore) Close() error {
	ds.mu.Lock()
	if ds.closed {
		ds.mu.Unlock()
		return nil
	}
	ds.closed = true
	if ds.timer != nil {
		ds.timer.Stop()
	}
	ds.mu.Unlock()

	close(ds.done)
	ds.wg.Wait()

	return ds.saveToFile()
}

// saveToFile writes a snapshot to disk with atomic write and integrity
// checking. Unchanged content is skipped.
func (ds *DataStore) saveToFile() error {
	data, err := ds.snapshot()
	if err != nil {
		return fmt.Errorf("failed to snapshot data: %v", err)
	}

	ds.fileMu.Lock()
	defer ds.fileMu.Unlock()

	sum := checksum(data)
	if sum == ds.lastChecksum {
		return nil
	}

	if ds.cfg.BackupCount > 0 {
		if err := ds.createBackup(); err != nil {
			ds.cfg.Logger.Printf("Failed to create backup: %v", err)
		}
	}

	if err := ds.writeFileAtomic(data); err != nil {
		return err
	}

	if err := ds.verifyFile(data); err != nil {
		return fmt.Errorf("file verification failed: %v", err)
	}

	ds.lastChecksum = sum

	ds.mu.Lock()
	ds.saves++
	ds.mu.Unlock()

	return nil
}

// writeFileAtomic performs an atomic file write using a temp file and rename.
func (ds *DataStore) writeFileAtomic(data []byte) error {
	tmpFile := ds.cfg.FilePath + ".tmp"

	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write to temp file: %v", err)
	}

	file, err := os.OpenFile(tmpFile, os.O_RDWR, 0644)
	if err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to open temp file for sync: %v", err)
	}

	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return fmt.Errorf("failed to sync temp file: %v", err)
	}
	file.Close()

	if err := os.Rename(tmpFile, ds.cfg.FilePath); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("failed to rename temp file: %v", err)
	}

	return nil
}

// verifyFile verifies that the written file matches the expected data.
func (ds *DataStore) verifyFile(expected []byte) error {
	actual, err := os.ReadFile(ds.cfg.FilePath)
	if err != nil {
		return fmt.Errorf("failed to read file for verification: %v", err)
	}
	if checksum(actual) != checksum(expected) {
		return fmt.Errorf("file checksum mismatch")
	}
	return nil
}

// createBackup creates a timestamped backup of the current file.
func (ds *DataStore) createBackup() error {
	if _, err := os.Stat(ds.cfg.FilePath); os.IsNotExist(err) {
		return nil // no file to backup
	}

	backupFile := fmt.Sprintf("%s.backup.%s", ds.cfg.FilePath, time.Now().Format("20060102_150405"))

	src, err := os.Open(ds.cfg.FilePath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(backupFile)
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}

	ds.cleanupOldBackups()
	return nil
}

// cleanupOldBackups removes backup files beyond the configured limit.
func (ds *DataStore) cleanupOldBackups() {
	matches, err := filepath.Glob(ds.cfg.FilePath + ".backup.*")
	if err != nil {
		return
	}
	if len(matches) <= ds.cfg.BackupCount {
		return
	}

	type fileInfo struct {
		path    string
		modTime time.Time
	}

	var files []fileInfo
	for _, match := range matches {
		if info, err := os.Stat(match); err == nil {
			files = append(files, fileInfo{match, info.ModTime()})
		}
	}

	// oldest first
	for i := 0; i < len(files)-1; i++ {
		for j := i + 1; j < len(files); j++ {
			if files[i].modTime.After(files[j].modTime) {
				files[i], files[j] = files[j], files[i]
			}
		}
	}

	toRemove := len(files) - ds.cfg.BackupCount
	for i := 0; i < toRemove; i++ {
		os.Remove(files[i].path)
	}
}

// flushLoop runs the safety-net periodic flush. With checksum skipping it
// is a no-op unless a debounced write failed or was never scheduled.
func (ds *DataStore) flushLoop() {
	defer ds.wg.Done()

	ticker := time.NewTicker(ds.cfg.FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ds.done:
			return
		case <-ticker.C:
			if err := ds.saveToFile(); err != nil {
				ds.cfg.Logger.Printf("Periodic flush error: %v", err)
			}
		}
	}
}

// Stats returns statistics about the DataStore.
func (ds *DataStore) Stats() map[string]any {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	return map[string]any{
		"file_path": ds.cfg.FilePath,
		"pending":   ds.pending,
		"saves":     ds.saves,
	}
}

func checksum(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
