package toolchain

import (
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/sha3"
	_ "modernc.org/sqlite"
)

// Cache is the sqlite-backed build cache. It maps a source file to the
// digest and flags it last compiled with, so unchanged files can be
// skipped on the next build.
type Cache struct {
	db *sql.DB
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS artifacts (
	source    TEXT PRIMARY KEY,
	digest    TEXT NOT NULL,
	toolchain TEXT NOT NULL,
	flags     TEXT NOT NULL,
	built_at  INTEGER NOT NULL
);`

// OpenCache opens (creating if needed) the build cache at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("toolchain: open build cache: %w", err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("toolchain: initialize build cache: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// SourceDigest computes the cache key of a source file: hex sha3-256 of
// its contents.
func SourceDigest(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("toolchain: digest %s: %w", path, err)
	}
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Fresh reports whether source was already compiled with the same digest,
// toolchain version, and flags.
func (c *Cache) Fresh(source, digest, toolchain, flags string) (bool, error) {
	var got, gotToolchain, gotFlags string
	err := c.db.QueryRow(
		`SELECT digest, toolchain, flags FROM artifacts WHERE source = ?`, source,
	).Scan(&got, &gotToolchain, &gotFlags)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("toolchain: query build cache: %w", err)
	}
	return got == digest && gotToolchain == toolchain && gotFlags == flags, nil
}

// Record stores (replacing) the compilation record of source.
func (c *Cache) Record(source, digest, toolchain, flags string) error {
	_, err := c.db.Exec(
		`INSERT INTO artifacts (source, digest, toolchain, flags, built_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(source) DO UPDATE SET
		   digest = excluded.digest,
		   toolchain = excluded.toolchain,
		   flags = excluded.flags,
		   built_at = excluded.built_at`,
		source, digest, toolchain, flags, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("toolchain: record build: %w", err)
	}
	return nil
}
