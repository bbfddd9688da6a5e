// Package syscache discovers and purges developer tool caches in the home
// directory (package managers, build systems, Xcode, Trash).
package syscache

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Cache is one purgeable cache directory.
type Cache struct {
	Name        string
	Path        string
	Size        int64
	Description string
}

type candidate struct {
	name, rel, desc string
}

// Well-known cache locations, relative to the home directory. The macOS
// Library paths are simply absent on other platforms and get filtered out.
var knownCaches = []candidate{
	{"Homebrew", "Library/Caches/Homebrew", "Homebrew package downloads and cache"},
	{"npm", ".npm/_cacache", "Node.js npm package cache"},
	{"Yarn", "Library/Caches/Yarn", "Yarn package cache"},
	{"pnpm", "Library/pnpm/store", "pnpm package store"},
	{"Cargo Registry", ".cargo/registry", "Rust crates registry cache"},
	{"Cargo Git", ".cargo/git", "Rust git dependencies cache"},
	{"pip", "Library/Caches/pip", "Python pip package cache"},
	{"Xcode DerivedData", "Library/Developer/Xcode/DerivedData", "Xcode build artifacts and indexes"},
	{"Xcode Archives", "Library/Developer/Xcode/Archives", "Xcode archived builds"},
	{"CocoaPods", "Library/Caches/CocoaPods", "CocoaPods spec and pod cache"},
	{"Gradle", ".gradle/caches", "Gradle build cache"},
	{"Maven", ".m2/repository", "Maven local repository"},
	{"Go Modules", "go/pkg/mod/cache", "Go module cache"},
	{"Composer", ".composer/cache", "PHP Composer cache"},
	{"Trash", ".Trash", "Files in Trash"},
}

// Discover returns existing, non-empty caches sorted by size descending.
func Discover() []Cache {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return discoverIn(home)
}

func discoverIn(home string) []Cache {
	var caches []Cache
	for _, k := range knownCaches {
		path := filepath.Join(home, k.rel)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		size := dirSize(path)
		if size == 0 {
			continue
		}
		caches = append(caches, Cache{Name: k.name, Path: path, Size: size, Description: k.desc})
	}
	sort.Slice(caches, func(i, j int) bool { return caches[i].Size > caches[j].Size })
	return caches
}

// Purge deletes the cache contents and returns the bytes freed. Cache
// directories are recreated empty since some tools expect them to exist. The
// Trash directory itself is protected by macOS, so only its entries go.
func Purge(c Cache) (int64, error) {
	info, err := os.Stat(c.Path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", c.Path, err)
	}

	if !info.IsDir() {
		if err := os.Remove(c.Path); err != nil {
			return 0, fmt.Errorf("failed to remove %s: %w", c.Path, err)
		}
		return c.Size, nil
	}

	if c.Name == "Trash" {
		if err := removeContents(c.Path); err != nil {
			return 0, err
		}
		return c.Size, nil
	}

	if err := os.RemoveAll(c.Path); err != nil {
		return 0, fmt.Errorf("failed to remove %s: %w", c.Path, err)
	}
	_ = os.MkdirAll(c.Path, 0750)
	return c.Size, nil
}

func removeContents(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	return nil
}

// dirSize walks path summing regular file sizes. Unreadable entries count as
// zero rather than failing the walk.
func dirSize(path string) int64 {
	var size int64
	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			if info, err := d.Info(); err == nil {
				size += info.Size()
			}
		}
		return nil
	})
	return size
}
