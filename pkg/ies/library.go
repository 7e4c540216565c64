package ies

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// Library is an in-memory collection of parsed IES files keyed by name.
// It is safe for concurrent use.
type Library struct {
	mu     sync.RWMutex
	lights map[string]*LightData
	log    *zap.Logger
}

// NewLibrary creates an empty library. A nil logger discards output.
func NewLibrary(log *zap.Logger) *Library {
	if log == nil {
		log = zap.NewNop()
	}
	return &Library{
		lights: make(map[string]*LightData),
		log:    log,
	}
}

// Add registers data under name, replacing any previous entry. It reports
// whether an entry was replaced.
func (l *Library) Add(name string, data *LightData) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, replaced := l.lights[name]
	l.lights[name] = data
	return replaced
}

// Lookup returns the data registered under name.
func (l *Library) Lookup(name string) (*LightData, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if data, ok := l.lights[name]; ok {
		return data, nil
	}
	return nil, fmt.Errorf("ies: no light named %q", name)
}

// Names returns the registered names in sorted order.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.lights))
	for name := range l.lights {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered lights.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.lights)
}

// LoadFiles parses the given files and registers each under its base name.
// The first failure aborts the load. A later file with the same base name
// replaces the earlier one and is logged.
func (l *Library) LoadFiles(paths ...string) error {
	p := NewProcessor()
	for _, path := range paths {
		data := NewLightData()
		if err := p.Parse(data, path); err != nil {
			return fmt.Errorf("ies: load %s: %w", path, err)
		}
		l.register(filepath.Base(path), path, data)
	}
	return nil
}

// LoadDir recursively loads every .ies file below root and registers each
// under its slash separated path relative to root ("sub/x.ies"). Files that
// do not parse are logged and skipped; only walk errors are returned.
func (l *Library) LoadDir(root string) error {
	p := NewProcessor()
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !isIESFile(path) {
			return nil
		}
		data := NewLightData()
		if err := p.Parse(data, path); err != nil {
			l.log.Warn("skipping IES file",
				zap.String("path", path),
				zap.Stringer("code", Code(err)),
				zap.Error(err))
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		l.register(filepath.ToSlash(rel), path, data)
		return nil
	})
}

func (l *Library) register(name, path string, data *LightData) {
	if l.Add(name, data) {
		l.log.Warn("replacing IES file with the same name",
			zap.String("name", name),
			zap.String("path", path))
	}
	l.log.Debug("loaded IES file",
		zap.String("name", name),
		zap.String("path", path),
		zap.Stringer("symmetry", data.Symmetry()))
}

func isIESFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".ies")
}
