package domain

import "iter"

// VersionEntry is a single package name and its version string.
type VersionEntry struct {
	PackageName string
	Version     string
}

// VersionMap is an insertion-ordered mapping from package name to version string.
//
// Setting an existing key replaces its value but keeps its original position,
// so the last write wins while the rendered order stays stable.
type VersionMap struct {
	entries []VersionEntry
	index   map[string]int
}

// NewVersionMap creates an empty VersionMap.
func NewVersionMap() *VersionMap {
	return &VersionMap{
		index: make(map[string]int),
	}
}

// CollectVersions consumes seq once and returns the resulting VersionMap.
func CollectVersions(seq iter.Seq2[string, string]) *VersionMap {
	m := NewVersionMap()
	for name, version := range seq {
		m.Set(name, version)
	}
	return m
}

// Set records version for name.
func (m *VersionMap) Set(name, version string) {
	if i, ok := m.index[name]; ok {
		m.entries[i].Version = version
		return
	}
	m.index[name] = len(m.entries)
	m.entries = append(m.entries, VersionEntry{PackageName: name, Version: version})
}

// Get returns the version recorded for name.
func (m *VersionMap) Get(name string) (string, bool) {
	i, ok := m.index[name]
	if !ok {
		return "", false
	}
	return m.entries[i].Version, true
}

// Has reports whether name is present.
func (m *VersionMap) Has(name string) bool {
	_, ok := m.index[name]
	return ok
}

// Len returns the number of entries.
func (m *VersionMap) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the entries in insertion order.
func (m *VersionMap) Entries() []VersionEntry {
	out := make([]VersionEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// All returns an iterator over the entries in insertion order.
func (m *VersionMap) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range m.entries {
			if !yield(e.PackageName, e.Version) {
				return
			}
		}
	}
}
