package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgver/internal/core/domain"
)

func ref(s string) *string {
	return &s
}

func TestLockedPackage_VersionString(t *testing.T) {
	tests := []struct {
		name     string
		pkg      domain.LockedPackage
		expected string
	}{
		{
			name:     "source reference wins",
			pkg:      domain.LockedPackage{Name: "a/a", Version: "1.0.0", SourceReference: ref("abc"), DistReference: ref("def")},
			expected: "1.0.0@abc",
		},
		{
			name:     "dist reference fallback",
			pkg:      domain.LockedPackage{Name: "a/a", Version: "1.0.0", DistReference: ref("def")},
			expected: "1.0.0@def",
		},
		{
			name:     "no references",
			pkg:      domain.LockedPackage{Name: "a/a", Version: "1.2.3"},
			expected: "1.2.3@",
		},
		{
			name:     "present empty source reference is kept",
			pkg:      domain.LockedPackage{Name: "a/a", Version: "2.0.0", SourceReference: ref(""), DistReference: ref("def")},
			expected: "2.0.0@",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pkg.VersionString())
		})
	}
}

func TestRootPackage_Canonical(t *testing.T) {
	inner := &domain.RootPackage{Name: "trai/pkgver", PrettyVersion: "1.0.0"}
	middle := &domain.RootPackage{Name: "trai/pkgver-alias", AliasOf: inner}
	outer := &domain.RootPackage{Name: "trai/pkgver-outer", AliasOf: middle}

	t.Run("unwraps nested aliases", func(t *testing.T) {
		assert.Same(t, inner, outer.Canonical())
	})

	t.Run("plain descriptor is its own canonical form", func(t *testing.T) {
		assert.Same(t, inner, inner.Canonical())
	})

	t.Run("version string", func(t *testing.T) {
		r := domain.RootPackage{PrettyVersion: "dev-main", SourceReference: "f00"}
		assert.Equal(t, "dev-main@f00", r.VersionString())
	})
}

func TestVersionMap_Set(t *testing.T) {
	m := domain.NewVersionMap()
	m.Set("a/a", "1.0.0@x")
	m.Set("b/b", "2.0.0@y")
	m.Set("a/a", "3.0.0@z")

	require.Equal(t, 2, m.Len())

	got, ok := m.Get("a/a")
	require.True(t, ok)
	assert.Equal(t, "3.0.0@z", got)

	assert.Equal(t, []domain.VersionEntry{
		{PackageName: "a/a", Version: "3.0.0@z"},
		{PackageName: "b/b", Version: "2.0.0@y"},
	}, m.Entries(), "overwrite keeps the first insertion position")

	_, ok = m.Get("c/c")
	assert.False(t, ok)
	assert.False(t, m.Has("c/c"))
	assert.True(t, m.Has("b/b"))
}

func TestVersionMap_All(t *testing.T) {
	m := domain.NewVersionMap()
	m.Set("z/z", "1@")
	m.Set("a/a", "2@")
	m.Set("m/m", "3@")

	var names []string
	for name := range m.All() {
		names = append(names, name)
	}
	assert.Equal(t, []string{"z/z", "a/a", "m/m"}, names)

	var first []string
	for name := range m.All() {
		first = append(first, name)
		break
	}
	assert.Equal(t, []string{"z/z"}, first)
}

func TestCollectVersions(t *testing.T) {
	seq := func(yield func(string, string) bool) {
		for _, kv := range [][2]string{{"a/a", "1@"}, {"b/b", "2@"}, {"a/a", "9@"}} {
			if !yield(kv[0], kv[1]) {
				return
			}
		}
	}

	m := domain.CollectVersions(seq)
	assert.Equal(t, []domain.VersionEntry{
		{PackageName: "a/a", Version: "9@"},
		{PackageName: "b/b", Version: "2@"},
	}, m.Entries())
}

func TestConfigOverrides_Apply(t *testing.T) {
	cfg := domain.Config{
		VendorDir: "/p/vendor",
		LockFile:  "/p/composer.lock",
		Root:      domain.RootPackage{Name: "acme/app", PrettyVersion: "1.0.0", SourceReference: "abc"},
	}

	domain.ConfigOverrides{VendorDir: "/q/vendor", RootReference: "def"}.Apply(&cfg)

	assert.Equal(t, "/q/vendor", cfg.VendorDir)
	assert.Equal(t, "/p/composer.lock", cfg.LockFile)
	assert.Equal(t, "acme/app", cfg.Root.Name)
	assert.Equal(t, "1.0.0", cfg.Root.PrettyVersion)
	assert.Equal(t, "def", cfg.Root.SourceReference)
}

func TestWriteOutcome_String(t *testing.T) {
	assert.Equal(t, "written", domain.OutcomeWritten.String())
	assert.Equal(t, "skipped", domain.OutcomeSkipped.String())
	assert.Equal(t, "none", domain.OutcomeNone.String())
}
