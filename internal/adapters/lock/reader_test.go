package lock_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkgver/internal/adapters/lock"
	"go.trai.ch/pkgver/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestReader_Read(t *testing.T) {
	snapshot, err := lock.NewReader().Read(filepath.Join("testdata", "composer.lock"))
	require.NoError(t, err)

	require.Len(t, snapshot.Packages, 2)
	require.Len(t, snapshot.PackagesDev, 1)

	assert.Equal(t, "trai/pkgver", snapshot.Packages[0].Name)
	assert.Equal(t, "1.4.0@4c1d1b3", snapshot.Packages[0].VersionString())
	assert.Equal(t, "3.0.0@fe5ea30", snapshot.Packages[1].VersionString())
	assert.Nil(t, snapshot.Packages[1].SourceReference)
	assert.Equal(t, "1.2.3@", snapshot.PackagesDev[0].VersionString())
}

func TestReader_ReadMissingFile(t *testing.T) {
	_, err := lock.NewReader().Read(filepath.Join(t.TempDir(), "composer.lock"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLockReadFailed.Error())
}

func TestReader_Decode(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		expectedErr error
		metadata    map[string]string
		check       func(t *testing.T, s *domain.LockSnapshot)
	}{
		{
			name: "missing packages-dev is empty",
			data: `{"packages": [{"name": "a/a", "version": "1.0.0"}]}`,
			check: func(t *testing.T, s *domain.LockSnapshot) {
				t.Helper()
				assert.Len(t, s.Packages, 1)
				assert.Empty(t, s.PackagesDev)
			},
		},
		{
			name: "empty packages list",
			data: `{"packages": []}`,
			check: func(t *testing.T, s *domain.LockSnapshot) {
				t.Helper()
				assert.Equal(t, 0, s.Len())
			},
		},
		{
			name: "present empty source reference",
			data: `{"packages": [{"name": "a/a", "version": "2.0.0", "source": {"reference": ""}, "dist": {"reference": "d"}}]}`,
			check: func(t *testing.T, s *domain.LockSnapshot) {
				t.Helper()
				assert.Equal(t, "2.0.0@", s.Packages[0].VersionString())
			},
		},
		{
			name: "null source reference falls back to dist",
			data: `{"packages": [{"name": "a/a", "version": "2.0.0", "source": {"reference": null}, "dist": {"reference": "d"}}]}`,
			check: func(t *testing.T, s *domain.LockSnapshot) {
				t.Helper()
				assert.Equal(t, "2.0.0@d", s.Packages[0].VersionString())
			},
		},
		{
			name:        "missing packages section",
			data:        `{"packages-dev": []}`,
			expectedErr: domain.ErrMalformedLock,
			metadata:    map[string]string{"section": "packages"},
		},
		{
			name:        "record without version",
			data:        `{"packages": [{"name": "a/a", "version": "1.0.0"}, {"name": "b/b"}]}`,
			expectedErr: domain.ErrMalformedLock,
			metadata:    map[string]string{"section": "packages", "index": "1", "field": "version"},
		},
		{
			name:        "dev record without name",
			data:        `{"packages": [], "packages-dev": [{"version": "1.0.0"}]}`,
			expectedErr: domain.ErrMalformedLock,
			metadata:    map[string]string{"section": "packages-dev", "index": "0", "field": "name"},
		},
		{
			name:        "not json",
			data:        `packages: []`,
			expectedErr: domain.ErrLockParseFailed,
		},
		{
			name:        "wrong type for name",
			data:        `{"packages": [{"name": 3, "version": "1.0.0"}]}`,
			expectedErr: domain.ErrLockParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot, err := lock.NewReader().Decode([]byte(tt.data))
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.expectedErr.Error())
				if tt.metadata != nil {
					assertMetadata(t, err, tt.metadata)
				}
				return
			}
			require.NoError(t, err)
			tt.check(t, snapshot)
		})
	}
}

func TestReader_DecodeIgnoresUnknownFields(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "composer.lock"))
	require.NoError(t, err)

	snapshot, err := lock.NewReader().Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 3, snapshot.Len())
}

func assertMetadata(t *testing.T, err error, expected map[string]string) {
	t.Helper()

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)

	got := make(map[string]string)
	for k, v := range zErr.Metadata() {
		if s, ok := v.(string); ok {
			got[k] = s
		}
	}
	for k, v := range expected {
		assert.Equal(t, v, got[k], "metadata %q", k)
	}
}
