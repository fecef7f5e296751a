package main

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/work/sub", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/work/a.txt", []byte("aa"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/work/b.go", []byte("package b"), 0o644))

	ents, err := listDir(fsys, "/work")
	require.NoError(t, err)
	require.Len(t, ents, 3)

	byName := make(map[string]dirEntry, len(ents))
	for _, e := range ents {
		byName[e.name] = e
	}

	assert.True(t, byName["sub"].isDir)
	assert.False(t, byName["a.txt"].isDir)
	assert.Equal(t, int64(2), byName["a.txt"].size)
	assert.Equal(t, "/work/b.go", byName["b.go"].path)
	assert.False(t, byName["a.txt"].incomplete)
}

func TestCollectTargetsSorted(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/b", 0o755))
	require.NoError(t, fsys.MkdirAll("/a", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/zz.txt", nil, 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/aa.txt", nil, 0o644))

	files, dirs, ok := collectTargets(fsys, []string{"/zz.txt", "/b", "/aa.txt", "/a"})

	// Both sections render in name order, not argument order.
	assert.True(t, ok)
	require.Len(t, files, 2)
	assert.Equal(t, "/aa.txt", files[0].name)
	assert.Equal(t, "/zz.txt", files[1].name)
	require.Len(t, dirs, 2)
	assert.Equal(t, "/a", dirs[0].name)
	assert.Equal(t, "/b", dirs[1].name)
}

func TestCollectTargetsKeepsGoingOnError(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/ok.txt", nil, 0o644))

	files, dirs, ok := collectTargets(fsys, []string{"/missing", "/ok.txt"})

	assert.False(t, ok)
	assert.Empty(t, dirs)
	require.Len(t, files, 1)
	assert.Equal(t, "/ok.txt", files[0].name)
}

func TestListDirMissing(t *testing.T) {
	_, err := listDir(afero.NewMemMapFs(), "/nope")
	assert.Error(t, err)
}

func TestStatTarget(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/work/a.txt", nil, 0o644))

	info, err := statTarget(fsys, "/work/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "a.txt", info.Name())

	_, err = statTarget(fsys, "/work/missing")
	assert.Error(t, err)
}

func TestNewDirEntryPlaceholder(t *testing.T) {
	e := newDirEntry("broken", "/work/broken", nil)

	assert.True(t, e.incomplete)
	assert.Equal(t, "broken", e.name)
	assert.True(t, e.modTime.IsZero())
}

func TestNewDirEntryOwnerUnknownOnMemFs(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/work/a.txt", nil, 0o644))
	info, err := fsys.Stat("/work/a.txt")
	require.NoError(t, err)

	e := newDirEntry(info.Name(), "/work/a.txt", info)

	// MemMapFs has no stat record, so owner/group stay placeholders.
	assert.False(t, e.ownerKnown)
	assert.False(t, e.incomplete)
	assert.WithinDuration(t, time.Now(), e.modTime, time.Minute)
}
