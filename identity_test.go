package main

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passwdFixture = `root:x:0:0:root:/root:/bin/bash
daemon:x:1:1:daemon:/usr/sbin:/usr/sbin/nologin
# comment line
kai:x:1000:1000:Kai:/home/kai:/bin/zsh

broken line without colons
shortline:x
badid:x:notanumber:0:bad:/nope:/bin/false
`

const groupFixture = `root:x:0:
devs:x:1000:kai
badid:x:4x4:
`

func newIdentityFs(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, passwdFile, []byte(passwdFixture), 0o644))
	require.NoError(t, afero.WriteFile(fsys, groupFile, []byte(groupFixture), 0o644))
	return fsys
}

func TestBuildIdentityCache(t *testing.T) {
	cache := buildIdentityCache(newIdentityFs(t))

	assert.Equal(t, "root", cache.lookupUser(0))
	assert.Equal(t, "daemon", cache.lookupUser(1))
	assert.Equal(t, "kai", cache.lookupUser(1000))
	assert.Equal(t, "root", cache.lookupGroup(0))
	assert.Equal(t, "devs", cache.lookupGroup(1000))

	// Malformed lines are skipped, not fatal.
	assert.Len(t, cache.users, 3)
	assert.Len(t, cache.groups, 2)
}

func TestIdentityLookupNumericFallback(t *testing.T) {
	cache := buildIdentityCache(newIdentityFs(t))

	assert.Equal(t, "4242", cache.lookupUser(4242))
	assert.Equal(t, "4242", cache.lookupGroup(4242))
}

func TestIdentityMissingDatabases(t *testing.T) {
	// No /etc at all: every lookup falls back to the numeric id.
	cache := buildIdentityCache(afero.NewMemMapFs())

	assert.Equal(t, "0", cache.lookupUser(0))
	assert.Equal(t, "1000", cache.lookupGroup(1000))
}
