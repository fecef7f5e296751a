//go:build !windows

package main

import (
	"os"
	"syscall"
)

// ownerIDs extracts uid/gid from the platform stat record. Backing
// filesystems without one (in-memory test filesystems, some mounts)
// report ok=false and render placeholders instead.
func ownerIDs(info os.FileInfo) (uid, gid uint32, ok bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, 0, false
	}
	return st.Uid, st.Gid, true
}
