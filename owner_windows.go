//go:build windows

package main

import "os"

// Windows has no uid/gid in its stat record; owner and group columns
// fall back to placeholders.
func ownerIDs(info os.FileInfo) (uid, gid uint32, ok bool) {
	return 0, 0, false
}
