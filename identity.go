package main

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	passwdFile = "/etc/passwd"
	groupFile  = "/etc/group"
)

// identityCache maps numeric uids/gids to names. Built once per
// invocation, read-only afterwards. Lookups never fail: unknown ids
// come back as their decimal representation.
type identityCache struct {
	users  map[uint32]string
	groups map[uint32]string
}

func buildIdentityCache(fsys afero.Fs) *identityCache {
	return &identityCache{
		users:  parseIDFile(fsys, passwdFile),
		groups: parseIDFile(fsys, groupFile),
	}
}

// parseIDFile reads a colon-delimited account database: field 0 is the
// name, field 2 the numeric id. Malformed lines are skipped; a missing
// or unreadable file yields an empty map.
func parseIDFile(fsys afero.Fs, path string) map[uint32]string {
	names := make(map[uint32]string)

	f, err := fsys.Open(path)
	if err != nil {
		logger.Debug("identity database unavailable",
			zap.String("path", path), zap.Error(err))
		return names
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) < 3 {
			continue
		}
		id, err := strconv.ParseUint(fields[2], 10, 32)
		if err != nil {
			continue
		}
		names[uint32(id)] = fields[0]
	}

	logger.Debug("identity database parsed",
		zap.String("path", path), zap.Int("entries", len(names)))
	return names
}

func (c *identityCache) lookupUser(uid uint32) string {
	if name, ok := c.users[uid]; ok {
		return name
	}
	return strconv.FormatUint(uint64(uid), 10)
}

func (c *identityCache) lookupGroup(gid uint32) string {
	if name, ok := c.groups[gid]; ok {
		return name
	}
	return strconv.FormatUint(uint64(gid), 10)
}
