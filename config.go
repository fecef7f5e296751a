package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Column identifiers accepted in column_order.
const (
	colIcon        = "icon"
	colPermissions = "permissions"
	colOwner       = "owner"
	colGroup       = "group"
	colModified    = "modified"
	colSize        = "size"
	colGit         = "git"
	colName        = "name"
)

var knownColumns = map[string]bool{
	colIcon:        true,
	colPermissions: true,
	colOwner:       true,
	colGroup:       true,
	colModified:    true,
	colSize:        true,
	colGit:         true,
	colName:        true,
}

// settings holds the resolved configuration. Built once at startup,
// read-only afterwards.
type settings struct {
	showIcons       bool
	showPermissions bool
	showOwner       bool
	showGroup       bool
	showModified    bool
	showHidden      bool
	showGit         bool
	useFuzzyTime    bool
	columnFormat    bool
	sortDirsFirst   bool
	longFormat      bool
	columnOrder     []string
}

func defaultSettings() *settings {
	return &settings{
		showIcons:       true,
		showPermissions: true,
		showOwner:       true,
		showGroup:       true,
		showModified:    true,
		useFuzzyTime:    true,
		columnFormat:    true,
		sortDirsFirst:   true,
		columnOrder: []string{
			colIcon, colPermissions, colOwner, colGroup, colModified, colName,
		},
	}
}

// candidatePaths returns the config file locations in precedence order.
// The first path that opens wins; files are never merged.
func candidatePaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths,
			filepath.Join(xdg, progName, "config"),
			filepath.Join(xdg, progName+".conf"),
		)
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", progName, "config"),
			filepath.Join(home, ".config", progName+".conf"),
			filepath.Join(home, "."+progName+"rc"),
		)
	}
	return append(paths, "."+progName+"rc")
}

// resolveConfig loads settings from the first readable candidate file,
// falling back to compiled-in defaults when none exists.
func resolveConfig(fsys afero.Fs, paths []string) *settings {
	st := defaultSettings()
	for _, p := range paths {
		f, err := fsys.Open(p)
		if err != nil {
			continue
		}
		logger.Debug("config file selected", zap.String("path", p))
		parseConfig(f, st)
		f.Close()
		return st
	}
	logger.Debug("no config file found, using defaults")
	return st
}

// parseConfig overlays key=value pairs from r onto st. Malformed lines
// and unknown keys are skipped; a bad value leaves the default intact.
func parseConfig(r io.Reader, st *settings) {
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			logger.Debug("skipping malformed config line", zap.Int("line", lineno))
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		if key == "column_order" {
			if order := parseColumnOrder(value); len(order) > 0 {
				st.columnOrder = order
			}
			continue
		}

		dst, ok := boolKey(st, key)
		if !ok {
			logger.Debug("ignoring unknown config key", zap.String("key", key))
			continue
		}
		b, ok := parseBoolToken(value)
		if !ok {
			logger.Debug("ignoring invalid boolean value",
				zap.String("key", key), zap.String("value", value))
			continue
		}
		*dst = b
	}
}

func boolKey(st *settings, key string) (*bool, bool) {
	switch key {
	case "show_icons":
		return &st.showIcons, true
	case "show_permissions":
		return &st.showPermissions, true
	case "show_owner":
		return &st.showOwner, true
	case "show_group":
		return &st.showGroup, true
	case "show_modified":
		return &st.showModified, true
	case "show_hidden":
		return &st.showHidden, true
	case "show_git":
		return &st.showGit, true
	case "use_fuzzy_time":
		return &st.useFuzzyTime, true
	case "column_format":
		return &st.columnFormat, true
	case "sort_dirs_first":
		return &st.sortDirsFirst, true
	case "long_format":
		return &st.longFormat, true
	}
	return nil, false
}

// parseBoolToken accepts the usual spellings of a boolean; anything
// else is rejected so the caller keeps its default.
func parseBoolToken(s string) (value, ok bool) {
	switch strings.ToLower(s) {
	case "true", "yes", "1", "on", "enabled":
		return true, true
	case "false", "no", "0", "off", "disabled":
		return false, true
	}
	return false, false
}

// parseColumnOrder keeps known identifiers, in order, duplicates
// included. Unknown identifiers are dropped.
func parseColumnOrder(s string) []string {
	var order []string
	for _, tok := range strings.Split(s, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if knownColumns[tok] {
			order = append(order, tok)
		}
	}
	return order
}
