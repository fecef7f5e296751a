package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// gitRepos caches status maps per repository root; nil marks a root
// whose status could not be read. The whole run is single-threaded, so
// a plain map suffices.
var gitRepos = map[string]map[string]string{}

// attachGitStatus populates gitStatus for ents, doing at most one
// lookup per directory. It reports whether any entry belongs to a
// repository, so callers can drop the column entirely otherwise.
func attachGitStatus(ents []dirEntry) bool {
	dirCache := make(map[string]map[string]string, len(ents))
	found := false

	for i := range ents {
		e := &ents[i]
		var dir string
		if e.isDir {
			// A directory entry may itself be the repo root.
			dir = e.path
		} else {
			dir = filepath.Dir(e.path)
		}

		stats, ok := dirCache[dir]
		if !ok {
			stats = gitStatusesForDir(dir)
			dirCache[dir] = stats
		}
		if stats == nil {
			continue
		}
		found = true
		if signs, ok := stats[e.path]; ok {
			e.gitStatus = strings.ReplaceAll(signs, " ", "-")
		}
	}

	// Only add placeholders if any Git status is present.
	if !found {
		return false
	}
	for i := range ents {
		if ents[i].gitStatus == "" {
			ents[i].gitStatus = "--"
		}
	}
	return true
}

// gitPriority ranks Git status codes by significance (higher wins).
func gitPriority(signs string) int {
	switch signs {
	case "!!":
		return 1
	case "??":
		return 2
	default:
		return 3
	}
}

// gitStatusesForDir returns Git status codes for dir's repository.
// The map keys are absolute paths for all entries reported by Git.
// It returns nil if no repository is found or status cannot be read.
func gitStatusesForDir(dir string) map[string]string {
	root := gitRoot(dir)
	if root == "" {
		return nil
	}

	if st, ok := gitRepos[root]; ok {
		return st
	}

	cmd := exec.Command(
		"git",
		"-C", root,
		"status",
		"--porcelain=v1",
		"-z",
		"--ignored=matching",
	)
	out, err := cmd.Output()
	if err != nil {
		gitRepos[root] = nil
		return nil
	}

	stats := make(map[string]string)
	for _, rec := range bytes.Split(out, []byte{0}) {
		// skip invalid status (e.g. second part of rename entry)
		if len(rec) < 4 || rec[2] != ' ' {
			continue
		}
		signs := string(rec[:2])
		rel := string(rec[3:])
		rel = filepath.FromSlash(rel)
		full := filepath.Join(root, rel)

		if prev, ok := stats[full]; !ok || gitPriority(prev) < gitPriority(signs) {
			stats[full] = signs
		}

		// propagate "highest" status to all parent dirs
		dirPath := filepath.Dir(full)
		for len(dirPath) >= len(root) {
			prev, ok := stats[dirPath]
			if !ok || gitPriority(prev) < gitPriority(signs) {
				stats[dirPath] = signs
			}
			if dirPath == root {
				break
			}
			parent := filepath.Dir(dirPath)
			if parent == dirPath {
				break
			}
			dirPath = parent
		}
	}

	gitRepos[root] = stats

	return stats
}

// gitRoot returns the repository root containing dir, or "" if none is found.
func gitRoot(dir string) string {
	root := dir
	for {
		if _, err := os.Stat(filepath.Join(root, ".git")); err == nil {
			return root
		}
		parent := filepath.Dir(root)
		if parent == root {
			return ""
		}
		root = parent
	}
}
