package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const progName = "ils"

// dirEntry is one filesystem entry as seen by the rendering pipeline.
type dirEntry struct {
	name       string
	path       string
	isDir      bool
	mode       fs.FileMode
	uid, gid   uint32
	ownerKnown bool
	size       int64
	modTime    time.Time
	incomplete bool
	gitStatus  string
}

func main() {
	initOptions()
	initLogging(opt.debug)

	fsys := afero.NewOsFs()
	st := resolveConfig(fsys, candidatePaths())
	opt.apply(st)
	cache := buildIdentityCache(fsys)
	now := time.Now()
	colorize := term.IsTerminal(int(os.Stdout.Fd()))

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"."}
	}

	exitCode := 0
	files, dirs, ok := collectTargets(fsys, args)
	if !ok {
		exitCode = 1
	}

	if len(dirs) == 0 && len(files) == 0 {
		logger.Sync()
		os.Exit(1)
	}
	hasOutput := len(files) > 0
	showDirName := len(files) > 0 || len(dirs) > 1

	if len(files) > 0 {
		// Explicitly named files always render, dotfiles included.
		eff := *st
		eff.showHidden = true
		if eff.showGit && !attachGitStatus(files) {
			eff.showGit = false
		}
		fmt.Print(renderListing(files, &eff, cache, now, colorize))
	}

	for _, d := range dirs {
		if hasOutput {
			fmt.Println() // Separate directory listing from previous output.
		}
		if showDirName {
			fmt.Printf("%s:\n", d.name) // Label directory when multiple sections exist.
		}

		ents, err := listDir(fsys, d.path)
		if err != nil {
			showError(err)
			exitCode = 1
			hasOutput = true
			continue
		}
		eff := *st
		if eff.showGit && !attachGitStatus(ents) {
			eff.showGit = false
		}
		fmt.Print(renderListing(ents, &eff, cache, now, colorize))
		hasOutput = true
	}

	logger.Sync()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// collectTargets stats the positional arguments and splits them into
// file and directory sections, each sorted by name. A failing target is
// reported and clears ok without dropping the rest.
func collectTargets(fsys afero.Fs, args []string) (files, dirs []dirEntry, ok bool) {
	ok = true
	for _, p := range args {
		info, err := statTarget(fsys, p)
		if err != nil {
			showError(err)
			ok = false
			continue
		}

		ent := newDirEntry(p, p, info)
		if ent.isDir {
			// Prefer entry type over string to simplify sorting.
			dirs = append(dirs, ent)
		} else {
			files = append(files, ent)
		}
	}
	sortEntries(files, false)
	sortEntries(dirs, false)
	return files, dirs, ok
}

// listDir enumerates a directory into entries. Only the directory
// itself failing to open or read is an error; everything further down
// the pipeline degrades per entry.
func listDir(fsys afero.Fs, path string) ([]dirEntry, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	infos, err := f.Readdir(-1)
	if err != nil && len(infos) == 0 {
		return nil, err
	}
	if err != nil {
		logger.Debug("partial directory read",
			zap.String("path", path), zap.Error(err))
	}

	ents := make([]dirEntry, 0, len(infos))
	for _, info := range infos {
		ents = append(ents, newDirEntry(info.Name(), filepath.Join(path, info.Name()), info))
	}
	logger.Debug("directory listed",
		zap.String("path", path), zap.Int("entries", len(ents)))
	return ents, nil
}

// newDirEntry builds an entry from stat metadata. A nil info yields a
// placeholder entry rather than dropping it from the listing.
func newDirEntry(name, path string, info os.FileInfo) dirEntry {
	if info == nil {
		return dirEntry{name: name, path: path, incomplete: true}
	}
	e := dirEntry{
		name:    name,
		path:    path,
		isDir:   info.IsDir(),
		mode:    info.Mode(),
		size:    info.Size(),
		modTime: info.ModTime(),
	}
	e.uid, e.gid, e.ownerKnown = ownerIDs(info)
	return e
}

// statTarget prefers Lstat so symlink arguments list themselves, like
// the filesystems that support it.
func statTarget(fsys afero.Fs, path string) (os.FileInfo, error) {
	if lst, ok := fsys.(afero.Lstater); ok {
		info, _, err := lst.LstatIfPossible(path)
		return info, err
	}
	return fsys.Stat(path)
}

func showError(e error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", progName, e)
}
