package main

import (
	"fmt"
	"io/fs"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var categoryGlyphs = map[fileCategory]string{
	categoryFile:    "📄",
	categoryDir:     "📁",
	categoryHidden:  "👻",
	categoryGo:      "🐹",
	categoryRust:    "🦀",
	categoryPython:  "🐍",
	categoryScript:  "⚡",
	categoryWeb:     "🌐",
	categoryStyle:   "🎨",
	categoryData:    "📊",
	categoryDoc:     "📝",
	categoryText:    "📄",
	categoryBook:    "📕",
	categoryArchive: "📦",
	categoryImage:   "🖼️",
	categoryAudio:   "🎵",
	categoryVideo:   "🎬",
	categoryBinary:  "⚙️",
	categoryConfig:  "⚙️",
	categoryDocker:  "🐳",
}

var (
	permStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	ownerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	groupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	timeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	sizeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	gitStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dirStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
)

// rightAligned columns pad on the left, everything else on the right.
var rightAligned = map[string]bool{
	colPermissions: true,
	colOwner:       true,
	colGroup:       true,
	colSize:        true,
}

// renderListing turns entries into the final textual listing. Hidden
// entries are filtered, the rest sorted, then each configured column is
// assembled, measured, and emitted aligned (or compact when
// columnFormat is off). Color codes never count toward widths.
func renderListing(ents []dirEntry, st *settings, ids *identityCache, now time.Time, colorize bool) string {
	ents = slices.Clone(ents)
	if !st.showHidden {
		ents = slices.DeleteFunc(ents, func(e dirEntry) bool {
			return strings.HasPrefix(e.name, ".")
		})
	}
	sortEntries(ents, st.sortDirsFirst)
	if len(ents) == 0 {
		return ""
	}

	cols := activeColumns(st)
	rows := make([][]string, len(ents))
	for i, e := range ents {
		cells := make([]string, len(cols))
		for j, col := range cols {
			cells[j] = cellValue(e, col, st, ids, now)
		}
		rows[i] = cells
	}

	var b strings.Builder
	if !st.columnFormat {
		for i, cells := range rows {
			for j := range cells {
				if j > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(styleCell(cols[j], ents[i], cells[j], colorize))
			}
			b.WriteByte('\n')
		}
		return b.String()
	}

	// Width per column position; display width, so multi-cell glyphs
	// align and ANSI sequences do not skew anything.
	widths := make([]int, len(cols))
	for _, cells := range rows {
		for j, cell := range cells {
			if w := lipgloss.Width(cell); w > widths[j] {
				widths[j] = w
			}
		}
	}

	for i, cells := range rows {
		for j, cell := range cells {
			if j > 0 {
				b.WriteByte(' ')
			}
			pad := strings.Repeat(" ", widths[j]-lipgloss.Width(cell))
			styled := styleCell(cols[j], ents[i], cell, colorize)
			if rightAligned[cols[j]] {
				b.WriteString(pad)
				b.WriteString(styled)
			} else {
				// Trailing column is padded too, keeping every line the
				// same printable length.
				b.WriteString(styled)
				b.WriteString(pad)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// sortEntries orders by name in byte order, directories first when
// requested. Stable, so identical names keep their input order.
func sortEntries(ents []dirEntry, dirsFirst bool) {
	slices.SortStableFunc(ents, func(a, b dirEntry) int {
		if dirsFirst && a.isDir != b.isDir {
			if a.isDir {
				return -1
			}
			return 1
		}
		return strings.Compare(a.name, b.name)
	})
}

// activeColumns resolves the configured order against the show_* flags.
// Duplicates are kept; name always renders and stays last unless the
// order placed it elsewhere.
func activeColumns(st *settings) []string {
	var cols []string
	for _, col := range st.columnOrder {
		switch col {
		case colIcon:
			if st.showIcons {
				cols = append(cols, col)
			}
		case colPermissions:
			if st.showPermissions {
				cols = append(cols, col)
			}
		case colOwner:
			if st.showOwner {
				cols = append(cols, col)
			}
		case colGroup:
			if st.showGroup {
				cols = append(cols, col)
			}
		case colModified:
			if st.showModified {
				cols = append(cols, col)
			}
		case colSize:
			if st.longFormat {
				cols = append(cols, col)
			}
		case colGit:
			if st.showGit {
				cols = append(cols, col)
			}
		case colName:
			cols = append(cols, col)
		}
	}
	nameAt := slices.Index(cols, colName)
	if st.longFormat && !slices.Contains(cols, colSize) {
		if nameAt < 0 {
			cols = append(cols, colSize)
		} else {
			cols = slices.Insert(cols, nameAt, colSize)
			nameAt++
		}
	}
	if st.showGit && !slices.Contains(cols, colGit) {
		if nameAt < 0 {
			cols = append(cols, colGit)
		} else {
			cols = slices.Insert(cols, nameAt, colGit)
			nameAt++
		}
	}
	if nameAt < 0 {
		cols = append(cols, colName)
	}
	return cols
}

// cellValue computes the plain (uncolored) display string for one
// column of one entry. Unreadable fields degrade to placeholders.
func cellValue(e dirEntry, col string, st *settings, ids *identityCache, now time.Time) string {
	switch col {
	case colIcon:
		return categoryGlyphs[classify(e.name, e.isDir)]
	case colPermissions:
		if e.incomplete {
			return "???"
		}
		return octalMode(e.mode)
	case colOwner:
		if e.incomplete || !e.ownerKnown {
			return "?"
		}
		return ids.lookupUser(e.uid)
	case colGroup:
		if e.incomplete || !e.ownerKnown {
			return "?"
		}
		return ids.lookupGroup(e.gid)
	case colModified:
		return formatTime(e.modTime, now, st.useFuzzyTime)
	case colSize:
		if e.incomplete {
			return "?"
		}
		return humanReadable(e.size)
	case colGit:
		return e.gitStatus
	case colName:
		if e.isDir {
			return e.name + "/"
		}
		return e.name
	}
	return ""
}

func styleCell(col string, e dirEntry, text string, colorize bool) string {
	if !colorize || text == "" {
		return text
	}
	switch col {
	case colPermissions:
		return permStyle.Render(text)
	case colOwner:
		return ownerStyle.Render(text)
	case colGroup:
		return groupStyle.Render(text)
	case colModified:
		return timeStyle.Render(text)
	case colSize:
		return sizeStyle.Render(text)
	case colGit:
		return gitStyle.Render(text)
	case colName:
		if e.isDir {
			return dirStyle.Render(text)
		}
	}
	return text
}

// octalMode renders permission bits as 3 octal digits, or 4 when a
// setuid/setgid/sticky bit is set.
func octalMode(m fs.FileMode) string {
	bits := uint32(m.Perm())
	if m&fs.ModeSetuid != 0 {
		bits |= 0o4000
	}
	if m&fs.ModeSetgid != 0 {
		bits |= 0o2000
	}
	if m&fs.ModeSticky != 0 {
		bits |= 0o1000
	}
	return fmt.Sprintf("%o", bits)
}

func humanReadable(size int64) string {
	if size < 1024 {
		return fmt.Sprintf("%dB", size)
	}

	base := 1024.0
	units := []string{"K", "M", "G", "T", "P"}
	v := float64(size)

	for _, u := range units {
		v /= base
		if v < 99.95 {
			return fmt.Sprintf("%.1f%s", math.Round(v*10)/10, u)
		}
		if v < base-0.5 {
			return fmt.Sprintf("%.0f%s", math.Round(v), u)
		}
	}

	return "+999" + units[len(units)-1]
}
