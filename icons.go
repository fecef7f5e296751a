package main

import "strings"

// fileCategory is a symbolic classification; the rendering layer maps
// it to a glyph and color.
type fileCategory int

const (
	categoryFile fileCategory = iota
	categoryDir
	categoryHidden
	categoryGo
	categoryRust
	categoryPython
	categoryScript
	categoryWeb
	categoryStyle
	categoryData
	categoryDoc
	categoryText
	categoryBook
	categoryArchive
	categoryImage
	categoryAudio
	categoryVideo
	categoryBinary
	categoryConfig
	categoryDocker
)

var extCategories = map[string]fileCategory{
	"go":       categoryGo,
	"rs":       categoryRust,
	"py":       categoryPython,
	"js":       categoryScript,
	"ts":       categoryScript,
	"html":     categoryWeb,
	"htm":      categoryWeb,
	"css":      categoryStyle,
	"json":     categoryData,
	"md":       categoryDoc,
	"markdown": categoryDoc,
	"txt":      categoryText,
	"pdf":      categoryBook,
	"zip":      categoryArchive,
	"tar":      categoryArchive,
	"gz":       categoryArchive,
	"rar":      categoryArchive,
	"jpg":      categoryImage,
	"jpeg":     categoryImage,
	"png":      categoryImage,
	"gif":      categoryImage,
	"bmp":      categoryImage,
	"svg":      categoryImage,
	"mp3":      categoryAudio,
	"wav":      categoryAudio,
	"flac":     categoryAudio,
	"ogg":      categoryAudio,
	"mp4":      categoryVideo,
	"mkv":      categoryVideo,
	"avi":      categoryVideo,
	"mov":      categoryVideo,
	"exe":      categoryBinary,
	"bin":      categoryBinary,
	"toml":     categoryConfig,
	"yaml":     categoryConfig,
	"yml":      categoryConfig,
	"ini":      categoryConfig,
	"conf":     categoryConfig,
}

var specialNames = map[string]fileCategory{
	"dockerfile": categoryDocker,
	"makefile":   categoryConfig,
	"license":    categoryText,
}

// classify picks a category for a name. Precedence: directory, special
// filename, extension, hidden dot-prefix, default.
func classify(name string, isDir bool) fileCategory {
	if isDir {
		return categoryDir
	}
	if c, ok := specialNames[strings.ToLower(name)]; ok {
		return c
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 && i < len(name)-1 {
		if c, ok := extCategories[strings.ToLower(name[i+1:])]; ok {
			return c
		}
	}
	if strings.HasPrefix(name, ".") {
		return categoryHidden
	}
	return categoryFile
}
