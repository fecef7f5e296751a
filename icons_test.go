package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		isDir bool
		want  fileCategory
	}{
		{"src", true, categoryDir},
		{".git", true, categoryDir}, // directories win over everything
		{"main.go", false, categoryGo},
		{"main.rs", false, categoryRust},
		{"setup.PY", false, categoryPython},
		{"app.ts", false, categoryScript},
		{"index.html", false, categoryWeb},
		{"theme.css", false, categoryStyle},
		{"data.json", false, categoryData},
		{"README.md", false, categoryDoc},
		{"notes.txt", false, categoryText},
		{"book.pdf", false, categoryBook},
		{"backup.tar.gz", false, categoryArchive},
		{"photo.JPEG", false, categoryImage},
		{"song.flac", false, categoryAudio},
		{"clip.mkv", false, categoryVideo},
		{"tool.exe", false, categoryBinary},
		{"config.yaml", false, categoryConfig},
		{"Dockerfile", false, categoryDocker},
		{"Makefile", false, categoryConfig},
		{"LICENSE", false, categoryText},
		{".gitignore", false, categoryHidden},
		{".config.json", false, categoryData}, // extension beats dot-prefix
		{"noextension", false, categoryFile},
		{"trailingdot.", false, categoryFile},
		{"file.unknownext", false, categoryFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.name, tt.isDir))
		})
	}
}

func TestCategoryGlyphsComplete(t *testing.T) {
	for _, c := range []fileCategory{
		categoryFile, categoryDir, categoryHidden, categoryGo, categoryRust,
		categoryPython, categoryScript, categoryWeb, categoryStyle,
		categoryData, categoryDoc, categoryText, categoryBook,
		categoryArchive, categoryImage, categoryAudio, categoryVideo,
		categoryBinary, categoryConfig, categoryDocker,
	} {
		assert.NotEmpty(t, categoryGlyphs[c], "category %d has no glyph", c)
	}
}
