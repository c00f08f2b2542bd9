// Package discover turns path arguments into the ordered set of YAML
// files to validate.
package discover

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/yamlwhisperer/cli/internal/output"
)

// File extension constants for supported file formats.
const (
	// ExtYAML is the standard YAML file extension.
	ExtYAML = ".yaml"
	// ExtYML is the alternative YAML file extension.
	ExtYML = ".yml"
)

// Extensions lists the recognized extensions in scan order.
var Extensions = []string{ExtYAML, ExtYML}

// Kind describes what a path argument turned out to be.
type Kind string

const (
	// KindFile is an existing regular file with a YAML extension.
	KindFile Kind = "file"
	// KindDirectory is an existing directory that was scanned.
	KindDirectory Kind = "directory"
	// KindMissing is a nonexistent path carrying a YAML extension. It is
	// kept as a candidate so validation reports it as unreadable.
	KindMissing Kind = "missing"
	// KindSkipped is anything else; it contributes no candidates.
	KindSkipped Kind = "skipped"
)

// Classification is the result of classifying one path argument.
type Classification struct {
	// Path is the cleaned argument.
	Path string

	// Kind is what the path turned out to be.
	Kind Kind

	// Files are the candidate files in validation order.
	Files []string

	// Reason explains why no candidates were produced (empty otherwise).
	Reason string
}

// IsYAMLExtension returns true if the extension is a valid YAML extension.
// The match is case-sensitive.
func IsYAMLExtension(ext string) bool {
	return ext == ExtYAML || ext == ExtYML
}

// Suffix returns the final extension of the base name of path. A name
// whose only dot is the leading one (".yaml") has no suffix.
func Suffix(path string) string {
	name := filepath.Base(path)
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

// ClassifyPath resolves one path argument into its candidate files.
//
// A regular file with a .yaml/.yml suffix yields itself. A directory
// yields every file below it ending in .yaml, followed by every file
// ending in .yml. Anything else yields nothing.
func ClassifyPath(path string) Classification {
	c := Classification{Path: filepath.Clean(path)}
	hasExt := IsYAMLExtension(Suffix(c.Path))

	info, err := os.Stat(c.Path)
	if err != nil {
		if hasExt {
			c.Kind = KindMissing
			c.Files = []string{c.Path}
			return c
		}
		c.Kind = KindSkipped
		if errors.Is(err, fs.ErrNotExist) {
			c.Reason = "path does not exist"
		} else {
			c.Reason = err.Error()
		}
		return c
	}

	switch {
	case info.IsDir():
		c.Kind = KindDirectory
		root := c.Path
		if lst, err := os.Lstat(root); err == nil && lst.Mode()&fs.ModeSymlink != 0 {
			root += string(filepath.Separator)
		}
		for _, ext := range Extensions {
			c.Files = append(c.Files, scan(root, ext)...)
		}
		if len(c.Files) == 0 {
			c.Reason = "directory contains no .yaml or .yml files"
		}
	case info.Mode().IsRegular() && hasExt:
		c.Kind = KindFile
		c.Files = []string{c.Path}
	case info.Mode().IsRegular():
		c.Kind = KindSkipped
		c.Reason = "not a .yaml or .yml file"
	default:
		c.Kind = KindSkipped
		c.Reason = "not a regular file or directory"
	}

	return c
}

// scan walks root and returns every entry below it whose name ends in
// ext, in lexical walk order. Matching subdirectories are included (they
// fail to read later) and still descended into. Unreadable directories
// are skipped.
func scan(root, ext string) []string {
	var files []string

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			output.Debug("skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if path == root {
			return nil
		}
		if strings.HasSuffix(d.Name(), ext) {
			files = append(files, path)
		}
		return nil
	})

	output.Debug("scanned directory", "root", root, "pattern", "*"+ext, "matches", len(files))
	return files
}
