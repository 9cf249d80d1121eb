package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/hmarchal/mdpress/internal/fileutil"
)

// discoverFiles expands the input arguments into concrete conversion
// pairs. Each argument may be a markdown file, a directory (searched
// recursively), or a glob pattern like "docs/**/*.md". Duplicates are
// collapsed, first occurrence wins.
func discoverFiles(inputs []string, outputDir string) ([]FileToConvert, error) {
	var files []FileToConvert
	seen := make(map[string]bool)

	add := func(inputPath, baseInputDir string) {
		if seen[inputPath] {
			return
		}
		seen[inputPath] = true
		files = append(files, FileToConvert{
			InputPath:  inputPath,
			OutputPath: resolveOutputPath(inputPath, outputDir, baseInputDir),
		})
	}

	for _, input := range inputs {
		switch {
		case isGlobPattern(input):
			matches, err := doublestar.FilepathGlob(input)
			if err != nil {
				return nil, fmt.Errorf("bad pattern %q: %w", input, err)
			}
			for _, m := range matches {
				if fileutil.IsMarkdownFile(m) && fileutil.FileExists(m) {
					add(m, "")
				}
			}

		case fileutil.DirExists(input):
			err := filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() || !fileutil.IsMarkdownFile(path) {
					return nil
				}
				add(path, input)
				return nil
			})
			if err != nil {
				return nil, err
			}

		default:
			// A file named explicitly must exist and be markdown.
			if !fileutil.FileExists(input) {
				return nil, fmt.Errorf("%w: %s", os.ErrNotExist, input)
			}
			if !fileutil.IsMarkdownFile(input) {
				return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(input))
			}
			add(input, "")
		}
	}

	return files, nil
}

// isGlobPattern reports whether the argument contains glob metacharacters.
func isGlobPattern(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// resolveOutputPath determines the PDF output path for a markdown file.
// An output ending in .pdf names the file directly; otherwise output is a
// directory, and files discovered under baseInputDir keep their relative
// subdirectories.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+".pdf")
	}

	if strings.HasSuffix(outputDir, ".pdf") {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base+".pdf")
		}
	}

	return filepath.Join(outputDir, base+".pdf")
}
