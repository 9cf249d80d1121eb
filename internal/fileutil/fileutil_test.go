package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hmarchal/mdpress/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists - File existence check
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	// Create a test file
	testFile := filepath.Join(tempDir, "test.md")
	if err := os.WriteFile(testFile, []byte("content"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	// Create a test directory
	testDir := filepath.Join(tempDir, "testdir")
	if err := os.Mkdir(testDir, 0755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{
			name: "existing file returns true",
			path: testFile,
			want: true,
		},
		{
			name: "directory returns false",
			path: testDir,
			want: false,
		},
		{
			name: "nonexistent path returns false",
			path: filepath.Join(tempDir, "nonexistent"),
			want: false,
		},
		{
			name: "empty path returns false",
			path: "",
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.FileExists(tt.path)
			if got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDirExists - Directory existence check
// ---------------------------------------------------------------------------

func TestDirExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	testFile := filepath.Join(tempDir, "test.md")
	if err := os.WriteFile(testFile, []byte("content"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{
			name: "existing directory returns true",
			path: tempDir,
			want: true,
		},
		{
			name: "file returns false",
			path: testFile,
			want: false,
		},
		{
			name: "nonexistent path returns false",
			path: filepath.Join(tempDir, "missing"),
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.DirExists(tt.path)
			if got != tt.want {
				t.Errorf("DirExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReplaceExt - Extension replacement
// ---------------------------------------------------------------------------

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		newExt string
		want   string
	}{
		{
			name:   "markdown to pdf",
			path:   "report.md",
			newExt: ".pdf",
			want:   "report.pdf",
		},
		{
			name:   "nested path keeps directories",
			path:   "docs/guide/intro.markdown",
			newExt: ".pdf",
			want:   "docs/guide/intro.pdf",
		},
		{
			name:   "no extension appends",
			path:   "README",
			newExt: ".pdf",
			want:   "README.pdf",
		},
		{
			name:   "only last extension replaced",
			path:   "archive.tar.md",
			newExt: ".pdf",
			want:   "archive.tar.pdf",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.ReplaceExt(tt.path, tt.newExt)
			if got != tt.want {
				t.Errorf("ReplaceExt(%q, %q) = %q, want %q", tt.path, tt.newExt, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestTitleFromPath - Title derivation
// ---------------------------------------------------------------------------

func TestTitleFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "simple name",
			path: "readme.md",
			want: "Readme",
		},
		{
			name: "hyphens become spaces",
			path: "release-notes.md",
			want: "Release Notes",
		},
		{
			name: "underscores become spaces",
			path: "user_guide.md",
			want: "User Guide",
		},
		{
			name: "mixed separators",
			path: "docs/release-notes_v2.md",
			want: "Release Notes V2",
		},
		{
			name: "already capitalized",
			path: "CHANGELOG.md",
			want: "CHANGELOG",
		},
		{
			name: "no extension",
			path: "notes",
			want: "Notes",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.TitleFromPath(tt.path)
			if got != tt.want {
				t.Errorf("TitleFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsMarkdownFile - Markdown extension detection
// ---------------------------------------------------------------------------

func TestIsMarkdownFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want bool
	}{
		{
			name: "md extension",
			path: "doc.md",
			want: true,
		},
		{
			name: "markdown extension",
			path: "doc.markdown",
			want: true,
		},
		{
			name: "uppercase extension",
			path: "DOC.MD",
			want: true,
		},
		{
			name: "text file",
			path: "doc.txt",
			want: false,
		},
		{
			name: "no extension",
			path: "doc",
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.IsMarkdownFile(tt.path)
			if got != tt.want {
				t.Errorf("IsMarkdownFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
