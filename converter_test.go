package mdpress_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hmarchal/mdpress"
)

// ---------------------------------------------------------------------------
// TestNewConverter - Construction and option validation
// ---------------------------------------------------------------------------

func TestNewConverter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []mdpress.Option
		wantErr error
	}{
		{
			name: "defaults",
			opts: nil,
		},
		{
			name: "custom page settings",
			opts: []mdpress.Option{
				mdpress.WithPageSettings(&mdpress.PageSettings{
					Size:        "a4",
					Orientation: "landscape",
					Margin:      0.5,
				}),
			},
		},
		{
			name: "break before headings",
			opts: []mdpress.Option{mdpress.WithBreakBefore(1, 2)},
		},
		{
			name: "invalid page size",
			opts: []mdpress.Option{
				mdpress.WithPageSettings(&mdpress.PageSettings{
					Size:        "tabloid",
					Orientation: "portrait",
					Margin:      1,
				}),
			},
			wantErr: mdpress.ErrInvalidPageSize,
		},
		{
			name: "margin out of range",
			opts: []mdpress.Option{
				mdpress.WithPageSettings(&mdpress.PageSettings{
					Size:        "letter",
					Orientation: "portrait",
					Margin:      5,
				}),
			},
			wantErr: mdpress.ErrInvalidMargin,
		},
		{
			name:    "break level out of range",
			opts:    []mdpress.Option{mdpress.WithBreakBefore(4)},
			wantErr: mdpress.ErrInvalidBreakLevel,
		},
		{
			name:    "break level zero",
			opts:    []mdpress.Option{mdpress.WithBreakBefore(0)},
			wantErr: mdpress.ErrInvalidBreakLevel,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv, err := mdpress.NewConverter(tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewConverter() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && conv == nil {
				t.Fatal("NewConverter() returned nil converter without error")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestConvert - In-memory conversion
// ---------------------------------------------------------------------------

func TestConvert(t *testing.T) {
	t.Parallel()

	conv, err := mdpress.NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	t.Run("basic document", func(t *testing.T) {
		t.Parallel()

		result, err := conv.Convert(context.Background(), mdpress.Input{
			Markdown: "# Title\n\nSome **bold** text with `code`.\n\n- item one\n- item two\n\n```go\nx := 1\n```\n\n---\n",
		})
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if !bytes.HasPrefix(result.PDF, []byte("%PDF")) {
			t.Error("result does not start with %PDF header")
		}
	})

	t.Run("empty markdown", func(t *testing.T) {
		t.Parallel()

		_, err := conv.Convert(context.Background(), mdpress.Input{Markdown: ""})
		if !errors.Is(err, mdpress.ErrEmptyMarkdown) {
			t.Errorf("Convert() error = %v, want ErrEmptyMarkdown", err)
		}
	})

	t.Run("invalid per-conversion page", func(t *testing.T) {
		t.Parallel()

		_, err := conv.Convert(context.Background(), mdpress.Input{
			Markdown: "# Hi",
			Page:     &mdpress.PageSettings{Size: "letter", Orientation: "diagonal", Margin: 1},
		})
		if !errors.Is(err, mdpress.ErrInvalidOrientation) {
			t.Errorf("Convert() error = %v, want ErrInvalidOrientation", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := conv.Convert(ctx, mdpress.Input{Markdown: "# Hi"})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Convert() error = %v, want context.Canceled", err)
		}
	})

	t.Run("title fallback adds content", func(t *testing.T) {
		t.Parallel()

		titled, err := conv.Convert(context.Background(), mdpress.Input{
			Markdown: "just a paragraph",
			Title:    "Fallback Title",
		})
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		untitled, err := conv.Convert(context.Background(), mdpress.Input{
			Markdown: "just a paragraph",
		})
		if err != nil {
			t.Fatalf("Convert() error = %v", err)
		}
		if len(titled.PDF) <= len(untitled.PDF) {
			t.Error("titled output should carry more content than untitled output")
		}
	})
}

// ---------------------------------------------------------------------------
// TestConvertFile - Single file conversion
// ---------------------------------------------------------------------------

func TestConvertFile(t *testing.T) {
	t.Parallel()

	conv, err := mdpress.NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	t.Run("writes pdf next to input by default", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "release-notes.md")
		if err := os.WriteFile(input, []byte("## Changes\n\n- fixed things\n"), 0644); err != nil {
			t.Fatalf("failed to write input: %v", err)
		}

		out, err := conv.ConvertFile(context.Background(), input, "")
		if err != nil {
			t.Fatalf("ConvertFile() error = %v", err)
		}
		want := filepath.Join(dir, "release-notes.pdf")
		if out != want {
			t.Errorf("output path = %q, want %q", out, want)
		}

		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF")) {
			t.Error("output file does not start with %PDF header")
		}
	})

	t.Run("explicit output path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "doc.md")
		if err := os.WriteFile(input, []byte("# Doc\n"), 0644); err != nil {
			t.Fatalf("failed to write input: %v", err)
		}
		want := filepath.Join(dir, "custom.pdf")

		out, err := conv.ConvertFile(context.Background(), input, want)
		if err != nil {
			t.Fatalf("ConvertFile() error = %v", err)
		}
		if out != want {
			t.Errorf("output path = %q, want %q", out, want)
		}
	})

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()

		_, err := conv.ConvertFile(context.Background(), filepath.Join(t.TempDir(), "nope.md"), "")
		if !errors.Is(err, mdpress.ErrInputNotFound) {
			t.Errorf("ConvertFile() error = %v, want ErrInputNotFound", err)
		}
	})

	t.Run("unwritable output wraps render failure", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "doc.md")
		if err := os.WriteFile(input, []byte("# Doc\n"), 0644); err != nil {
			t.Fatalf("failed to write input: %v", err)
		}

		_, err := conv.ConvertFile(context.Background(), input, filepath.Join(dir, "missing", "out.pdf"))
		if !errors.Is(err, mdpress.ErrRenderFailed) {
			t.Errorf("ConvertFile() error = %v, want ErrRenderFailed", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestConvertFiles - Sequential batch, best effort
// ---------------------------------------------------------------------------

func TestConvertFiles(t *testing.T) {
	t.Parallel()

	conv, err := mdpress.NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	dir := t.TempDir()
	good1 := filepath.Join(dir, "first.md")
	good2 := filepath.Join(dir, "second.md")
	missing := filepath.Join(dir, "missing.md")
	for _, p := range []string{good1, good2} {
		if err := os.WriteFile(p, []byte("# Heading\n\ntext\n"), 0644); err != nil {
			t.Fatalf("failed to write input: %v", err)
		}
	}

	outDir := filepath.Join(dir, "out")
	if err := os.Mkdir(outDir, 0755); err != nil {
		t.Fatalf("failed to create output dir: %v", err)
	}

	results := conv.ConvertFiles(context.Background(), []string{good1, missing, good2}, outDir)
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}

	// Order matches inputs.
	if results[0].InputPath != good1 || results[1].InputPath != missing || results[2].InputPath != good2 {
		t.Errorf("result order does not match input order: %+v", results)
	}

	// One failure does not stop the batch.
	if results[0].Err != nil {
		t.Errorf("results[0].Err = %v, want nil", results[0].Err)
	}
	if !errors.Is(results[1].Err, mdpress.ErrInputNotFound) {
		t.Errorf("results[1].Err = %v, want ErrInputNotFound", results[1].Err)
	}
	if results[2].Err != nil {
		t.Errorf("results[2].Err = %v, want nil", results[2].Err)
	}

	// Outputs land in the output directory.
	wantOut := filepath.Join(outDir, "first.pdf")
	if results[0].OutputPath != wantOut {
		t.Errorf("results[0].OutputPath = %q, want %q", results[0].OutputPath, wantOut)
	}
	if _, err := os.Stat(wantOut); err != nil {
		t.Errorf("expected output file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "second.pdf")); err != nil {
		t.Errorf("expected output file missing: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestConverter_StyleOverridesBetweenConversions
// ---------------------------------------------------------------------------

func TestConverter_StyleOverridesBetweenConversions(t *testing.T) {
	t.Parallel()

	conv, err := mdpress.NewConverter()
	if err != nil {
		t.Fatalf("NewConverter() error = %v", err)
	}

	input := mdpress.Input{Markdown: "# Title\n\nbody text\n"}
	if _, err := conv.Convert(context.Background(), input); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	err = conv.Styles().Override(mdpress.KindHeading1, mdpress.StyleOverride{
		Size: mdpress.Float64(36),
	})
	if err != nil {
		t.Fatalf("Override() error = %v", err)
	}

	// The next conversion picks up the override without reconstruction.
	result, err := conv.Convert(context.Background(), input)
	if err != nil {
		t.Fatalf("Convert() after override error = %v", err)
	}
	if !bytes.HasPrefix(result.PDF, []byte("%PDF")) {
		t.Error("result does not start with %PDF header")
	}
}
