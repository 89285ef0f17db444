package publish

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/vellum-dev/vellum/pkg/render"
)

// Publisher renders documents and writes them to a Target.
type Publisher struct {
	// Target receives the rendered output.
	Target Target

	// Render configures the renderer. Zero value is compact output.
	Render render.Config

	// Logger logs one line per published item. Nil uses the default.
	Logger *slog.Logger
}

func (p *Publisher) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// Page renders one document and stores it under path.
func (p *Publisher) Page(ctx context.Context, path string, doc *render.Document) error {
	if path == "" {
		return ErrEmptyKey
	}
	if doc == nil {
		return ErrNilDocument
	}

	out := render.New(p.Render).RenderDocument(doc)
	loc, err := p.Target.Put(ctx, path, "text/html; charset=utf-8", bytes.NewReader(out))
	if err != nil {
		return fmt.Errorf("publish: page %s: %w", path, err)
	}
	p.logger().Info("published page", "path", path, "location", loc, "bytes", len(out))
	return nil
}

// Site publishes a set of pages keyed by output path, in sorted path
// order so repeat runs touch the target in the same sequence.
func (p *Publisher) Site(ctx context.Context, pages map[string]*render.Document) error {
	paths := make([]string, 0, len(pages))
	for path := range pages {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if err := p.Page(ctx, path, pages[path]); err != nil {
			return err
		}
	}
	return nil
}

// Assets copies files under dir that match any of the doublestar
// patterns to the target, preserving relative paths as keys. An
// optional ignoreFile (gitignore syntax, relative to dir) filters the
// matches. Returns the number of files copied.
func (p *Publisher) Assets(ctx context.Context, dir string, patterns []string, ignoreFile string) (int, error) {
	var ign *ignore.GitIgnore
	if ignoreFile != "" {
		gi, err := ignore.CompileIgnoreFile(filepath.Join(dir, ignoreFile))
		if err != nil && !os.IsNotExist(err) {
			return 0, fmt.Errorf("publish: ignore file: %w", err)
		}
		ign = gi
	}

	seen := make(map[string]bool)
	var keys []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(os.DirFS(dir), pattern)
		if err != nil {
			return 0, fmt.Errorf("publish: glob %q: %w", pattern, err)
		}
		for _, rel := range matches {
			if seen[rel] {
				continue
			}
			seen[rel] = true
			keys = append(keys, rel)
		}
	}
	sort.Strings(keys)

	copied := 0
	for _, rel := range keys {
		full := filepath.Join(dir, filepath.FromSlash(rel))
		info, err := os.Stat(full)
		if err != nil {
			return copied, fmt.Errorf("publish: asset %s: %w", rel, err)
		}
		if info.IsDir() {
			continue
		}
		if ign != nil && ign.MatchesPath(rel) {
			continue
		}

		if err := p.copyAsset(ctx, rel, full); err != nil {
			return copied, err
		}
		copied++
	}

	p.logger().Info("published assets", "dir", dir, "count", copied)
	return copied, nil
}

func (p *Publisher) copyAsset(ctx context.Context, key, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("publish: asset %s: %w", key, err)
	}
	defer f.Close()

	loc, err := p.Target.Put(ctx, key, contentTypeFor(key), f)
	if err != nil {
		return fmt.Errorf("publish: asset %s: %w", key, err)
	}
	p.logger().Debug("published asset", "key", key, "location", loc)
	return nil
}

// contentTypeFor maps a file name to a MIME type by extension.
func contentTypeFor(name string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
