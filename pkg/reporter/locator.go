// --- START OF FINAL REVISED FILE pkg/reporter/locator.go ---
package reporter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/stackvity/cucumber-reporting/pkg/util"
)

// Locator finds the Cucumber JSON files a run should report on.
type Locator struct {
	root     string
	excludes []string
	hooks    Hooks
	logger   *slog.Logger
}

// NewLocator creates a Locator for opts.CucumberOutput. Exclude patterns are validated here.
func NewLocator(opts *Options, loggerHandler slog.Handler) (*Locator, error) {
	logger := slog.New(loggerHandler).With(slog.String("component", "locator"))
	for _, p := range opts.ExcludePatterns {
		if !util.ValidPattern(p) {
			logger.Error("Invalid exclude pattern", slog.String("pattern", p))
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, p)
		}
	}
	hooks := opts.EventHooks
	if hooks == nil {
		hooks = &NoOpHooks{}
	}
	return &Locator{
		root:     opts.CucumberOutput,
		excludes: opts.ExcludePatterns,
		hooks:    hooks,
		logger:   logger,
	}, nil
}

// LocateFiles applies the locator rules to path with no exclude patterns and no hooks.
func LocateFiles(ctx context.Context, path string) ([]string, error) {
	l := &Locator{
		root:   path,
		hooks:  &NoOpHooks{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return l.Locate(ctx)
}

// Locate returns absolute paths, sorted:
//   - missing path: empty, nil error
//   - regular file: just that file, whatever its extension
//   - directory: every regular *.json file at any depth not matched by an exclude
//     pattern; symlinked directories are followed, each physical directory once
//
// Traversal errors are returned wrapped in ErrLocateFailed.
func (l *Locator) Locate(ctx context.Context) ([]string, error) {
	absRoot, err := filepath.Abs(l.root)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot resolve absolute path for %q: %w", ErrLocateFailed, l.root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("Cucumber output path does not exist", slog.String("path", absRoot))
			return []string{}, nil
		}
		l.logger.Error("Cannot access cucumber output path", slog.String("path", absRoot), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: cannot access %q: %w", ErrLocateFailed, absRoot, err)
	}

	if !info.IsDir() {
		l.logger.Debug("Cucumber output is a single file", slog.String("path", absRoot))
		l.notify(absRoot)
		return []string{absRoot}, nil
	}

	l.logger.Debug("Walking cucumber output directory", slog.String("path", absRoot), slog.Int("excludes", len(l.excludes)))
	files := make([]string, 0)
	visited := make(map[string]struct{})
	if walkErr := l.walk(ctx, absRoot, absRoot, "", visited, &files); walkErr != nil {
		if errors.Is(walkErr, context.Canceled) || errors.Is(walkErr, context.DeadlineExceeded) {
			l.logger.Info("Locating cancelled", slog.String("reason", walkErr.Error()))
			return nil, walkErr
		}
		return nil, fmt.Errorf("%w: walking %q: %w", ErrLocateFailed, absRoot, walkErr)
	}

	sort.Strings(files)
	l.logger.Debug("Located cucumber json files", slog.Int("count", len(files)))
	return files, nil
}

// walk collects *.json files beneath dir, following symlinked directories.
// Paths are reported under displayDir so a linked root keeps the caller's
// spelling; relPrefix is dir's slash path relative to the locate root, used
// for exclude matching. Each physical directory is walked at most once.
func (l *Locator) walk(ctx context.Context, dir, displayDir, relPrefix string, visited map[string]struct{}, files *[]string) error {
	realDir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return err
	}
	if _, seen := visited[realDir]; seen {
		l.logger.Debug("Directory already walked, skipping", slog.String("path", displayDir), slog.String("target", realDir))
		return nil
	}

	return filepath.WalkDir(realDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			l.logger.Warn("Error accessing path during walk", slog.String("path", path), slog.String("error", err.Error()))
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rel, err := filepath.Rel(realDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			visited[realDir] = struct{}{}
			return nil
		}
		relPath := filepath.ToSlash(filepath.Join(relPrefix, rel))
		displayPath := filepath.Join(displayDir, rel)

		isLink := d.Type()&fs.ModeSymlink != 0
		isDir, isRegular := d.IsDir(), d.Type().IsRegular()
		if isLink {
			info, statErr := os.Stat(path)
			if statErr != nil {
				l.logger.Debug("Skipping dangling symlink", slog.String("path", displayPath), slog.String("error", statErr.Error()))
				return nil
			}
			isDir, isRegular = info.IsDir(), info.Mode().IsRegular()
		}

		if pattern, excluded := l.excludedBy(relPath); excluded {
			l.logger.Debug("Path excluded", slog.String("path", relPath), slog.Bool("isDir", isDir), slog.String("pattern", pattern))
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if isDir {
			if isLink {
				return l.walk(ctx, path, displayPath, relPath, visited, files)
			}
			if _, seen := visited[path]; seen {
				return filepath.SkipDir
			}
			visited[path] = struct{}{}
			return nil
		}
		if !isRegular || !strings.HasSuffix(d.Name(), JSONExtension) {
			return nil
		}

		*files = append(*files, displayPath)
		l.notify(displayPath)
		return nil
	})
}

func (l *Locator) excludedBy(relPath string) (string, bool) {
	for _, p := range l.excludes {
		if util.MatchesExclude(p, relPath) {
			return p, true
		}
	}
	return "", false
}

func (l *Locator) notify(path string) {
	if hookErr := l.hooks.OnFileLocated(path); hookErr != nil {
		l.logger.Warn("Event hook OnFileLocated failed", slog.String("path", path), slog.String("error", hookErr.Error()))
	}
}

// --- END OF FINAL REVISED FILE pkg/reporter/locator.go ---
