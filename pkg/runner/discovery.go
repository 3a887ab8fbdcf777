package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// detectionSampleSize bounds how much of a file is read for content
// based language detection.
const detectionSampleSize = 8 * 1024

// Discover finds Markdown files matching opts and returns them as a
// sorted list of absolute paths. Directories are walked and filtered
// by extension; files named explicitly are accepted on extension or,
// failing that, on content-based detection, so extensionless
// documents can still be processed when asked for directly.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	extensions := opts.effectiveExtensions()

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			discovered, err := walkDirectory(ctx, absPath, workDir, extensions, opts)
			if err != nil {
				return nil, err
			}
			for _, f := range discovered {
				add(f)
			}
			continue
		}

		if excluded(relTo(workDir, absPath), opts.ExcludeGlobs) {
			continue
		}
		if hasMarkdownExtension(absPath, extensions) || isMarkdownContent(absPath) {
			add(absPath)
		}
	}

	sort.Strings(files)
	return files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		return os.Getwd()
	}
	return filepath.Abs(workDir)
}

func walkDirectory(ctx context.Context, root, workDir string, extensions []string, opts Options) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath := relTo(workDir, path)

		if entry.IsDir() {
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if excluded(relPath, opts.ExcludeGlobs) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				return nil
			}
			target, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil
			}
			if target.IsDir() {
				if !opts.FollowSymlinks {
					return nil
				}
				// Walk the target path, not the symlink, so WalkDir's
				// Lstat on the root does not recurse forever.
				subFiles, err := walkDirectory(ctx, realPath, workDir, extensions, opts)
				if err != nil {
					return err
				}
				files = append(files, subFiles...)
				return nil
			}
		}

		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		if !hasMarkdownExtension(path, extensions) {
			return nil
		}
		if excluded(relPath, opts.ExcludeGlobs) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}
	return files, nil
}

func relTo(workDir, path string) string {
	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		return path
	}
	return rel
}

func hasMarkdownExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// isMarkdownContent asks the language classifier whether an
// explicitly named file without a Markdown extension is Markdown.
func isMarkdownContent(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	sample := make([]byte, detectionSampleSize)
	n, err := f.Read(sample)
	if n == 0 && err != nil {
		return false
	}
	sample = sample[:n]

	if lang, safe := enry.GetLanguageByContent(filepath.Base(path), sample); safe {
		return lang == "Markdown"
	}
	for _, lang := range enry.GetLanguagesByFilename(filepath.Base(path), sample, nil) {
		if lang == "Markdown" {
			return true
		}
	}
	return false
}

func excluded(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchGlob(relPath, pattern) {
			return true
		}
	}
	return false
}

// matchGlob matches relPath against pattern. Plain patterns use
// filepath.Match against the full path and the base name; ** patterns
// match by prefix, suffix, and path component.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if !strings.Contains(pattern, "**") {
		if matched, err := filepath.Match(pattern, path); err == nil && matched {
			return true
		}
		matched, err := filepath.Match(pattern, filepath.Base(path))
		return err == nil && matched
	}

	prefix, suffix, _ := strings.Cut(pattern, "**")
	prefix = strings.TrimSuffix(prefix, "/")
	suffix = strings.TrimPrefix(suffix, "/")

	if prefix != "" {
		if path != prefix && !strings.HasPrefix(path, prefix+"/") {
			return false
		}
	}
	if suffix == "" {
		return true
	}
	if strings.HasSuffix(path, suffix) {
		return true
	}
	for _, part := range strings.Split(path, "/") {
		if matched, err := filepath.Match(suffix, part); err == nil && matched {
			return true
		}
	}
	return false
}
