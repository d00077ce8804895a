// Package adapter contains filesystem and image infrastructure used by the domain layer.
package adapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "aeronib.com/pkg/navhdr/internal/model"
)

const recursiveSuffix = "..."

// SiteFSAdapter abstracts filesystem access for the workflow so it can be tested
// without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SiteFSAdapter interface {
	// Get resolves path patterns into HTML pages. A pattern ending in "/..." is
	// scanned recursively, a directory is scanned without sub-directories and a
	// file is taken as is. Paths matching any exclude regex are dropped.
	Get(ctx context.Context, roots []m.Path, exclude ...string) ([]m.File, error)

	// Images lists the JPEG files of dir (case-insensitive .jpg/.jpeg), sorted by name.
	Images(dir m.Path) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// MkdirAll creates a directory and its parents.
	MkdirAll(path m.Path) error

	// CopyFile copies src to dst keeping the mode and modification time.
	CopyFile(src, dst m.Path) error

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSiteFSAdapter implements SiteFSAdapter on the local filesystem.
type LocalSiteFSAdapter struct{}

// NewLocalSiteFSAdapter constructs a LocalSiteFSAdapter.
func NewLocalSiteFSAdapter() *LocalSiteFSAdapter {
	return &LocalSiteFSAdapter{}
}

// Get implements SiteFSAdapter.
func (a *LocalSiteFSAdapter) Get(ctx context.Context, roots []m.Path, exclude ...string) ([]m.File, error) {
	excludes, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	if len(roots) == 0 {
		roots = []m.Path{"."}
	}

	seen := make(map[m.Path]struct{})

	var files []m.File

	for _, root := range roots {
		dir, recursive := splitPattern(string(root))

		found, err := a.scan(ctx, dir, recursive, excludes)
		if err != nil {
			return nil, err
		}

		for _, file := range found {
			if _, dup := seen[file.FullPath]; dup {
				continue
			}

			seen[file.FullPath] = struct{}{}
			files = append(files, file)
		}
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].FullPath < files[j].FullPath
	})

	return files, nil
}

func (a *LocalSiteFSAdapter) scan(ctx context.Context, root string, recursive bool, excludes []*regexp.Regexp) ([]m.File, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		if !isPage(root) || excluded(root, excludes) {
			return nil, nil
		}

		file, err := a.newFile(filepath.Dir(root), root)
		if err != nil {
			return nil, err
		}

		return []m.File{file}, nil
	}

	var files []m.File

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if d.IsDir() {
			if path == root {
				return nil
			}

			if !recursive || skippedDir(d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if !isPage(path) || excluded(path, excludes) {
			return nil
		}

		file, err := a.newFile(root, path)
		if err != nil {
			return err
		}

		files = append(files, file)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func (a *LocalSiteFSAdapter) newFile(root, path string) (m.File, error) {
	hash, err := a.hashFile(path)
	if err != nil {
		return m.File{}, fmt.Errorf("hash error for %s: %w", path, err)
	}

	short, err := filepath.Rel(root, path)
	if err != nil {
		short = path
	}

	return m.File{
		FullPath:  m.Path(path),
		ShortPath: m.Path(filepath.ToSlash(short)),
		Hash:      hash,
	}, nil
}

// hashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSiteFSAdapter) hashFile(path string) (string, error) {
	// #nosec G304 - path comes from walking the configured site root
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// Images implements SiteFSAdapter.
func (a *LocalSiteFSAdapter) Images(dir m.Path) ([]m.Path, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, err
	}

	var images []m.Path

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".jpg", ".jpeg":
			images = append(images, m.Path(filepath.Join(string(dir), entry.Name())))
		}
	}

	sort.Slice(images, func(i, j int) bool {
		return images[i] < images[j]
	})

	return images, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSiteFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSiteFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSiteFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// MkdirAll creates path and any missing parents.
func (a *LocalSiteFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// CopyFile copies a single file, keeping its mode and modification time.
func (a *LocalSiteFSAdapter) CopyFile(src, dst m.Path) error {
	info, err := os.Stat(string(src))
	if err != nil {
		return err
	}

	// #nosec G304 - src is a gallery image selected by Images
	sourceFile, err := os.Open(string(src))
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(string(dst)), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst is inside the configured backup directory
	destFile, err := os.OpenFile(string(dst), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		_ = destFile.Close()
		return err
	}

	if err := destFile.Close(); err != nil {
		return err
	}

	return os.Chtimes(string(dst), info.ModTime(), info.ModTime())
}

// RelPath returns the relative path from base to target.
func (a *LocalSiteFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSiteFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// splitPattern turns "dir/..." into ("dir", true) and "dir" into ("dir", false).
func splitPattern(pattern string) (string, bool) {
	if pattern == recursiveSuffix {
		return ".", true
	}

	trimmed := strings.TrimSuffix(pattern, "/"+recursiveSuffix)
	if trimmed != pattern {
		if trimmed == "" {
			trimmed = "."
		}

		return trimmed, true
	}

	if pattern == "" {
		return ".", false
	}

	return pattern, false
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}

func excluded(path string, excludes []*regexp.Regexp) bool {
	slashed := filepath.ToSlash(path)
	for _, re := range excludes {
		if re.MatchString(slashed) {
			return true
		}
	}

	return false
}

func isPage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	default:
		return false
	}
}

func skippedDir(name string) bool {
	return name == ".git" || name == "node_modules" || strings.HasPrefix(name, ".navhdr")
}
