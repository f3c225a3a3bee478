// Package vault is the document-store collaborator: campaign documents
// are plain markdown files under a root directory, addressed by
// root-relative paths.
package vault

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Read when the document does not exist.
var ErrNotFound = errors.New("document not found")

type Vault struct {
	root    string
	exclude []string
}

func New(root string, exclude []string) *Vault {
	cleaned := make([]string, 0, len(exclude))
	for _, path := range exclude {
		if path == "" {
			continue
		}
		cleaned = append(cleaned, filepath.Clean(path))
	}
	return &Vault{root: filepath.Clean(root), exclude: cleaned}
}

func (v *Vault) Root() string { return v.root }

// Read returns the text of a document by root-relative path.
func (v *Vault) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(v.root, path))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// ListDocuments walks the vault for markdown files, skipping excluded
// paths, and returns root-relative paths in walk order.
func (v *Vault) ListDocuments() ([]string, error) {
	var files []string
	err := filepath.WalkDir(v.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(v.root, path)
		if relErr != nil {
			return relErr
		}
		if d.IsDir() {
			if v.isExcluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}
		if v.isExcluded(rel) {
			return nil
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking vault: %w", err)
	}
	return files, nil
}

// ResolveLink maps a raw link target, as written inside fromPath, to a
// root-relative path. Targets are tried relative to the linking
// document's directory, then the vault root, then by unique base name
// anywhere in the vault.
func (v *Vault) ResolveLink(rawTarget, fromPath string) (string, bool) {
	target := strings.TrimSpace(rawTarget)
	if target == "" {
		return "", false
	}
	if !strings.HasSuffix(strings.ToLower(target), ".md") {
		target += ".md"
	}
	target = filepath.ToSlash(filepath.Clean(target))

	candidates := []string{
		filepath.ToSlash(filepath.Join(filepath.Dir(fromPath), target)),
		target,
	}
	for _, candidate := range candidates {
		if v.exists(candidate) {
			return candidate, true
		}
	}

	base := filepath.Base(target)
	files, err := v.ListDocuments()
	if err != nil {
		return "", false
	}
	for _, file := range files {
		if filepath.Base(file) == base {
			return file, true
		}
	}
	return "", false
}

func (v *Vault) exists(rel string) bool {
	info, err := os.Stat(filepath.Join(v.root, rel))
	return err == nil && !info.IsDir()
}

func (v *Vault) isExcluded(rel string) bool {
	clean := filepath.Clean(rel)
	for _, exclude := range v.exclude {
		if exclude == clean || strings.HasPrefix(clean, exclude+string(os.PathSeparator)) {
			return true
		}
	}
	return false
}
