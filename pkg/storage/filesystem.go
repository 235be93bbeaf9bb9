package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/JaimeStill/pdf-tools/pkg/lifecycle"
)

// StagingPattern names the per-process directory created under the base path.
const StagingPattern = "staging-*"

// filesystem implements System using the local filesystem.
// Keys map to paths relative to root, a directory owned by this process
// inside basePath. Nothing else under basePath is touched.
type filesystem struct {
	basePath string
	root     string
	logger   *slog.Logger
}

// New creates a filesystem storage system.
// The base path is resolved to an absolute path during construction;
// the staging directory is created by Start.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	if cfg.BasePath == "" {
		return nil, fmt.Errorf("base_path required")
	}

	absPath, err := filepath.Abs(cfg.BasePath)
	if err != nil {
		return nil, fmt.Errorf("resolve base_path: %w", err)
	}

	return &filesystem{
		basePath: absPath,
		logger:   logger.With("system", "storage"),
	}, nil
}

func (f *filesystem) Start(lc *lifecycle.Coordinator) error {
	f.logger.Info("starting storage system", "base_path", f.basePath)

	if err := os.MkdirAll(f.basePath, 0755); err != nil {
		return fmt.Errorf("create base_path: %w", err)
	}

	root, err := os.MkdirTemp(f.basePath, StagingPattern)
	if err != nil {
		return fmt.Errorf("create staging directory: %w", err)
	}
	f.root = root
	f.logger.Info("staging directory initialized", "root", root)

	lc.OnShutdown(func() {
		<-lc.Context().Done()

		// Non-recursive: files of requests still in flight keep the
		// directory in place and are released by their own Delete.
		if err := os.Remove(f.root); err != nil && !errors.Is(err, fs.ErrNotExist) {
			f.logger.Warn("staging directory not removed", "root", f.root, "error", err)
			return
		}
		f.logger.Info("staging directory removed", "root", f.root)
	})

	return nil
}

func (f *filesystem) Store(ctx context.Context, key string, data []byte) error {
	path, err := f.fullPath(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func (f *filesystem) Path(ctx context.Context, key string) (string, error) {
	path, err := f.fullPath(key)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		if errors.Is(err, fs.ErrPermission) {
			return "", ErrPermissionDenied
		}
		return "", fmt.Errorf("stat file: %w", err)
	}

	return path, nil
}

func (f *filesystem) Delete(ctx context.Context, key string) error {
	path, err := f.fullPath(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if errors.Is(err, fs.ErrPermission) {
			return ErrPermissionDenied
		}
		return fmt.Errorf("remove file: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != f.root && strings.HasPrefix(dir, f.root) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			f.logger.Warn("failed to read directory for cleanup", "dir", dir, "error", err)
			return nil
		}
		if len(entries) == 0 {
			if err := os.Remove(dir); err != nil && !errors.Is(err, fs.ErrNotExist) {
				f.logger.Warn("failed to remove empty directory", "dir", dir, "error", err)
			}
		}
	}

	return nil
}

func (f *filesystem) fullPath(key string) (string, error) {
	if f.root == "" {
		return "", ErrNotStarted
	}
	if key == "" {
		return "", ErrInvalidKey
	}

	cleaned := filepath.Clean(key)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", ErrInvalidKey
	}

	fullPath := filepath.Join(f.root, cleaned)
	if !strings.HasPrefix(fullPath, f.root+string(filepath.Separator)) {
		return "", ErrInvalidKey
	}

	return fullPath, nil
}
