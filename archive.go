package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
)

// createArchive writes every file under dir into a deflate zip at
// archivePath, keyed by its slash-separated path relative to dir.
// It returns the number of entries written.
func createArchive(dir, archivePath string) (int, error) {
	absArchive, err := filepath.Abs(archivePath)
	if err != nil {
		return 0, fmt.Errorf("resolving archive path: %w", err)
	}

	if parent := filepath.Dir(archivePath); parent != "." {
		if err := os.MkdirAll(parent, 0755); err != nil {
			return 0, fmt.Errorf("creating archive directory: %w", err)
		}
	}

	f, err := os.Create(archivePath)
	if err != nil {
		return 0, fmt.Errorf("creating archive: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	count := 0

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		// The archive may live inside the directory being archived
		if abs, _ := filepath.Abs(path); abs == absArchive {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if err := addArchiveEntry(zw, path, filepath.ToSlash(rel)); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		zw.Close()
		return 0, fmt.Errorf("archiving %s: %w", dir, err)
	}

	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("finalizing archive: %w", err)
	}
	return count, f.Close()
}

func addArchiveEntry(zw *zip.Writer, path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Deflate

	w, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}

	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(w, src)
	return err
}

// readArchive returns the decompressed content of every entry by name
func readArchive(archivePath string) (map[string][]byte, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer r.Close()

	entries := make(map[string][]byte, len(r.File))
	for _, file := range r.File {
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("opening entry %s: %w", file.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("reading entry %s: %w", file.Name, err)
		}
		entries[file.Name] = data
	}
	return entries, nil
}
