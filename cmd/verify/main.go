package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/klauspost/compress/zip"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: verify <notes-directory> <archive.zip>")
	}

	problems, err := verifyArchive(os.Args[1], os.Args[2])
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range problems {
		fmt.Println("  " + p)
	}
	if len(problems) > 0 {
		fmt.Printf("\n%d problems found\n", len(problems))
		os.Exit(1)
	}
	fmt.Println("Archive matches directory")
}

// verifyArchive compares every file under dir with the archive entry of the
// same relative path and returns a sorted list of mismatches
func verifyArchive(dir, archivePath string) ([]string, error) {
	files := make(map[string][]byte)
	absArchive, _ := filepath.Abs(archivePath)

	if err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if abs, _ := filepath.Abs(path); abs == absArchive {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		files[filepath.ToSlash(rel)] = data
		return nil
	}); err != nil {
		return nil, fmt.Errorf("walking directory: %w", err)
	}

	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer r.Close()

	var problems []string
	seen := make(map[string]bool, len(r.File))

	for _, entry := range r.File {
		seen[entry.Name] = true

		want, ok := files[entry.Name]
		if !ok {
			problems = append(problems, "EXTRA: "+entry.Name)
			continue
		}

		got, err := readEntry(entry)
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(got, want) {
			problems = append(problems, "DIFFERS: "+entry.Name)
		}
	}

	for name := range files {
		if !seen[name] {
			problems = append(problems, "MISSING: "+name)
		}
	}

	sort.Strings(problems)
	return problems, nil
}

func readEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("opening entry %s: %w", entry.Name, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
