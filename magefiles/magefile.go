//go:build mage

// Package main contains Mage build targets for file-organizer developer tooling.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir     = "bin"
	binName    = "file-organizer"
	cmdPkg     = "./cmd/file-organizer"
	sandboxDir = "sandbox"
)

// sandboxFiles covers every category, shared extensions, mixed case and
// names without an extension.
var sandboxFiles = []string{
	"holiday.JPG", "logo.svg", "report.pdf", "notes.csv", "todo.txt",
	"config.json", "feed.xml", "script.py", "index.html", "style.css",
	"installer.exe", "track.mp3", "movie.MKV", "backup.tar.gz", "font.woff2",
	"draft.bak", "slides.key", "budget.ods", "page.htm", "Makefile",
	".hidden", "mystery.xyz",
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Sandbox builds the binary and fills sandbox/ with sample files to organize.
func Sandbox() error {
	mg.Deps(Build)

	if err := os.MkdirAll(filepath.Join(sandboxDir, "Projects"), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", sandboxDir, err)
	}
	for _, name := range sandboxFiles {
		path := filepath.Join(sandboxDir, name)
		if err := os.WriteFile(path, []byte(name+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	fmt.Printf("Wrote %d files to %s/. Try: %s organize %s\n",
		len(sandboxFiles), sandboxDir, filepath.Join(binDir, binName), sandboxDir)
	return nil
}

// Clean removes build output and the sandbox.
func Clean() error {
	for _, dir := range []string{binDir, sandboxDir} {
		if err := sh.Rm(dir); err != nil {
			return err
		}
	}
	return nil
}

// Stats prints project metrics: Go production and test LOC.
func Stats() error {
	prod, tests, err := countGoLines(".")
	if err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", tests)
	return nil
}

// countGoLines counts non-blank lines in Go files under root, split into
// production and _test.go files. Hidden and underscore directories are skipped.
func countGoLines(root string) (prod, tests int, err error) {
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := 0
		sc := bufio.NewScanner(bytes.NewReader(data))
		for sc.Scan() {
			if strings.TrimSpace(sc.Text()) != "" {
				n++
			}
		}
		if strings.HasSuffix(path, "_test.go") {
			tests += n
		} else {
			prod += n
		}
		return nil
	})
	return prod, tests, err
}
