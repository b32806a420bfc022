// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package selector asks the operator which directory to organize.
package selector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoInput is returned when input ends before a directory is chosen.
var ErrNoInput = errors.New("no directory selected: input closed")

const menu = `Which directory do you want to organize?
1. The current directory
2. One directory back
3. One directory forward (create if not exists)
4. Specify a directory
`

// Selector runs the numbered directory menu over a reader and writer.
type Selector struct {
	in    *bufio.Reader
	out   io.Writer
	getwd func() (string, error)
}

// New returns a Selector reading answers from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Selector {
	return &Selector{
		in:    bufio.NewReader(in),
		out:   out,
		getwd: os.Getwd,
	}
}

// Select shows the menu until the operator picks a usable directory and
// returns its path. Invalid choices and missing paths re-prompt.
func (s *Selector) Select() (string, error) {
	for {
		fmt.Fprint(s.out, menu)
		option, err := s.prompt("Select an option (1-4): ")
		if err != nil {
			return "", err
		}

		switch option {
		case "1":
			return s.getwd()
		case "2":
			cwd, err := s.getwd()
			if err != nil {
				return "", err
			}
			return filepath.Dir(cwd), nil
		case "3":
			dir, ok, err := s.childDirectory()
			if err != nil || ok {
				return dir, err
			}
		case "4":
			dir, err := s.prompt("Enter the path of the directory you want to organize: ")
			if err != nil {
				return "", err
			}
			if isDir(dir) {
				return dir, nil
			}
			fmt.Fprintln(s.out, "The directory does not exist. Please try again.")
		default:
			fmt.Fprintln(s.out, "Invalid option. Please select between 1 and 4.")
		}
	}
}

// childDirectory prompts for a directory under the working directory and
// creates it if needed. ok is false when the operator must be asked again.
func (s *Selector) childDirectory() (dir string, ok bool, err error) {
	name, err := s.prompt("Enter the name of the new directory: ")
	if err != nil {
		return "", false, err
	}
	if name == "" {
		fmt.Fprintln(s.out, "The directory name cannot be empty. Please try again.")
		return "", false, nil
	}

	cwd, err := s.getwd()
	if err != nil {
		return "", false, err
	}
	dir = filepath.Join(cwd, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("creating %s: %w", dir, err)
	}
	return dir, true, nil
}

func (s *Selector) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return "", ErrNoInput
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
