package wordset

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Read builds a Set from r, one word per line.
// Lines are filtered exactly as New filters words: blank lines and '#'
// comments are skipped. A read failure is wrapped in
// ErrSourceUnavailable; nothing partial is returned.
func Read(r io.Reader) (*Set, error) {
	s := &Set{words: make(map[string]struct{})}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s.add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	return s, nil
}

// Load opens the file at path and builds a Set from it via Read.
// A missing or unreadable file yields ErrSourceUnavailable.
// The file is closed on every return path.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrSourceUnavailable, path, err)
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%w (file %q)", err, path)
	}

	return s, nil
}
