package source

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ulikunitz/xz"

	"github.com/tsawler/folio/model"
)

// Page records can be large; a full broadsheet page with per-token segments
// runs to several megabytes of JSON.
const maxLineSize = 64 << 20

var bundleSuffixes = []string{".jsonl", ".jsonl.bz2", ".jsonl.xz"}

// Options controls bundle discovery.
type Options struct {
	// Shuffle randomizes the order of bundle files before streaming.
	Shuffle bool
}

// Scanner streams page records from one or more bundle files, in file order
// and line order within each file.
type Scanner struct {
	files []string
	next  int

	file    io.Closer
	scanner *bufio.Scanner
	current string

	page model.Page
	err  error
}

// New creates a Scanner for a bundle file or a directory of bundles.
func New(path string, opts Options) (*Scanner, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}

	var files []string
	if info.IsDir() {
		err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isBundle(p) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("source: walking %s: %w", path, err)
		}
		sort.Strings(files)
	} else {
		files = []string{path}
	}

	if opts.Shuffle {
		rand.Shuffle(len(files), func(i, j int) {
			files[i], files[j] = files[j], files[i]
		})
	}

	logrus.Debugf("Found %d page bundle(s) under %s", len(files), path)
	return &Scanner{files: files}, nil
}

func isBundle(path string) bool {
	for _, suffix := range bundleSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// Next advances to the next page record. It returns false when the input is
// exhausted or an error occurred; Err distinguishes the two.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}

	for {
		if s.scanner == nil && !s.openNext() {
			return false
		}

		for s.scanner.Scan() {
			line := bytes.TrimSpace(s.scanner.Bytes())
			if len(line) == 0 {
				continue
			}

			s.page = model.Page{}
			if err := json.Unmarshal(line, &s.page); err != nil {
				s.err = fmt.Errorf("source: decoding page record in %s: %w", s.current, err)
				s.close()
				return false
			}
			return true
		}

		if err := s.scanner.Err(); err != nil {
			s.err = fmt.Errorf("source: reading %s: %w", s.current, err)
			s.close()
			return false
		}

		s.close()
	}
}

// Page returns the record read by the last successful call to Next. The
// returned pointer is only valid until the next call to Next.
func (s *Scanner) Page() *model.Page {
	return &s.page
}

// Err returns the first error encountered during iteration, if any.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) openNext() bool {
	if s.next >= len(s.files) {
		return false
	}

	path := s.files[s.next]
	s.next++

	f, err := os.Open(path)
	if err != nil {
		s.err = fmt.Errorf("source: %w", err)
		return false
	}

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(path, ".bz2"):
		reader = bzip2.NewReader(f)
	case strings.HasSuffix(path, ".xz"):
		xzReader, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			s.err = fmt.Errorf("source: opening xz stream %s: %w", path, err)
			return false
		}
		reader = xzReader
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 1<<20), maxLineSize)

	s.file = f
	s.scanner = scanner
	s.current = path
	logrus.Debugf("Streaming pages from %s", path)
	return true
}

func (s *Scanner) close() {
	if s.file != nil {
		s.file.Close()
		s.file = nil
	}
	s.scanner = nil
	s.current = ""
}
