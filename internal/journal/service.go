package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aifina/aifina/internal/model"
)

// Service loads ledger lines from a journal file or a directory of them.
type Service struct {
	path string
}

// NewService creates a journal Service rooted at path.
func NewService(path string) *Service {
	return &Service{path: path}
}

// Ledger is the normalized content of one or more journal files.
type Ledger struct {
	Lines    []model.LedgerLine
	Warnings []RowWarning
	Files    []string
}

// Files returns the journal files under the service path: the path itself
// when it is a file, otherwise every *.csv in the directory in name order.
func (s *Service) Files() ([]string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", s.path, err)
	}
	if !info.IsDir() {
		return []string{s.path}, nil
	}

	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading ledger dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		files = append(files, filepath.Join(s.path, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// Load reads and normalizes every journal file.
func (s *Service) Load() (*Ledger, error) {
	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	ledger := &Ledger{Files: files}
	for _, path := range files {
		lines, warnings, err := ReadFile(path)
		if err != nil {
			return nil, err
		}
		ledger.Lines = append(ledger.Lines, lines...)
		ledger.Warnings = append(ledger.Warnings, warnings...)
	}
	return ledger, nil
}

// ReadFile reads one journal file. Warnings are labeled with the file name.
func ReadFile(path string) ([]model.LedgerLine, []RowWarning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	lines, warnings, err := ReadLines(f)
	if err != nil {
		return nil, nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	name := filepath.Base(path)
	for i := range warnings {
		warnings[i].File = name
	}
	return lines, warnings, nil
}

// Create writes lines to path, creating parent directories. It refuses to
// overwrite an existing file.
func Create(path string, lines []model.LedgerLine) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("journal %s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking journal %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating journal dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating journal: %w", err)
	}
	defer f.Close()

	if err := WriteLines(f, lines); err != nil {
		return fmt.Errorf("writing journal: %w", err)
	}
	return nil
}
