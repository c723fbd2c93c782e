package filestore

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/benvon/zenith-task/internal/models"
	"go.uber.org/zap"
)

// Persister loads and saves the whole task book and category list.
// Every save replaces the previous contents.
type Persister interface {
	LoadTasks() (*Book, error)
	SaveTasks(book *Book) error
	LoadCategories() ([]string, error)
	SaveCategories(categories []string) error
}

// Files persists tasks and categories to two flat UTF-8 text files
type Files struct {
	tasksPath      string
	categoriesPath string
	logger         *zap.Logger
}

var _ Persister = (*Files)(nil)

// NewFiles creates a persister over the given task and category files
func NewFiles(tasksPath, categoriesPath string, logger *zap.Logger) *Files {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Files{
		tasksPath:      tasksPath,
		categoriesPath: categoriesPath,
		logger:         logger,
	}
}

// LoadTasks reads the task file. A missing file yields an empty book.
func (f *Files) LoadTasks() (*Book, error) {
	book := NewBook()

	lines, err := readLines(f.tasksPath)
	if errors.Is(err, fs.ErrNotExist) {
		return book, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	for n, line := range lines {
		task, ok := ParseLine(line)
		if !ok {
			if strings.TrimSpace(line) != "" {
				f.logger.Warn("skipping_malformed_task_line",
					zap.String("path", f.tasksPath),
					zap.Int("line", n+1),
				)
			}
			continue
		}
		book.Append(task)
	}
	return book, nil
}

// SaveTasks rewrites the task file with one line per task, grouped by
// category in book order
func (f *Files) SaveTasks(book *Book) error {
	var sb strings.Builder
	for _, category := range book.Categories() {
		for _, task := range book.Tasks(category) {
			sb.WriteString(FormatLine(task))
			sb.WriteByte('\n')
		}
	}
	if err := writeFileAtomic(f.tasksPath, sb.String()); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// LoadCategories reads the category file. A missing file yields the
// default category only.
func (f *Files) LoadCategories() ([]string, error) {
	lines, err := readLines(f.categoriesPath)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{models.DefaultCategory}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	categories := make([]string, 0, len(lines))
	for _, line := range lines {
		categories = append(categories, strings.TrimSpace(line))
	}
	return categories, nil
}

// SaveCategories rewrites the category file, one name per line
func (f *Files) SaveCategories(categories []string) error {
	var sb strings.Builder
	for _, c := range categories {
		sb.WriteString(c)
		sb.WriteByte('\n')
	}
	if err := writeFileAtomic(f.categoriesPath, sb.String()); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// writeFileAtomic writes content to a temp file next to path and renames
// it over path, so readers never observe a partially written file.
func writeFileAtomic(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
