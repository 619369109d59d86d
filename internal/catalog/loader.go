package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Loader reads catalog files from a file or a directory tree.
type Loader struct {
	Root   string
	Logger *log.Logger
}

// NewLoader creates a new catalog loader. A nil logger uses log.Default().
func NewLoader(root string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{Root: root, Logger: logger}
}

// Load reads Root, which may be a single YAML file or a directory.
func (l *Loader) Load() (*Catalog, error) {
	info, err := os.Stat(l.Root)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if info.IsDir() {
		return l.LoadAll()
	}
	return l.LoadFile(l.Root)
}

// LoadAll recursively scans Root and merges every YAML file into one
// catalog. Files are visited in lexical path order; unreadable files and
// duplicate style names are skipped with a warning.
func (l *Loader) LoadAll() (*Catalog, error) {
	var paths []string

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: walking directory %s: %w", l.Root, err)
	}

	sort.Strings(paths)

	merged := &Catalog{}
	for _, path := range paths {
		c, err := l.LoadFile(path)
		if err != nil {
			l.Logger.Warn("skipping catalog file", "path", path, "error", err)
			continue
		}
		for _, e := range c.Entries {
			if err := merged.add(e); err != nil {
				l.Logger.Warn("skipping style", "path", path, "error", err)
			}
		}
	}

	l.Logger.Debug("catalog loaded", "root", l.Root, "files", len(paths), "styles", merged.Len())
	return merged, nil
}

// LoadFile loads a single catalog file.
func (l *Loader) LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: reading file %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog: parsing file %s: %w", path, err)
	}
	for i := range c.Entries {
		c.Entries[i].Source = path
	}
	return c, nil
}

// Load resolves the catalog to use.
// Search order: customPath -> ~/.digsim/catalog.yaml -> ./configs/catalog.yaml -> built-in
func Load(customPath string, logger *log.Logger) (*Catalog, error) {
	if logger == nil {
		logger = log.Default()
	}

	// Try custom path first
	if customPath != "" {
		return NewLoader(customPath, logger).Load()
	}

	// Try user config directory, then local configs directory
	candidates := []string{filepath.Join("configs", "catalog.yaml")}
	if userPath := userCatalogPath(); userPath != "" {
		candidates = append([]string{userPath}, candidates...)
	}
	for _, path := range candidates {
		if c, ok := tryCatalog(path, logger); ok {
			return c, nil
		}
	}

	return Default()
}

// tryCatalog loads path if it exists. A file that exists but cannot be
// loaded is reported and skipped.
func tryCatalog(path string, logger *log.Logger) (*Catalog, bool) {
	if _, err := os.Stat(path); err != nil {
		return nil, false
	}
	c, err := NewLoader(path, logger).LoadFile(path)
	if err != nil {
		logger.Warn("ignoring catalog", "path", path, "error", err)
		return nil, false
	}
	logger.Debug("using catalog", "path", path)
	return c, true
}

// userCatalogPath returns the user catalog path, or empty if home is unavailable.
func userCatalogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".digsim", "catalog.yaml")
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
