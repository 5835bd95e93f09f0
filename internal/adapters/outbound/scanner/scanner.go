package scanner

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/openkraft/a11ykraft/internal/domain"
)

var skipDirs = map[string]bool{
	"vendor":           true,
	"node_modules":     true,
	".git":             true,
	"dist":             true,
	"build":            true,
	"coverage":         true,
	"testdata":         true,
	".next":            true,
	".nuxt":            true,
	".svelte-kit":      true,
	"storybook-static": true,
	".a11ykraft":       true,
}

// nonComponentSuffixes mark files that sit next to components but are not
// implementations of them.
var nonComponentSuffixes = []string{".test", ".spec", ".stories", ".story", ".d"}

// FileScanner implements domain.SourceScanner by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

func (s *FileScanner) Scan(projectPath string, extensions []string, excludePaths ...string) (*domain.ScanResult, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}
	if len(extensions) == 0 {
		extensions = domain.DefaultExtensions
	}

	// Extra excludes match a directory name or a path relative to the root.
	extraSkip := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		extraSkip[filepath.ToSlash(strings.TrimSuffix(p, "/"))] = true
	}

	result := &domain.ScanResult{
		RootPath: absPath,
	}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, _ := filepath.Rel(absPath, path)
		rel := filepath.ToSlash(relPath)

		if d.IsDir() {
			if rel == "." {
				return nil
			}
			if skipDirs[d.Name()] || extraSkip[d.Name()] || extraSkip[rel] {
				result.SkippedDirs = append(result.SkippedDirs, rel)
				return filepath.SkipDir
			}
			return nil
		}

		if isComponentFile(d.Name(), extensions) {
			result.ComponentFiles = append(result.ComponentFiles, rel)
		}
		return nil
	})

	slices.Sort(result.ComponentFiles)
	return result, err
}

func isComponentFile(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	if !slices.Contains(extensions, ext) {
		return false
	}
	stem := strings.TrimSuffix(name, ext)
	for _, suffix := range nonComponentSuffixes {
		if strings.HasSuffix(stem, suffix) {
			return false
		}
	}
	return true
}
