package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"etxdir/internal/source"
)

// ParseDirResult содержит результат разбора одного файла директории.
type ParseDirResult struct {
	Path   string // относительный путь
	Result *ParseResult
}

// listDiagramFiles возвращает отсортированный список всех *.puml и *.txt
// файлов в директории.
func listDiagramFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".puml") || strings.HasSuffix(path, ".txt") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ParseDir parses every diagram file under dir in parallel, jobs workers at
// a time (0 = GOMAXPROCS). Results come back in sorted path order.
func ParseDir(ctx context.Context, dir string, maxDiagnostics, jobs int) ([]ParseDirResult, error) {
	files, err := listDiagramFiles(dir)
	if err != nil {
		return nil, err
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]ParseDirResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Parse(path, maxDiagnostics)
			if err != nil {
				return err
			}
			// Диагностики печатаются относительно сканируемой директории.
			res.FileSet.SetBaseDir(dir)
			rel, relErr := source.RelativePath(path, dir)
			if relErr != nil {
				rel = path
			}
			results[i] = ParseDirResult{Path: rel, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
