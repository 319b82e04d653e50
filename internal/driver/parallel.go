package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"citrine/internal/diag"
	"citrine/internal/lexer"
	"citrine/internal/parser"
	"citrine/internal/source"
	"citrine/internal/token"
)

// SourceExt is the file extension the directory walkers pick up.
const SourceExt = ".ctn"

// EventKind tags progress callbacks for UI consumers.
type EventKind uint8

const (
	EventFileStart EventKind = iota
	EventFileDone
	EventFileCached
	EventFileFailed
)

// Event is one progress notification. Callbacks may come from multiple
// goroutines; consumers serialize them (a channel works).
type Event struct {
	Kind EventKind
	Path string
	// Errors is the error diagnostic count for Done events.
	Errors int
}

type TokenizeDirResult struct {
	Path   string
	FileID source.FileID
	Tokens []token.Token
	Bag    *diag.Bag
	Err    error // load failure, nil otherwise
}

type ParseDirResult struct {
	Path   string
	FileID source.FileID
	Result parser.Result
	Bag    *diag.Bag
	// Cached is set when the tree was skipped and the verdict came from
	// the disk cache.
	Cached bool
	Err    error
}

// ListSourceFiles returns all source files under dir, sorted so results
// are deterministic regardless of goroutine scheduling.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// TokenizeDir tokenizes every source file under dir in parallel.
func TokenizeDir(ctx context.Context, dir string, maxDiagnostics, jobs int) (*source.FileSet, []TokenizeDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Files are registered up front: FileSet mutation stays on one
	// goroutine, workers only read.
	fileIDs, loadErrs := loadAll(fileSet, files)

	results := make([]TokenizeDirResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(effectiveJobs(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErr, ok := loadErrs[path]; ok {
				results[i] = TokenizeDirResult{Path: path, Err: loadErr}
				return nil
			}
			fileID := fileIDs[path]
			bag := diag.NewBag(maxDiagnostics)
			tokens := lexer.Scan(fileSet.Get(fileID), lexer.Options{
				Reporter: &diag.BagReporter{Bag: bag},
			})
			results[i] = TokenizeDirResult{
				Path:   path,
				FileID: fileID,
				Tokens: tokens,
				Bag:    bag,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// ParseDirOptions configures ParseDir beyond the basics.
type ParseDirOptions struct {
	MaxDiagnostics int
	Jobs           int
	// Cache skips re-parsing files whose content hash has a cached
	// verdict; the tree is not rebuilt for cache hits.
	Cache *DiskCache
	// Progress, when set, receives per-file events.
	Progress func(Event)
}

// ParseDir parses every source file under dir in parallel. Results come
// back in path order.
func ParseDir(ctx context.Context, dir string, opts ParseDirOptions) (*source.FileSet, []ParseDirResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs, loadErrs := loadAll(fileSet, files)

	results := make([]ParseDirResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(effectiveJobs(opts.Jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			notify(opts.Progress, Event{Kind: EventFileStart, Path: path})

			if loadErr, ok := loadErrs[path]; ok {
				results[i] = ParseDirResult{Path: path, Err: loadErr}
				notify(opts.Progress, Event{Kind: EventFileFailed, Path: path})
				return nil
			}
			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			if cached, ok := lookupCached(opts.Cache, file); ok {
				results[i] = ParseDirResult{
					Path:   path,
					FileID: fileID,
					Bag:    cached,
					Cached: true,
				}
				notify(opts.Progress, Event{Kind: EventFileCached, Path: path, Errors: countErrors(cached)})
				return nil
			}

			bag := diag.NewBag(opts.MaxDiagnostics)
			res := parser.ParseFile(file, parser.Options{
				Reporter: &diag.BagReporter{Bag: bag},
			})
			results[i] = ParseDirResult{
				Path:   path,
				FileID: fileID,
				Result: res,
				Bag:    bag,
			}
			storeCached(opts.Cache, file, bag)
			notify(opts.Progress, Event{Kind: EventFileDone, Path: path, Errors: countErrors(bag)})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func loadAll(fileSet *source.FileSet, files []string) (map[string]source.FileID, map[string]error) {
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrs := make(map[string]error)
	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			loadErrs[path] = err
			continue
		}
		fileIDs[path] = fileID
	}
	return fileIDs, loadErrs
}

func effectiveJobs(jobs, files int) int {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return min(jobs, files)
}

func notify(progress func(Event), ev Event) {
	if progress != nil {
		progress(ev)
	}
}

func countErrors(bag *diag.Bag) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError {
			n++
		}
	}
	return n
}
