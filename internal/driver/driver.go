package driver

import (
	"context"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/maciejjwojcik/line2block/internal/comment"
)

// Options configures a ProcessPaths run.
type Options struct {
	// InPlace rewrites each file with its converted content instead of
	// returning the content for printing.
	InPlace bool
	// Jobs caps concurrent file conversions; 0 means GOMAXPROCS.
	Jobs int
}

// Result captures the outcome for one command-line path.
type Result struct {
	Path    string
	Output  string // converted text, set only when not in-place
	Skipped bool   // duplicate of an earlier argument in the same run
	Err     error
}

// ProcessPaths converts every named file and returns one Result per path,
// in argument order. Paths are deduplicated by their literal string as
// given: the second occurrence is marked Skipped and not reprocessed.
// Per-file errors are recorded in the matching Result and never stop the
// other files.
func ProcessPaths(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]Result, len(paths))
	seen := make(map[string]struct{}, len(paths))
	todo := make([]int, 0, len(paths))

	for i, path := range paths {
		results[i] = Result{Path: path}
		if _, dup := seen[path]; dup {
			results[i].Skipped = true
			continue
		}
		seen[path] = struct{}{}
		todo = append(todo, i)
	}
	if len(todo) == 0 {
		return results, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// results are addressed by index, so the workers never share a slot
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(todo)))

	for _, i := range todo {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = convertPath(paths[i], opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}

func convertPath(path string, opts Options) Result {
	res := Result{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}

	converted := comment.Convert(string(data))

	if !opts.InPlace {
		res.Output = converted
		return res
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, []byte(converted), mode.Perm()); err != nil {
		res.Err = err
	}
	return res
}
