package rename

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scem/paramrename/internal/hcore/hlog"
	"github.com/scem/paramrename/internal/hfs"
)

const DefaultPattern = "*.json"

const defaultFileMode hfs.FileMode = 0644

// Options configures a batch run.
type Options struct {
	// MappingPath is the rename mapping document.
	MappingPath string
	// TargetDir holds the documents to rewrite, it is not traversed recursively.
	TargetDir string
	// Pattern selects documents by file name, DefaultPattern when empty.
	Pattern string
	// DryRun reports the renames without writing anything.
	DryRun bool
}

// FileResult is the outcome of processing one document.
type FileResult struct {
	Name    string
	Path    string
	Renames []Rename
	Saved   bool
	Err     error
}

// Changed reports whether the document had at least one parameter renamed.
func (r FileResult) Changed() bool {
	return r.Err == nil && len(r.Renames) > 0
}

// Summary aggregates the results of a batch run, in processing order.
type Summary struct {
	Files  []FileResult
	DryRun bool
}

// Total is the number of documents selected for the run.
func (s Summary) Total() int {
	return len(s.Files)
}

// Changed is the number of documents updated, or that would be in a dry run.
func (s Summary) Changed() int {
	var n int
	for _, f := range s.Files {
		if f.Changed() {
			n++
		}
	}
	return n
}

// Failed is the number of documents that hit a per-file error.
func (s Summary) Failed() int {
	var n int
	for _, f := range s.Files {
		if f.Err != nil {
			n++
		}
	}
	return n
}

// Processed is the number of files that were read, rewritten and, when needed, saved without error.
func (s Summary) Processed() int {
	return s.Total() - s.Failed()
}

// Errors returns the per-file errors, in processing order.
func (s Summary) Errors() []error {
	var errs []error
	for _, f := range s.Files {
		if f.Err != nil {
			errs = append(errs, f.Err)
		}
	}
	return errs
}

func (s Summary) String() string {
	if s.DryRun {
		return fmt.Sprintf("%v out of %v files would be updated.", s.Changed(), s.Total())
	}

	return fmt.Sprintf("%v out of %v files were updated.", s.Changed(), s.Total())
}

// Run rewrites every document of opts.TargetDir matching opts.Pattern, one at a time, in
// lexicographic order.
//
// The returned error is only set when the batch could not run: the mapping or the
// target directory could not be loaded, or ctx was cancelled. Failures on a single
// document are reported on its FileResult and do not stop the batch.
func Run(ctx context.Context, fs hfs.FS, opts Options) (Summary, error) {
	logger := hlog.From(ctx)

	summary := Summary{DryRun: opts.DryRun}

	m, err := LoadMapping(fs, opts.MappingPath)
	if err != nil {
		return summary, err
	}

	logger.Debug("loaded mapping", "path", opts.MappingPath, "nodes", len(m), "renames", m.Len())

	pattern := opts.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}

	names, err := hfs.GlobDir(ctx, fs, opts.TargetDir, pattern)
	if err != nil {
		if errors.Is(err, hfs.ErrNotExist) {
			return summary, &NotFoundError{Path: opts.TargetDir, Err: err}
		}

		return summary, fmt.Errorf("list %v: %w", opts.TargetDir, err)
	}

	logger.Info(fmt.Sprintf("Found %v files to process...", len(names)))

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		res := processFile(ctx, fs, m, filepath.Join(opts.TargetDir, name), opts.DryRun)
		res.Name = name

		summary.Files = append(summary.Files, res)
	}

	logger.Info(summary.String())

	return summary, nil
}

func withPath(err error, path string) error {
	var perr *ParseError
	if errors.As(err, &perr) && perr.Path == "" {
		perr.Path = path
	}

	return err
}

func processFile(ctx context.Context, fs hfs.FS, m Mapping, path string, dryRun bool) FileResult {
	logger := hlog.From(ctx)

	res := FileResult{Path: path}

	fail := func(err error) FileResult {
		res.Err = err
		logger.Error("skipping file", "file", path, "err", err)

		return res
	}

	logger.Info(fmt.Sprintf("Processing %v...", path))

	b, err := hfs.ReadFile(fs, path)
	if err != nil {
		return fail(&NotFoundError{Path: path, Err: err})
	}

	doc, err := ParseDocument(b)
	if err != nil {
		return fail(withPath(err, path))
	}

	newDoc, renames, err := m.Rewrite(doc)
	if err != nil {
		return fail(withPath(err, path))
	}

	for _, r := range renames {
		logger.Info(fmt.Sprintf("  Updating %v", r))
	}
	res.Renames = renames

	if len(renames) == 0 {
		logger.Info(fmt.Sprintf("  No changes needed for %v", path))

		return res
	}

	if dryRun {
		logger.Info(fmt.Sprintf("  Changes not saved to %v (dry run)", path))

		return res
	}

	err = save(fs, path, newDoc)
	if err != nil {
		return fail(&WriteError{Path: path, Err: err})
	}
	res.Saved = true

	logger.Info(fmt.Sprintf("  Changes saved to %v", path))

	return res
}

func save(fs hfs.FS, path string, doc Document) error {
	b, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	// Symlinked documents are updated at their target, the link stays in place.
	target, err := fs.EvalSymlinks(path)
	if err != nil {
		return err
	}

	mode := defaultFileMode
	if info, err := fs.Stat(target); err == nil {
		mode = info.Mode().Perm()
	}

	// The rename below only needs a writable directory, the document itself must be writable too.
	f, err := fs.Open(target, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	err = f.Close()
	if err != nil {
		return err
	}

	return hfs.AtomicWriteFile(fs, target, b, mode)
}
