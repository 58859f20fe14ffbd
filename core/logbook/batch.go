package logbook

import (
	"context"
	"time"

	"github.com/FocuswithJustin/uddf/core/cas"
	"github.com/FocuswithJustin/uddf/core/codec"
	"github.com/FocuswithJustin/uddf/core/validate"
	"github.com/FocuswithJustin/uddf/internal/logging"
)

// FileReport is the outcome of validating one file in a batch.
type FileReport struct {
	Path      string           `json:"path"`
	Digest    cas.Digest       `json:"digest"`
	Size      int              `json:"size"`
	Version   string           `json:"version,omitempty"`
	Generator string           `json:"generator,omitempty"`
	Dives     int              `json:"dives"`
	Result    *validate.Result `json:"result,omitempty"`
	Error     string           `json:"error,omitempty"`
	Duration  time.Duration    `json:"duration_ns"`

	// Err is the read or decode failure behind Error.
	Err error `json:"-"`
}

// Valid reports whether the file decoded and validated without errors.
func (r *FileReport) Valid() bool {
	return r.Err == nil && r.Result != nil && r.Result.IsValid()
}

// ProgressFunc is called once per finished file, in completion order, from
// the goroutine that called ValidateFiles.
type ProgressFunc func(done, total int, report FileReport)

type fileJob struct {
	index int
	path  string
}

type fileResult struct {
	index  int
	report FileReport
}

// ValidateFiles validates paths in parallel with up to workers goroutines
// (zero means one per CPU). Each document is decoded and validated by a
// single worker. Reports are returned in the order of paths. Once ctx is
// done, files not yet started are reported with the context error.
func ValidateFiles(ctx context.Context, paths []string, opts validate.Options, workers int) []FileReport {
	return ValidateFilesWithProgress(ctx, paths, opts, workers, nil)
}

// ValidateFilesWithProgress is ValidateFiles with a progress callback.
func ValidateFilesWithProgress(ctx context.Context, paths []string, opts validate.Options, workers int, progress ProgressFunc) []FileReport {
	reports := make([]FileReport, len(paths))
	if len(paths) == 0 {
		return reports
	}

	pool := newWorkerPool[fileJob, fileResult](workers, len(paths))
	pool.start(func(job fileJob) fileResult {
		if err := ctx.Err(); err != nil {
			return fileResult{index: job.index, report: FileReport{Path: job.path, Err: err, Error: err.Error()}}
		}
		return fileResult{index: job.index, report: ValidateFile(job.path, opts)}
	})
	for i, path := range paths {
		pool.submit(fileJob{index: i, path: path})
	}
	pool.close()

	done := 0
	for res := range pool.resultsChan() {
		reports[res.index] = res.report
		done++
		if progress != nil {
			progress(done, len(paths), res.report)
		}
	}
	return reports
}

// ValidateFile reads, fingerprints, decodes and validates one file.
func ValidateFile(path string, opts validate.Options) (report FileReport) {
	start := time.Now()
	report.Path = path
	defer func() { report.Duration = time.Since(start) }()

	data, err := codec.ReadBytes(path)
	if err != nil {
		report.fail(err)
		logging.Warn("validation_failed", "path", path, "error", err.Error())
		return report
	}
	report.Digest = cas.Sum(data)
	report.Size = len(data)

	doc, res, err := ParseAndValidate(data, opts)
	if err != nil {
		report.fail(err)
		logging.Warn("validation_failed", "path", path, "error", err.Error())
		return report
	}

	report.Version = doc.Version
	report.Generator = doc.Generator.Name
	report.Dives = doc.DiveCount()
	report.Result = res

	logging.ValidationSummary(path, len(res.Errors), len(res.Warnings), "sha256", report.Digest.SHA256)
	return report
}

func (r *FileReport) fail(err error) {
	r.Err = err
	r.Error = err.Error()
}
