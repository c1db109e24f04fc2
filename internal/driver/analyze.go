package driver

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"cxxdoc/internal/diag"
	"cxxdoc/internal/engine"
	"cxxdoc/internal/observ"
	"cxxdoc/internal/project"
	"cxxdoc/internal/publicapi"
	"cxxdoc/internal/source"
	"cxxdoc/internal/trace"
)

// Options configures a run over many files.
type Options struct {
	Policy         publicapi.Policy
	Jobs           int // <= 0: GOMAXPROCS
	MaxDiagnostics int
	Encoding       string
	Cache          *DiskCache // nil disables caching
	Sink           ProgressSink
	// KeepResults retains the engine result (tokens, records) of files that
	// were analyzed rather than served from the cache.
	KeepResults bool
}

// FileResult is the outcome of one file.
type FileResult struct {
	Path   string
	Report publicapi.Report
	Cached bool
	// Engine is set for freshly analyzed files when KeepResults is on.
	Engine *engine.Result
	Timing observ.Report
}

// Result is the outcome of a run.
type Result struct {
	Files   []FileResult
	Summary Summary
}

// AnalyzeFiles analyzes files in parallel. Results keep the order of files.
// A file that cannot be read yields a partial report with an IO diagnostic;
// only cancellation aborts the run.
func AnalyzeFiles(ctx context.Context, files []string, opts Options) (*Result, error) {
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "analyze")

	for _, f := range files {
		emit(opts.Sink, Event{File: f, Stage: StageLoad, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))

	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = analyzeOne(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.End(err.Error())
		return nil, err
	}

	res := &Result{Files: results, Summary: Summarize(results)}
	span.WithExtra("files", fmt.Sprint(len(files))).
		WithExtra("coverage", fmt.Sprintf("%.1f", res.Summary.Coverage())).
		End("")
	return res, nil
}

// AnalyzePaths discovers headers under paths and analyzes them.
func AnalyzePaths(ctx context.Context, paths []string, discover DiscoverOptions, opts Options) (*Result, error) {
	files, err := Discover(paths, discover)
	if err != nil {
		return nil, err
	}
	return AnalyzeFiles(ctx, files, opts)
}

func analyzeOne(ctx context.Context, path string, opts Options) FileResult {
	ctx, span := trace.Start(ctx, trace.ScopeFile, path)
	timer := observ.NewTimer()
	started := time.Now()

	emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusWorking})
	loadIdx := timer.Begin("load")
	fs := source.NewFileSet()
	// #nosec G304 -- path comes from discovery
	raw, err := os.ReadFile(path)
	if err != nil {
		timer.End(loadIdx, "failed")
		emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err, Elapsed: time.Since(started)})
		span.End("load failed")
		return FileResult{Path: path, Report: ioReport(path, diag.IOLoadFileError, "failed to load file: "+err.Error()), Timing: timer.Report()}
	}
	id, err := fs.AddBytes(path, raw, opts.Encoding, 0)
	if err != nil {
		timer.End(loadIdx, "decode failed")
		emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err, Elapsed: time.Since(started)})
		span.End("decode failed")
		return FileResult{Path: path, Report: ioReport(path, diag.IODecodeError, err.Error()), Timing: timer.Report()}
	}
	file := fs.Get(id)
	timer.End(loadIdx, "")

	key := CacheKey(project.Digest(file.Hash), opts.Policy, opts.MaxDiagnostics)
	if opts.Cache != nil {
		var payload DiskPayload
		if ok, err := opts.Cache.Get(key, &payload); err == nil && ok && payload.Content == project.Digest(file.Hash) {
			rep := normalize(payload.Report)
			rep.File = path
			emit(opts.Sink, Event{File: path, Stage: StageAnalyze, Status: StatusDone, Cached: true, Elapsed: time.Since(started)})
			span.WithExtra("cached", "true").End("")
			return FileResult{Path: path, Report: rep, Cached: true, Timing: timer.Report()}
		}
	}

	emit(opts.Sink, Event{File: path, Stage: StageAnalyze, Status: StatusWorking})
	analyzeIdx := timer.Begin("analyze")
	res := engine.Analyze(ctx, file, engine.Options{
		Policy:         opts.Policy,
		MaxDiagnostics: opts.MaxDiagnostics,
		Path:           path,
	})
	timer.End(analyzeIdx, "")

	if opts.Cache != nil {
		// кэш это оптимизация, ошибку записи не поднимаем
		_ = opts.Cache.Put(key, &DiskPayload{Content: project.Digest(file.Hash), Report: res.Report})
	}

	out := FileResult{Path: path, Report: res.Report, Timing: timer.Report()}
	if opts.KeepResults {
		out.Engine = res
	}
	emit(opts.Sink, Event{File: path, Stage: StageAnalyze, Status: StatusDone, Elapsed: time.Since(started)})
	span.WithExtra("total", fmt.Sprint(res.Report.Total)).
		WithExtra("documented", fmt.Sprint(res.Report.Documented)).
		End("")
	return out
}

// ioReport is the report of a file that could not be read.
func ioReport(path string, code diag.Code, msg string) publicapi.Report {
	rep := publicapi.Build(path, nil, nil, publicapi.DefaultPolicy(), nil)
	rep.Diagnostics = []publicapi.Finding{{
		Severity: diag.SevError.String(),
		Code:     code.ID(),
		Message:  msg,
	}}
	rep.Partial = true
	return rep
}

// normalize restores empty collections that msgpack decodes as nil.
func normalize(rep publicapi.Report) publicapi.Report {
	if rep.Items == nil {
		rep.Items = []publicapi.Item{}
	}
	if rep.ByKind == nil {
		rep.ByKind = map[string][]string{}
	}
	return rep
}
