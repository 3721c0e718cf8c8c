// Package runner orchestrates scoring across files, directories, and stdin,
// fanning file work out to a bounded worker pool. Results keep input order
// regardless of completion order.
package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dotcommander/copyscore/internal/config"
	"github.com/dotcommander/copyscore/internal/discovery"
	"github.com/dotcommander/copyscore/internal/frontend"
	"github.com/dotcommander/copyscore/internal/scoring"
	"github.com/dotcommander/copyscore/internal/types"
)

// Result is the outcome for a single piece of content. Exactly one of
// Report and Err is set.
type Result struct {
	File   string            `json:"file"`
	Type   types.ContentType `json:"type,omitempty"`
	Report *scoring.Report   `json:"report,omitempty"`
	Err    string            `json:"error,omitempty"`
}

// Summary aggregates a scoring run.
type Summary struct {
	StartTime    time.Time
	TotalFiles   int
	Scored       int
	Failed       int
	AverageScore int
	Results      []Result
}

// Runner scores content through a shared engine. The engine is read-only
// across workers.
type Runner struct {
	engine *scoring.Engine
	cfg    *config.Config
}

// New creates a Runner.
func New(engine *scoring.Engine, cfg *config.Config) *Runner {
	return &Runner{engine: engine, cfg: cfg}
}

type job struct {
	path string // path to read and display
	rel  string // path relative to its scan root, for type detection
}

// RunPaths scores each named file, expanding directories via discovery.
func (r *Runner) RunPaths(paths []string) (*Summary, error) {
	start := time.Now()

	var jobs []job
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if info.IsDir() {
			files, err := discovery.DiscoverFiles(p, r.cfg.Exclude)
			if err != nil {
				return nil, err
			}
			for _, f := range files {
				jobs = append(jobs, job{path: filepath.Join(p, f), rel: f})
			}
		} else {
			jobs = append(jobs, job{path: p, rel: filepath.Base(p)})
		}
	}

	results := make([]Result, len(jobs))
	sem := make(chan struct{}, r.cfg.Concurrency)
	var wg sync.WaitGroup
	for i, j := range jobs {
		wg.Add(1)
		go func(i int, j job) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = r.scoreFile(j)
		}(i, j)
	}
	wg.Wait()

	return summarize(start, results), nil
}

// RunContent scores a single in-memory document, e.g. stdin.
func (r *Runner) RunContent(name, content string) *Summary {
	start := time.Now()
	result := r.scoreContent(name, name, content)
	return summarize(start, []Result{result})
}

func (r *Runner) scoreFile(j job) Result {
	raw, err := os.ReadFile(j.path)
	if err != nil {
		return Result{File: j.path, Err: err.Error()}
	}
	return r.scoreContent(j.path, j.rel, string(raw))
}

func (r *Runner) scoreContent(display, rel, content string) Result {
	meta, body, err := frontend.Parse(content)
	if err != nil {
		return Result{File: display, Err: err.Error()}
	}

	ct, err := r.resolveType(meta, rel)
	if err != nil {
		return Result{File: display, Err: err.Error()}
	}

	product := meta.Product
	if r.cfg.Product != "" {
		product = r.cfg.Product
	}
	audience := meta.TargetAudience
	if r.cfg.Audience != "" {
		audience = r.cfg.Audience
	}

	report := r.engine.Score(scoring.Request{
		Content:        body,
		ContentType:    ct,
		TargetAudience: audience,
		Product:        product,
	})
	return Result{File: display, Type: ct, Report: &report}
}

// resolveType picks the content type: the --type flag wins, then file
// frontmatter (validated strictly), then path-based inference.
func (r *Runner) resolveType(meta *frontend.Meta, rel string) (types.ContentType, error) {
	if r.cfg.ContentType != "" {
		return types.ContentType(r.cfg.ContentType), nil
	}
	if meta.ContentType != "" {
		return types.ParseContentType(meta.ContentType)
	}
	return discovery.DetectContentType(rel), nil
}

func summarize(start time.Time, results []Result) *Summary {
	summary := &Summary{
		StartTime:  start,
		TotalFiles: len(results),
		Results:    results,
	}
	total := 0
	for _, res := range results {
		if res.Err != "" {
			summary.Failed++
			continue
		}
		summary.Scored++
		total += res.Report.ConversionScore
	}
	if summary.Scored > 0 {
		summary.AverageScore = total / summary.Scored
	}
	return summary
}
