// Package processor drives the import grouping over files, directories and
// standard input: it reads, transforms, reports and writes back.
package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"github.com/siyuan-infoblox/ts-imports-group/pkg/config"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/formatter"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/resolve"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/utils"
)

// Options controls what happens with a transformed file
type Options struct {
	InPlace bool // write changed files back
	Check   bool // report files that would change and fail
	Diff    bool // print a unified diff for changed files
	Jobs    int  // concurrent files, GOMAXPROCS when <= 0
	NoColor bool

	Stdout io.Writer
	Stderr io.Writer
}

// Result is the outcome for one file
type Result struct {
	Path    string
	Changed bool
	Output  string // transformed text, or the unified diff with Diff
	Err     error
}

// Processor applies one project's settings to its files
type Processor struct {
	settings config.Settings
	opts     Options
	isApp    formatter.AppPredicate

	updated   *color.Color
	unchanged *color.Color
	failed    *color.Color
}

// New creates a Processor. Application specifiers are resolved against
// <settings.Root>/<settings.Format.BaseDir>.
func New(settings config.Settings, opts Options) *Processor {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.GOMAXPROCS(0)
	}
	if len(settings.Extensions) == 0 {
		settings.Extensions = utils.DefaultExtensions
	}
	baseDir := settings.Format.BaseDir
	if baseDir == "" {
		baseDir = formatter.DefaultBaseDir
	}

	p := &Processor{
		settings:  settings,
		opts:      opts,
		isApp:     resolve.New(settings.Root, baseDir).Predicate(),
		updated:   color.New(color.FgGreen),
		unchanged: color.New(color.Faint),
		failed:    color.New(color.FgRed, color.Bold),
	}
	if opts.NoColor {
		p.updated.DisableColor()
		p.unchanged.DisableColor()
		p.failed.DisableColor()
	}
	return p
}

// Transform runs the formatter on src with the processor's configuration
func (p *Processor) Transform(src string) string {
	return formatter.Transform(src, p.settings.Format, p.isApp)
}

// ProcessReader transforms r and writes the result to stdout, or a diff
// when Diff is set. With Check the result is only compared.
func (p *Processor) ProcessReader(r io.Reader, name string) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadStdin, err)
	}
	out := p.Transform(string(src))
	changed := out != string(src)

	switch {
	case p.opts.Check:
		if changed {
			fmt.Fprintf(p.opts.Stderr, errors.InfoMsgFileNeedsUpdate+"\n", name)
			return errors.ErrCheckFailed
		}
		return nil
	case p.opts.Diff:
		if !changed {
			return nil
		}
		return p.writeDiff(name, string(src), out)
	}
	_, err = io.WriteString(p.opts.Stdout, out)
	return err
}

// ProcessPath processes a file or a directory
func (p *Processor) ProcessPath(ctx context.Context, path string) error {
	return p.ProcessPaths(ctx, []string{path})
}

// ProcessPaths processes files and directories. A lone file without any
// output mode is printed to stdout.
func (p *Processor) ProcessPaths(ctx context.Context, paths []string) error {
	var files []string
	sawDir := false
	for _, path := range paths {
		isDir, err := utils.IsDirectory(path)
		if err != nil {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
		}
		if !isDir {
			files = append(files, path)
			continue
		}
		sawDir = true
		found, err := utils.FindSourceFiles(path, p.settings.Extensions, p.settings.Exclude)
		if err != nil {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindSourceFiles, err)
		}
		if len(found) == 0 {
			fmt.Fprintf(p.opts.Stderr, errors.InfoMsgNoSourceFilesFound+"\n", path)
			continue
		}
		fmt.Fprintf(p.opts.Stderr, errors.InfoMsgFoundSourceFiles+"\n", len(found), path)
		files = append(files, found...)
	}

	if !sawDir && len(files) == 1 && !p.dryRun() {
		return p.printFile(files[0])
	}
	if sawDir && p.dryRun() {
		fmt.Fprintln(p.opts.Stderr, errors.WarnMsgProcessingDirWithoutInPlace)
		fmt.Fprintln(p.opts.Stderr, errors.InfoMsgUseInPlaceFlag)
	}
	if len(files) == 0 {
		return nil
	}
	if sawDir {
		fmt.Fprintf(p.opts.Stderr, errors.InfoMsgProjectRoot+"\n\n", p.settings.Root)
	}

	results, err := p.ProcessFiles(ctx, files)
	if err != nil {
		return err
	}
	return p.report(results)
}

// ProcessFiles transforms files concurrently. Results keep the order of files.
func (p *Processor) ProcessFiles(ctx context.Context, files []string) ([]Result, error) {
	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(p.opts.Jobs, max(len(files), 1)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = p.processFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (p *Processor) processFile(path string) Result {
	res := Result{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
		return res
	}
	src, err := os.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
		return res
	}

	out := p.Transform(string(src))
	res.Changed = out != string(src)
	res.Output = out

	if p.opts.InPlace && !p.opts.Check && res.Changed {
		if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
			res.Err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToWriteFile, err)
			return res
		}
	}

	if p.opts.Diff && res.Changed {
		diff, err := unifiedDiff(path, string(src), out)
		if err != nil {
			res.Err = fmt.Errorf("%s: %w", errors.ErrMsgFailedToDiffFile, err)
			return res
		}
		res.Output = diff
	}
	return res
}

// report prints one line per file, diffs, and the summary
func (p *Processor) report(results []Result) error {
	processed, failed, changed := 0, 0, 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			p.failed.Fprintf(p.opts.Stderr, errors.InfoMsgErrorProcessing+"\n", res.Path, res.Err)
			continue
		}
		processed++
		switch {
		case !res.Changed:
			p.unchanged.Fprintf(p.opts.Stderr, errors.InfoMsgFileUnchanged+"\n", res.Path)
		case p.opts.InPlace && !p.opts.Check:
			changed++
			p.updated.Fprintf(p.opts.Stderr, errors.InfoMsgFileUpdated+"\n", res.Path)
		default:
			changed++
			p.updated.Fprintf(p.opts.Stderr, errors.InfoMsgFileNeedsUpdate+"\n", res.Path)
		}
		if p.opts.Diff && res.Changed {
			fmt.Fprint(p.opts.Stdout, res.Output)
		}
	}

	fmt.Fprintf(p.opts.Stderr, errors.InfoMsgProcessedCount, processed)
	if failed > 0 {
		fmt.Fprintf(p.opts.Stderr, errors.InfoMsgErrorCount, failed)
	}
	fmt.Fprintln(p.opts.Stderr)

	if failed > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, failed)
	}
	if p.opts.Check && changed > 0 {
		return fmt.Errorf("%w: "+errors.ErrMsgFilesNeedFormatting, errors.ErrCheckFailed, changed)
	}
	return nil
}

func (p *Processor) printFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToReadFile, err)
	}
	_, err = io.WriteString(p.opts.Stdout, p.Transform(string(src)))
	return err
}

func (p *Processor) writeDiff(name, before, after string) error {
	text, err := unifiedDiff(name, before, after)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToDiffFile, err)
	}
	_, err = io.WriteString(p.opts.Stdout, text)
	return err
}

// dryRun reports whether no output mode was requested
func (p *Processor) dryRun() bool {
	return !p.opts.InPlace && !p.opts.Check && !p.opts.Diff
}

func unifiedDiff(name, before, after string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: name,
		ToFile:   name,
		Context:  3,
	})
}
