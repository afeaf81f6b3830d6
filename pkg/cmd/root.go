package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/ts-imports-group/pkg/config"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/formatter"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/processor"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/utils"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/version"
)

const (
	UseDescription   = "tig [flags] PATH..."
	ShortDescription = "TypeScript imports grouper - A tool to group and sort TypeScript imports"
	LongDescription  = `tig is a command-line tool that groups and sorts the import and re-export
statements at the top of TypeScript files.

Statements are organized into groups, each under a generated comment header:
1. Configured pattern groups (Angular by default)
2. Other imports (third-party packages)
3. Application imports (relative paths and modules under the project's baseUrl)

Within each group statements and their imported symbols are sorted, quotes are
normalized and long statements are wrapped, following the project's tslint.json,
tsconfig.json and .tig.toml / .tig.yaml configuration.

PATH can be a file, a directory or "-" for standard input. Directories are
processed recursively for .ts and .tsx files, skipping node_modules.`
)

const stdinPath = "-"

type options struct {
	configPath    string
	inPlace       bool
	check         bool
	diff          bool
	exclude       []string
	jobs          int
	quote         string
	indent        string
	maxLineLength int
	noColor       bool
	showVersion   bool
}

var (
	versionStr string
	rootCmd    = newRootCmd()
)

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   UseDescription,
		Short: ShortDescription,
		Long:  LongDescription,
		Args: func(cmd *cobra.Command, args []string) error {
			return validateArgs(opts, cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, cmd, args)
		},
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a .tig.toml or .tig.yaml file, merged over the project configuration")
	flags.BoolVarP(&opts.inPlace, "in-place", "w", false, "Modify files in place instead of printing to stdout")
	flags.BoolVarP(&opts.check, "check", "c", false, "Report files whose imports are not grouped and exit with an error")
	flags.BoolVarP(&opts.diff, "diff", "d", false, "Print a unified diff of the changes")
	flags.StringSliceVar(&opts.exclude, "exclude", []string{}, "Glob patterns of files and directories to skip (e.g., **/*.spec.ts)")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "Number of files processed concurrently (default: number of CPUs)")
	flags.StringVar(&opts.quote, "quote", "", "Quote style for module specifiers: single, double or none")
	flags.StringVar(&opts.indent, "indent", "", "Indentation unit: tabs or a number of spaces")
	flags.IntVar(&opts.maxLineLength, "max-line-length", 0, "Wrap statements longer than this; 0 disables wrapping")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")
	return cmd
}

func validateArgs(opts *options, cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need file arguments
	if opts.showVersion {
		return nil
	}
	if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
		return err
	}
	for _, arg := range args {
		if arg == stdinPath && len(args) > 1 {
			return fmt.Errorf("%q must be the only path", stdinPath)
		}
	}
	if opts.inPlace && args[0] == stdinPath {
		return fmt.Errorf("--in-place cannot be used with standard input")
	}
	return nil
}

func run(opts *options, cmd *cobra.Command, args []string) error {
	if opts.showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get(versionStr).String())
		return nil
	}

	settings, err := loadSettings(opts, cmd, args)
	if err != nil {
		return err
	}

	p := processor.New(settings, processor.Options{
		InPlace: opts.inPlace,
		Check:   opts.check,
		Diff:    opts.diff,
		Jobs:    opts.jobs,
		NoColor: opts.noColor,
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
	})
	if args[0] == stdinPath {
		return p.ProcessReader(cmd.InOrStdin(), "<stdin>")
	}
	return p.ProcessPaths(cmd.Context(), args)
}

// loadSettings resolves the project configuration for the first path and
// applies the flags that were set explicitly.
func loadSettings(opts *options, cmd *cobra.Command, args []string) (config.Settings, error) {
	start := args[0]
	if start == stdinPath {
		wd, err := os.Getwd()
		if err != nil {
			return config.Settings{}, fmt.Errorf("%s: %w", errors.ErrMsgFailedToGetWorkDir, err)
		}
		start = wd
	}
	root, err := utils.FindProjectRoot(start)
	if err != nil {
		return config.Settings{}, fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	sources := config.DefaultSources()
	if opts.configPath != "" {
		src, err := config.SourceForFile(opts.configPath)
		if err != nil {
			return config.Settings{}, err
		}
		sources = append(sources, src)
	}
	settings, err := config.Resolve(root, sources...)
	if err != nil {
		return config.Settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("quote") {
		q, ok := formatter.ParseQuote(opts.quote)
		if !ok {
			return config.Settings{}, fmt.Errorf("%w: unknown quote %q (valid: single, double, none)", errors.ErrInvalidConfig, opts.quote)
		}
		settings.Format.Quote = q
	}
	if flags.Changed("indent") {
		indent, err := parseIndent(opts.indent)
		if err != nil {
			return config.Settings{}, err
		}
		settings.Format.Indent = indent
	}
	if flags.Changed("max-line-length") {
		settings.Format.MaxLineLength = formatter.LineLength{Enabled: opts.maxLineLength > 0, Limit: opts.maxLineLength}
	}
	settings.Exclude = append(settings.Exclude, opts.exclude...)
	return settings, nil
}

// parseIndent accepts "tabs" (or "tab") and a positive number of spaces
func parseIndent(s string) (string, error) {
	switch strings.ToLower(s) {
	case "tab", "tabs", "\t":
		return "\t", nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return "", fmt.Errorf("%w: invalid indent %q (valid: tabs or a number of spaces)", errors.ErrInvalidConfig, s)
	}
	return strings.Repeat(" ", n), nil
}

func Execute(moduleVersion string) error {
	versionStr = moduleVersion
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
