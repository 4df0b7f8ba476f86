package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/reclaim/internal/reclaim"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Options holds the parsed command-line configuration.
type Options struct {
	// Path is the directory to scan. Empty means the working directory.
	Path string
	// Target is the directory name to search for.
	Target string
	// Exact requires the directory name to equal Target instead of the path containing it.
	Exact bool
	// MatchAll keeps descending into matched directories.
	MatchAll bool
	// Parallel selects the parallel walker.
	Parallel bool
	// Jobs caps concurrent deletions (0=unbounded).
	Jobs int
	// CountFailed counts the size of failed deletions as freed.
	CountFailed bool
	// Output represents output format (table or json).
	Output string
	// Debug indicates whether debug output is enabled.
	Debug bool
	// NoColor disables styled output.
	NoColor bool
}

// ScanOptions converts the flags into scanner configuration.
func (o Options) ScanOptions() reclaim.ScanOptions {
	opt := reclaim.ScanOptions{
		Target:   o.Target,
		Match:    reclaim.MatchPath,
		Policy:   reclaim.StopAtMatch,
		Parallel: o.Parallel,
	}

	if o.Exact {
		opt.Match = reclaim.MatchName
	}

	if o.MatchAll {
		opt.Policy = reclaim.MatchAll
	}

	return opt
}

//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"table", "json"}

// Validate checks flag values that cobra cannot check on its own.
func (o Options) Validate() error {
	if !slices.Contains(allowedOutputs, o.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", o.Output, allowedOutputs)
	}

	if o.Jobs < 0 {
		return errors.New("jobs cannot be negative")
	}

	return o.ScanOptions().Validate()
}

// registerScanFlags adds the flags shared by every command.
func registerScanFlags(flags *pflag.FlagSet, options *Options) {
	flags.StringVarP(&options.Target, "target", "t", reclaim.DefaultTarget, "Directory name to search for")
	flags.BoolVar(&options.Exact, "exact", false, "Match the directory name exactly instead of any path containing the target")
	flags.BoolVar(&options.MatchAll, "match-all", false, "Keep descending into matched directories and report nested matches")
	flags.BoolVar(&options.Parallel, "parallel-scan", false, "Walk the tree with parallel readers (results are sorted)")
	flags.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.BoolVar(&options.NoColor, "no-color", false, "Disable colored output")
}

// registerDeleteFlags adds the flags only meaningful when deleting.
func registerDeleteFlags(flags *pflag.FlagSet, options *Options) {
	flags.IntVarP(&options.Jobs, "jobs", "j", 0, "Maximum concurrent deletions (0=one per directory)")
	flags.BoolVar(&options.CountFailed, "count-failed", false, "Count the size of directories that failed to delete as freed")
}

// Command builds the cobra command tree.
func (c CLI) Command() *cobra.Command {
	var options Options

	root := &cobra.Command{
		Use:   "reclaim [flags] [path]",
		Short: "Find and delete node_modules directories, reporting the space freed",
		Long: heredoc.Doc(`
			reclaim finds every directory matching a target name (node_modules by default)
			below a path and deletes them all concurrently, then reports the space freed.

			The path defaults to the current working directory. Matching looks only at the
			part of a path below the scanned directory. Matched directories are not
			descended into, so nested matches are removed together with their parent.
			With --match-all nested matches are listed, but only the outermost ones are
			deleted.

			Deletion is irreversible. Use 'reclaim list' to see what would be removed.
		`),
		Example: heredoc.Doc(`
			reclaim                     # delete every node_modules below the current directory
			reclaim list ~/code         # list matches with their sizes, delete nothing
			reclaim -t target --exact   # delete directories named exactly 'target'
			reclaim -j 8 -o json        # at most 8 concurrent deletions, JSON report
		`),
		Version:       c.version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return options.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			options.Path = pathArg(args)

			return runDelete(cmd.Context(), options, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	registerScanFlags(root.PersistentFlags(), &options)
	registerDeleteFlags(root.Flags(), &options)

	root.Flags().SortFlags = false
	root.PersistentFlags().SortFlags = false

	list := &cobra.Command{
		Use:   "list [flags] [path]",
		Short: "List matching directories with their sizes without deleting anything",
		Long: heredoc.Doc(`
			List every directory that 'reclaim' would delete, together with its size
			and a running total. Nothing is removed.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options.Path = pathArg(args)

			return runList(cmd.Context(), options, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	root.AddCommand(list)

	return root
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute(ctx context.Context) error {
	return c.Command().ExecuteContext(ctx)
}

func pathArg(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}
