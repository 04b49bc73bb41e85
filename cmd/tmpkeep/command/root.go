package command

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/CristovaoMNunes/tmpkeep/internal/app"
)

// Options describes the collaborators and defaults required to build the CLI.
type Options struct {
	Version      string
	TempRoot     string
	Prefix       string
	PurgePattern string
	RunStage     func(app.Config) error
	RunPurge     func(app.Config) error
	InitLogging  func(debug bool)
}

// Execute builds and runs the Cobra command tree using the supplied options.
func Execute(opts Options, args []string) error {
	root := newRootCommand(opts)

	if args != nil {
		root.SetArgs(args)
	}

	return root.Execute()
}

// newRootCommand builds the root Cobra command with global flags and hooks.
func newRootCommand(opts Options) *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:          "tmpkeep",
		Short:        "Stage files through tracked temporary workspaces",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.InitLogging != nil {
				opts.InitLogging(debug)
			}
		},
	}

	root.Version = opts.Version
	root.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug mode")

	root.AddCommand(newStageCommand(opts, func() bool { return debug }))
	root.AddCommand(newPurgeCommand(opts, func() bool { return debug }))

	return root
}

// newStageCommand constructs the stage subcommand responsible for copying
// sources into a tracked workspace.
func newStageCommand(opts Options, debug func() bool) *cobra.Command {
	var (
		keep         bool
		tempRoot     string
		manifestName string
	)

	cmd := &cobra.Command{
		Use:   "stage <file>...",
		Short: "Copy files into a tracked temporary workspace (use - for stdin)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := tempRoot
			if root == "" {
				root = opts.TempRoot
			}

			cfg, err := app.NewConfig(root,
				app.WithSources(args),
				app.WithPrefix(opts.Prefix),
				app.WithKeep(keep),
				app.WithManifestName(manifestName),
				app.WithDebug(debug()),
				app.WithVersion(opts.Version),
			)
			if err != nil {
				return err
			}

			if opts.RunStage == nil {
				return errors.New("no stage handler provided")
			}

			return opts.RunStage(cfg)
		},
	}

	cmd.Flags().BoolVarP(&keep, "keep", "k", false, "Keep the workspace instead of removing it at exit")
	cmd.Flags().StringVar(&tempRoot, "temp-root", "", "Base directory for temporary workspaces")
	cmd.Flags().StringVar(&manifestName, "manifest-name", "", "Manifest file name for kept workspaces")

	return cmd
}

// newPurgeCommand constructs the purge subcommand that removes leftover
// workspaces from earlier runs.
func newPurgeCommand(opts Options, debug func() bool) *cobra.Command {
	var (
		pattern  string
		tempRoot string
	)

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove leftover temporary workspaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := tempRoot
			if root == "" {
				root = opts.TempRoot
			}

			resolvedPattern := pattern
			if resolvedPattern == "" {
				resolvedPattern = opts.PurgePattern
			}

			cfg, err := app.NewConfig(root,
				app.WithPrefix(opts.Prefix),
				app.WithPurgePattern(resolvedPattern),
				app.WithDebug(debug()),
				app.WithVersion(opts.Version),
			)
			if err != nil {
				return err
			}

			if opts.RunPurge == nil {
				return errors.New("no purge handler provided")
			}

			return opts.RunPurge(cfg)
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "Glob pattern matching leftover workspace names")
	cmd.Flags().StringVar(&tempRoot, "temp-root", "", "Base directory for temporary workspaces")

	return cmd
}
