package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/scem/paramrename/internal/config"
	"github.com/scem/paramrename/internal/hcobra"
	"github.com/scem/paramrename/internal/hcore/hlog"
	"github.com/scem/paramrename/internal/hfs"
	"github.com/scem/paramrename/internal/rename"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	mapping    string
	dir        string
	pattern    string
	dryRun     bool

	plain bool
	debug bool

	levelVar slog.LevelVar
	logger   hlog.Logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newRootCmd(stdout io.Writer) (*cobra.Command, *rootOptions) {
	o := &rootOptions{}
	o.levelVar.Set(slog.LevelInfo)

	cmd := &cobra.Command{
		Use:   "paramrename",
		Short: "Rename node parameters referenced by the connections of JSON documents",
		Long: `Rewrites connections[*].from_node.param_name in every JSON document of a directory,
following a rename mapping of the form {"<node type>": {"old_to_new": {"<old>": "<new>"}}}.

Changed documents are overwritten in place. Running it again is a no-op.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if o.debug {
				o.levelVar.Set(slog.LevelDebug)
			}

			o.logger = hlog.NewTextLogger(cmd.OutOrStdout(), &o.levelVar, o.plain)
			cmd.SetContext(hlog.ContextWithLogger(cmd.Context(), o.logger))

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := newSignalNotifyContext(cmd.Context())
			defer stop()

			fs := hfs.NewOS("")

			cfg, err := o.loadConfig(cmd, fs)
			if err != nil {
				return ErrorWithExitCode{Err: err, ExitCode: ExitFatal}
			}

			hlog.From(ctx).Debug("config", "mapping", cfg.MappingPath, "dir", cfg.TargetDir, "pattern", cfg.Pattern, "dry_run", cfg.DryRun)

			summary, err := rename.Run(ctx, fs, cfg.Options())
			if err != nil {
				if cause := context.Cause(ctx); cause != nil {
					err = fmt.Errorf("%w: %v", err, cause)
				}

				return ErrorWithExitCode{Err: err, ExitCode: ExitFatal}
			}

			if failed := summary.Failed(); failed > 0 {
				return ErrorWithExitCode{
					Err:      fmt.Errorf("%v out of %v files could not be processed", failed, summary.Total()),
					ExitCode: ExitFileErrors,
				}
			}

			return nil
		},
	}
	cmd.SetOut(stdout)

	isTerm := isTerminal(stdout)

	inputFlags := hcobra.NewFlagSet("Input Flags")
	inputFlags.StringVar(&o.mapping, "mapping", config.DefaultMappingPath, "rename mapping file")
	inputFlags.StringVar(&o.dir, "dir", config.DefaultTargetDir, "directory holding the documents to rewrite, not traversed recursively")
	inputFlags.StringVar(&o.pattern, "pattern", rename.DefaultPattern, "file name pattern selecting the documents")
	inputFlags.BoolVar(&o.dryRun, "dry-run", false, "report renames without writing any file")
	inputFlags.StringVar(&o.configPath, "config", config.DefaultFile, "YAML config file, ignored when the default one is absent")
	hcobra.AddLocalFlagSet(cmd, inputFlags)

	outputFlags := hcobra.NewFlagSet("Output Flags")
	outputFlags.BoolVar(&o.plain, "plain", !isTerm, "disable colors")
	outputFlags.BoolVar(&o.debug, "debug", false, "enable debug log")
	hcobra.AddLocalFlagSet(cmd, outputFlags)

	hcobra.Setup(cmd)

	return cmd, o
}

func (o *rootOptions) loadConfig(cmd *cobra.Command, fs hfs.FS) (config.Config, error) {
	cfg := config.Default()

	flags := cmd.Flags()

	if flags.Changed("config") || hfs.Exists(fs, o.configPath) {
		inc, err := config.ParseYAMLConfig(fs, o.configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("config %v: %w", o.configPath, err)
		}

		cfg = config.ApplyYAMLConfig(cfg, inc, filepath.Dir(o.configPath))
	}

	if flags.Changed("mapping") {
		cfg.MappingPath = o.mapping
	}
	if flags.Changed("dir") {
		cfg.TargetDir = o.dir
	}
	if flags.Changed("pattern") {
		cfg.Pattern = o.pattern
	}
	if flags.Changed("dry-run") {
		cfg.DryRun = o.dryRun
	}

	err := cfg.Validate()
	if err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func execute(ctx context.Context, args []string, stdout io.Writer) int {
	cmd, o := newRootCmd(stdout)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		logger := o.logger
		if logger == nil {
			logger = hlog.NewTextLogger(stdout, &o.levelVar, !isTerminal(stdout))
		}
		logger.Error(err.Error())
	}

	return exitCode(err)
}

func Execute() int {
	return execute(context.Background(), os.Args[1:], os.Stdout)
}
