package cli

import (
	"io"

	"github.com/arthur-debert/xpile/internal/version"
	"github.com/arthur-debert/xpile/pkg/errors"
	"github.com/arthur-debert/xpile/pkg/logging"
	"github.com/arthur-debert/xpile/pkg/options"
	"github.com/arthur-debert/xpile/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Handler receives the options resolved for one invocation.
type Handler func(cmd *cobra.Command, result *options.Result) error

// NewRootCmd creates and returns the root command. On success it writes the
// resolved options document to stdout.
func NewRootCmd() *cobra.Command {
	return newRootCmd(nil)
}

func newRootCmd(handler Handler) *cobra.Command {
	var (
		verbosity int
		format    string
	)

	schema := options.DefaultSchema()

	rootCmd := &cobra.Command{
		Use:     "xpile [flags] [files...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerTo(cmd.ErrOrStderr(), verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := ui.ParseFormat(format)
			if err != nil {
				return errors.Newf(errors.ErrFlagParse, MsgErrFormat, format).
					WithDetail(errors.DetailFlag, "--format")
			}

			resolver := options.NewResolver(options.WithSchema(schema))
			result, err := resolver.ResolveFlags(cmd.Flags(), args)
			if err != nil {
				return err
			}
			log.Info().
				Int("filenames", len(result.CLI.Filenames)).
				Str("format", f.String()).
				Msg("Options resolved")

			if handler != nil {
				return handler(cmd, result)
			}
			return ui.Render(cmd.OutOrStdout(), f, result)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} " + version.String() + "\n")

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&format, "format", "json", MsgFlagFormat)

	// Option flags
	schema.Register(rootCmd.Flags())
	rootCmd.Flags().SortFlags = false

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.New(errors.ErrFlagParse, err.Error())
	})

	return rootCmd
}

// Execute runs the root command with args and reports any failure to
// stderr. It returns the process exit status.
func Execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		return ReportError(stderr, err)
	}
	return 0
}

// ReportError prints err as diagnostics to w and returns the exit status.
func ReportError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	log.Debug().Err(err).Str("code", string(errors.GetErrorCode(err))).Msg("Command failed")
	_ = ui.NewDiagnostics(w).Report(err)
	return errors.ExitCode(err)
}
