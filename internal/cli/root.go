// Package cli builds the cobra command trees of savi-bootstrap and
// savi-commitlint-jira.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/valassis-fcalle/savi-project-bootstrap/internal/version"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/config"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/errors"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/exec"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/logging"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/patch"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/scaffold"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/style"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/types"
)

// app describes one entry point
type app struct {
	name    string
	short   string
	long    string
	example string
	done    func(result *scaffold.Result) string
	build   func(cfg *config.Config, opts scaffold.Options) *scaffold.Pipeline
}

var bootstrapApp = app{
	name:    "savi-bootstrap",
	short:   MsgBootstrapShort,
	long:    MsgBootstrapLong,
	example: MsgBootstrapExample,
	done: func(r *scaffold.Result) string {
		return fmt.Sprintf(MsgBootstrapDone, r.Dir, len(r.Steps), len(r.Artifacts))
	},
	build: scaffold.New,
}

var patchApp = app{
	name:  "savi-commitlint-jira",
	short: MsgPatchShort,
	long:  MsgPatchLong,
	done: func(r *scaffold.Result) string {
		return fmt.Sprintf(MsgPatchDone, r.Dir)
	},
	build: patch.New,
}

// deps replaces the real filesystem and runner, for tests
type deps struct {
	fs     types.FS
	runner exec.CommandRunner
}

// options holds the global flags
type options struct {
	verbosity  int
	dryRun     bool
	configFile string
	folder     string
	baseDir    string
	flavor     string
	traceFile  string
}

// NewBootstrapCmd creates the savi-bootstrap root command
func NewBootstrapCmd() *cobra.Command {
	return newRootCmd(bootstrapApp, nil)
}

// NewPatchCmd creates the savi-commitlint-jira root command
func NewPatchCmd() *cobra.Command {
	return newRootCmd(patchApp, nil)
}

func newRootCmd(a app, d *deps) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     a.name,
		Short:   a.short,
		Long:    a.long,
		Example: a.example,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(logging.VerbosityFromEnv(opts.verbosity))
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, a, opts, d)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	flags.StringVar(&opts.configFile, "config", "", "Config file (default .savi-bootstrap.toml or .savi-bootstrap.yaml in the current directory)")
	flags.StringVar(&opts.folder, "folder", "", "Project folder name (overrides project_folder)")
	flags.StringVar(&opts.baseDir, "base-dir", "", "Directory the project folder is created in (overrides base_dir)")
	flags.StringVar(&opts.flavor, "flavor", "", "Scaffold flavor: classic or jira (overrides flavor)")
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show the commands and files without running or writing anything")
	rootCmd.Flags().StringVar(&opts.traceFile, "trace-file", "", "Write an OpenTelemetry trace of the run to this file")

	rootCmd.AddCommand(newVersionCmd(a))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newManCmd(a))

	return rootCmd
}

// loadConfig resolves the configuration, applying only flags the user set
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	overrides := make(map[string]interface{})
	flags := cmd.Flags()
	if flags.Changed("folder") {
		overrides["project_folder"] = o.folder
	}
	if flags.Changed("base-dir") {
		overrides["base_dir"] = o.baseDir
	}
	if flags.Changed("flavor") {
		overrides["flavor"] = o.flavor
	}
	return config.Load(config.LoadOptions{
		ConfigFile: o.configFile,
		Overrides:  overrides,
	})
}

// Execute runs cmd with a context cancelled on SIGINT or SIGTERM, prints a
// failure in the error style and returns the process exit code
func Execute(cmd *cobra.Command) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer func() { _ = logging.Close() }()

	if err := cmd.ExecuteContext(ctx); err != nil {
		printError(cmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

func printError(w io.Writer, err error) {
	styles := style.ForWriter(w)
	fmt.Fprintln(w, styles.Render(style.Error, "Error: "+err.Error()))
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		fmt.Fprintln(w, styles.Render(style.Muted, "  kind: "+string(code)))
	}
	if step, ok := errors.GetErrorDetails(err)["step"].(string); ok {
		fmt.Fprintln(w, styles.Render(style.Muted, "  step: "+step))
	}
}
