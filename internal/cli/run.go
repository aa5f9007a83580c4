package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/exec"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/filesystem"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/logging"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/scaffold"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/style"
	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/telemetry"
)

func runPipeline(cmd *cobra.Command, a app, opts *options, d *deps) error {
	logger := logging.GetLogger("cli." + a.name)
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}

	shutdown, err := telemetry.Init(ctx, a.name, opts.traceFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("Failed to write trace")
		}
	}()

	popts := scaffold.Options{Out: out}
	switch {
	case opts.dryRun:
		popts.FS = filesystem.NewMemory()
		popts.Runner = exec.NewDryRunner()
	case d != nil:
		popts.FS = d.fs
		popts.Runner = d.runner
	default:
		runner := exec.NewRealRunner()
		runner.Stdout = out
		runner.Stderr = cmd.ErrOrStderr()
		popts.Runner = runner
	}

	logger.Info().
		Str("dir", cfg.ProjectDir()).
		Str("flavor", string(cfg.Flavor)).
		Bool("dryRun", opts.dryRun).
		Msg("Starting run")

	result, err := a.build(cfg, popts).Run(ctx)
	if err != nil {
		return err
	}

	if opts.dryRun {
		setupPterm(out)
		return printPlan(out, result)
	}
	fmt.Fprintln(out, style.ForWriter(out).Render(style.Success, a.done(result)))
	return nil
}

func setupPterm(w io.Writer) {
	if style.IsColorTerminal(w) {
		pterm.EnableStyling()
	} else {
		pterm.DisableStyling()
	}
}

// printPlan renders the commands and files a dry run recorded, in the
// order the steps issued them
func printPlan(w io.Writer, result *scaffold.Result) error {
	data := pterm.TableData{{"#", "Step", "Action", "Target"}}
	for i, a := range result.Actions {
		data = append(data, []string{fmt.Sprint(i + 1), a.Step, string(a.Kind), a.Target})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, pterm.DefaultSection.Sprint("Plan for "+result.Dir))
	fmt.Fprintln(w, table)
	fmt.Fprint(w, pterm.Info.Sprintln(MsgDryRunDone))
	return nil
}
