package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vizinline/pkg/display"
	"github.com/matzehuels/vizinline/pkg/errors"
	"github.com/matzehuels/vizinline/pkg/explain"
	"github.com/matzehuels/vizinline/pkg/inline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	assetDir   string   // directory containing lib/interpret-inline.js
	elementID  string   // container div id (generated when empty)
	defaultKey int      // initially selected specific visualization
	envs       []string // environment markers, e.g. "databricks"
	output     string   // output file (stdout when empty)
	notebook   bool     // emit display_data messages instead of raw HTML
}

// renderCommand creates the render command. Several input files render as
// a dashboard.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <explanation> [explanation...]",
		Short: "Render explanation files as inline HTML",
		Long: `Render explanation files (JSON or YAML) as HTML that loads the interpret-inline bundle.

With --env databricks the output is a displayHTML(...) call ready to paste
into a Databricks notebook cell.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config()
			if !cmd.Flags().Changed("asset-dir") {
				opts.assetDir = cfg.AssetDir
			}
			if !cmd.Flags().Changed("default-key") {
				opts.defaultKey = cfg.DefaultKey
			}
			if !cmd.Flags().Changed("env") {
				opts.envs = cfg.Environments
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.assetDir, "asset-dir", ".", "directory containing lib/interpret-inline.js")
	cmd.Flags().StringVar(&opts.elementID, "id", "", "container element id (default: generated)")
	cmd.Flags().IntVar(&opts.defaultKey, "default-key", inline.DefaultKey, "initially selected specific visualization")
	cmd.Flags().StringSliceVar(&opts.envs, "env", nil, "environment markers (e.g. databricks)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.notebook, "notebook", false, "emit Jupyter display_data messages instead of raw HTML")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, stdout io.Writer, inputs []string, opts renderOpts) (err error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	explanations, err := explain.LoadAll(inputs)
	if err != nil {
		return err
	}

	w := stdout
	if opts.output != "" {
		f, ferr := os.Create(opts.output)
		if ferr != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, ferr, "create %s", opts.output)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = errors.Wrap(errors.ErrCodeDisplay, cerr, "close %s", opts.output)
			}
		}()
		w = f
	}

	r := inline.New(
		inline.WithAssetDir(opts.assetDir),
		inline.WithSession(c.session),
		inline.WithLogger(logger),
		inline.WithNotebookSink(c.notebookSink(w, opts.notebook)),
		inline.WithHostSink(c.hostSink(w)),
	)

	ropts := []inline.RenderOption{
		inline.WithElementID(opts.elementID),
		inline.WithDefaultKey(opts.defaultKey),
		inline.WithEnvironments(opts.envs...),
	}

	if len(explanations) > 1 {
		logger.Warnf("Rendering %d explanations as a dashboard is not supported; emitting error view", len(explanations))
		if err := r.RenderDashboard(ctx, explanations, ropts...); err != nil {
			return err
		}
		prog.done("Rendered dashboard")
	} else {
		if err := r.Render(ctx, explanations[0], ropts...); err != nil {
			return err
		}
		prog.done("Rendered " + explanations[0].Name())
	}

	if opts.output != "" {
		logger.Infof("Wrote %s", opts.output)
	}
	return nil
}

func (c *CLI) notebookSink(w io.Writer, notebook bool) display.Sink {
	if notebook {
		return display.NewNotebook(w)
	}
	return display.NewWriter(w)
}

// hostSink emits a call to the configured host function, e.g.
// displayHTML("..."), so the output can be pasted into a host notebook cell.
func (c *CLI) hostSink(w io.Writer) display.Sink {
	name := c.Config().HostFunction
	globals := display.NewGlobals()
	globals.Define(name, func(html string) error {
		lit, err := json.Marshal(html)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s(%s)\n", name, lit)
		return err
	})
	return display.NewHostFunc(globals, name)
}
