package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vizinline/pkg/errors"
	"github.com/matzehuels/vizinline/pkg/explain"
	"github.com/matzehuels/vizinline/pkg/inline"
)

// frameOrder fixes the display order of frame types.
var frameOrder = []string{"plotly", "html", "error", "none"}

// inspectCommand creates the inspect command, which summarizes the payload
// render would embed without needing the script bundle.
func (c *CLI) inspectCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect <explanation> [explanation...]",
		Short: "Summarize the visualization payload of explanation files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), cmd.OutOrStdout(), args, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the visualization object as JSON")
	return cmd
}

func runInspect(ctx context.Context, w io.Writer, paths []string, asJSON bool) error {
	r := inline.New(inline.WithLogger(loggerFromContext(ctx)))

	failed := 0
	for i, path := range paths {
		e, err := explain.Load(path)
		if err != nil {
			printError(w, "%s: %s", path, errors.UserMessage(err))
			failed++
			continue
		}
		obj := r.BuildObject(ctx, e)

		if asJSON {
			data, err := json.MarshalIndent(obj, "", "  ")
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", path)
			}
			fmt.Fprintln(w, string(data))
			continue
		}

		if i > 0 {
			fmt.Fprintln(w)
		}
		printObject(w, path, obj)
	}

	if failed > 0 {
		return errors.New(errors.ErrCodeInvalidInput, "%d of %d explanation files could not be loaded", failed, len(paths))
	}
	return nil
}

func printObject(w io.Writer, path string, obj inline.Object) {
	printTitle(w, obj.Name)
	printFile(w, path)

	printKeyValue(w, "overall", frameLabel(obj.Overall))

	counts := make(map[string]int)
	var broken []string
	for i, f := range obj.Specific {
		label := frameLabel(f)
		counts[label]++
		if label == "error" {
			broken = append(broken, fmt.Sprintf("specific[%d]", i))
		}
	}
	if frameLabel(obj.Overall) == "error" {
		broken = append([]string{"overall"}, broken...)
	}
	printFrameCounts(w, "specific", counts, frameOrder)

	selector := "none"
	if len(obj.Selector.Columns) > 0 || len(obj.Selector.Data) > 0 {
		selector = fmt.Sprintf("%s (%d rows)", strings.Join(obj.Selector.Columns, ", "), len(obj.Selector.Data))
	}
	printKeyValue(w, "selector", selector)

	if len(broken) > 0 {
		printWarning(w, "%d visualization(s) cannot render inline: %s", len(broken), strings.Join(broken, ", "))
		return
	}
	printSuccess(w, "all visualizations render inline")
}

// frameLabel names a frame's type, calling out substituted error frames.
func frameLabel(f inline.Frame) string {
	if inline.IsErrorFrame(f) {
		return "error"
	}
	return string(f.Type)
}
