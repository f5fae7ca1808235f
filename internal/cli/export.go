package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amirbrooks/tasker-shell/internal/store"
)

func (a *app) exportCmd() *cobra.Command {
	var ndjson, stdout bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the task list as JSON to <root>/exports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, logger, err := a.open()
			if err != nil {
				a.fail(err)
				return nil
			}
			tasks := a.session(ws, logger).Tasks().All()

			ext, label := "json", "JSON"
			marshal := store.MarshalJSON
			if ndjson {
				ext, label = "ndjson", "NDJSON"
				marshal = store.MarshalNDJSON
			}
			data, err := marshal(tasks)
			if err != nil {
				a.fail(err)
				return nil
			}
			if stdout {
				_, _ = a.out.Write(data)
				return nil
			}
			path, err := ws.WriteExport("tasks", ext, data)
			if err != nil {
				a.fail(fmt.Errorf("export: %w", err))
				return nil
			}
			if !ws.Config().Quiet {
				fmt.Fprintf(a.out, "Wrote %s to: %s\n", label, path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&ndjson, "ndjson", false, "one JSON object per line")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "write to stdout instead of a file")
	return cmd
}
