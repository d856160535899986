package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"toolup/internal/registry"
	"toolup/internal/tools"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [tool|all]",
		Short: "Show installed and latest versions without downloading",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	bp, cfg, err := loadEnvironment()
	if err != nil {
		return err
	}
	selected, err := selectTools(args, cfg)
	if err != nil {
		return err
	}

	client := registry.NewClient(cfg.APIBase)
	updater := tools.NewUpdater(client)

	var (
		statuses []tools.Status
		errs     []error
	)
	for _, tool := range selected {
		st, _, err := updater.Check(ctx, tool, bp.ToolDir(tool.Subdir))
		statuses = append(statuses, st)
		if err != nil {
			errs = append(errs, err)
		}
	}

	if outputJSON {
		if err := writeStatusJSON(cmd, bp.Root, statuses); err != nil {
			return err
		}
	} else {
		writeStatusTable(cmd, bp.Root, statuses)
	}
	return errors.Join(errs...)
}

func writeStatusJSON(cmd *cobra.Command, root string, statuses []tools.Status) error {
	payload := struct {
		Root  string         `json:"root"`
		Tools []tools.Status `json:"tools"`
	}{
		Root:  root,
		Tools: statuses,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode status json: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func writeStatusTable(cmd *cobra.Command, root string, statuses []tools.Status) {
	fmt.Fprintf(cmd.OutOrStdout(), "Root: %s\n", root)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "TOOL\tINSTALLED\tLATEST\tDECISION\tPATH\tERROR")
	for _, st := range statuses {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			st.Tool,
			dash(st.Installed),
			dash(st.Latest),
			dash(string(st.Decision)),
			dash(st.Path),
			dash(st.Error),
		)
	}
	w.Flush()
}
