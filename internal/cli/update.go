package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"toolup/internal/logx"
	"toolup/internal/registry"
	"toolup/internal/tools"
	"toolup/internal/tui"
)

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update [tool|all]",
		Short: "Install or update managed tools to their latest release",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runUpdate,
	}
}

func runUpdate(cmd *cobra.Command, args []string) error {
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
	if err := bp.EnsureRoot(); err != nil {
		return err
	}

	logger, closer, err := logx.New(bp)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Printf("update started, root %s", bp.Root)

	client := registry.NewClient(cfg.APIBase)
	updater := tools.NewUpdater(client)
	updater.Log = logger

	var (
		statuses []tools.Status
		runErr   error
	)
	run := func(rep tools.Reporter) {
		updater.Reporter = rep
		for _, tool := range selected {
			st, err := updater.Update(ctx, tool, bp.ToolDir(tool.Subdir))
			statuses = append(statuses, st)
			if err != nil {
				// One broken tool aborts the rest of the run.
				runErr = err
				return
			}
		}
	}

	mode := tui.DetectMode(cmd.OutOrStdout(), noProgress, outputJSON)
	if mode == tui.ModeTUI {
		names := make([]string, 0, len(selected))
		for _, t := range selected {
			names = append(names, t.Name)
		}
		model := tui.NewModel(names)
		err := tui.RunWithWork(cmd.OutOrStdout(), model, func(send func(tea.Msg)) {
			run(tui.NewUpdateReporter(send))
		})
		if err != nil && runErr == nil {
			return err
		}
	} else {
		run(tools.NopReporter{})
	}

	if runErr != nil {
		logger.Printf("update failed: %v", runErr)
	} else {
		logger.Printf("update finished")
	}

	if mode == tui.ModeJSON {
		if err := writeStatusJSON(cmd, bp.Root, statuses); err != nil {
			return err
		}
		return runErr
	}

	writeStatusTable(cmd, bp.Root, statuses)
	return runErr
}
