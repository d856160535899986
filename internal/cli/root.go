package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"toolup/internal/config"
	"toolup/internal/paths"
	"toolup/internal/tools"
)

var (
	outputDir  string
	outputJSON bool
	noProgress bool
)

// Execute runs the root cobra command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toolup",
		Short: "Keep portable Windows tools up to date",
	}

	cmd.PersistentFlags().StringVar(&outputDir, "output", "", "Path to the tool install root")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")
	cmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "Disable interactive progress output")

	cmd.AddCommand(newUpdateCmd())
	cmd.AddCommand(newStatusCmd())

	return cmd
}

// loadEnvironment resolves the install root and loads its configuration.
func loadEnvironment() (paths.BasePaths, config.Config, error) {
	bp, err := paths.Resolve(outputDir)
	if err != nil {
		return paths.BasePaths{}, config.Config{}, err
	}
	cfg, err := config.Load(bp.ConfigFile)
	if err != nil {
		return paths.BasePaths{}, config.Config{}, err
	}
	bp = paths.ApplyConfig(bp, cfg)
	return bp, cfg, nil
}

// selectTools maps the optional positional argument to tool definitions.
// With no argument (or "all") every known tool runs, minus those disabled in
// the configuration. Naming a tool explicitly runs it even when disabled.
func selectTools(args []string, cfg config.Config) ([]tools.Tool, error) {
	if len(args) == 0 || strings.EqualFold(args[0], "all") {
		var selected []tools.Tool
		for _, t := range tools.Known() {
			if cfg.IsDisabled(t.Name) {
				continue
			}
			selected = append(selected, t)
		}
		if len(selected) == 0 {
			return nil, fmt.Errorf("all tools are disabled in config")
		}
		return selected, nil
	}

	t, ok := tools.Lookup(args[0])
	if !ok {
		return nil, fmt.Errorf("unknown tool %q (known: %s)", args[0], strings.Join(knownNames(), ", "))
	}
	return []tools.Tool{t}, nil
}

func knownNames() []string {
	known := tools.Known()
	names := make([]string, 0, len(known))
	for _, t := range known {
		names = append(names, t.Name)
	}
	return names
}

func dash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
