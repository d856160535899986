package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"toolup/internal/config"
)

// BasePaths captures canonical locations under the tool install root.
type BasePaths struct {
	Root       string
	ConfigFile string
	LogsDir    string
}

// Resolve determines the install root using the optional --output flag or the
// current working directory when the flag is empty.
func Resolve(outputFlag string) (BasePaths, error) {
	var (
		root string
		err  error
	)

	if outputFlag != "" {
		root, err = filepath.Abs(outputFlag)
	} else {
		root, err = os.Getwd()
	}
	if err != nil {
		return BasePaths{}, fmt.Errorf("resolve install root: %w", err)
	}

	return newBasePaths(root), nil
}

func newBasePaths(root string) BasePaths {
	return BasePaths{
		Root:       root,
		ConfigFile: filepath.Join(root, "toolup.yaml"),
		LogsDir:    filepath.Join(root, "logs"),
	}
}

// ApplyConfig re-roots the layout when the configuration names an output
// directory. A relative output_dir resolves against the original root, so the
// config file itself stays where it was found.
func ApplyConfig(bp BasePaths, cfg config.Config) BasePaths {
	if cfg.OutputDir == "" {
		return bp
	}
	root := cfg.OutputDir
	if !filepath.IsAbs(root) {
		root = filepath.Join(bp.Root, root)
	}
	rerooted := newBasePaths(filepath.Clean(root))
	rerooted.ConfigFile = bp.ConfigFile
	return rerooted
}

// ToolDir returns the install directory for one tool's subdirectory name.
func (p BasePaths) ToolDir(subdir string) string {
	return filepath.Join(p.Root, subdir)
}

// EnsureRoot makes sure the install root exists on disk.
func (p BasePaths) EnsureRoot() error {
	if err := os.MkdirAll(p.Root, 0o755); err != nil {
		return fmt.Errorf("create install root: %w", err)
	}
	return nil
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
