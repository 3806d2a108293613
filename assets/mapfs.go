package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/sigmaplatformer/config"
	"github.com/charmbracelet/log"
)

// ErrNoMaps is returned when no candidate directory holds the start level.
var ErrNoMaps = errors.New("no level maps found")

// ResolveMapsDir picks the directory the level maps are read from.
// Search order: config.C.LevelsDir -> executable directory -> working directory
func ResolveMapsDir() (string, error) {
	if config.C.LevelsDir != "" {
		if err := checkDir(config.C.LevelsDir); err != nil {
			return "", fmt.Errorf("levels_dir %s: %w", config.C.LevelsDir, err)
		}
		return config.C.LevelsDir, nil
	}

	var candidates []string
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Dir(exe))
	}
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, wd)
	}
	return firstWithStartLevel(candidates)
}

// MapFS opens the resolved maps directory as a file system.
func MapFS() (fs.FS, string, error) {
	dir, err := ResolveMapsDir()
	if err != nil {
		return nil, "", err
	}
	log.Info("reading level maps", "dir", dir)
	return os.DirFS(dir), dir, nil
}

func firstWithStartLevel(dirs []string) (string, error) {
	start := config.Map.Path(config.C.StartLevel)
	for _, dir := range dirs {
		if _, err := os.Stat(filepath.Join(dir, start)); err == nil {
			return dir, nil
		}
	}
	return "", fmt.Errorf("%w: %s not in %v", ErrNoMaps, start, dirs)
}

func checkDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.New("not a directory")
	}
	return nil
}
