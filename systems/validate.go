package systems

import (
	"fmt"
	"io/fs"

	cfg "github.com/automoto/sigmaplatformer/config"
	"github.com/automoto/sigmaplatformer/shared/leveldata"
)

// LevelReport summarises one map checked by ValidateLevels.
type LevelReport struct {
	Level  int
	Path   string
	Layers []string
	Tiles  int
	Walls  []string
	Err    error
}

// OK reports whether the level can be played.
func (r LevelReport) OK() bool {
	return r.Err == nil
}

// ValidateLevels loads every level map in fsys without starting a game.
// A map fails when it does not parse or has no solid ground layer.
func ValidateLevels(fsys fs.FS) ([]LevelReport, error) {
	levels, err := leveldata.ListLevels(fsys)
	if err != nil {
		return nil, err
	}

	reports := make([]LevelReport, 0, len(levels))
	for _, level := range levels {
		reports = append(reports, validateLevel(fsys, level))
	}
	return reports, nil
}

func validateLevel(fsys fs.FS, level int) LevelReport {
	report := LevelReport{Level: level, Path: cfg.Map.Path(level)}

	m, err := leveldata.LoadMap(fsys, report.Path)
	if err != nil {
		report.Err = err
		return report
	}
	report.Layers = m.LayerNames()
	for _, layer := range m.Layers {
		report.Tiles += len(layer.Tiles)
	}
	report.Walls = WallLayers(m)
	if len(report.Walls) == 0 {
		report.Err = fmt.Errorf("no %q or %q layer", cfg.LayerNamePlatforms, cfg.LayerNamePlatformsAlt)
	}
	return report
}
