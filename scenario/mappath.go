package scenario

import (
	"os"
	"path/filepath"
)

// ResolveMapPath implements §6's map-path resolution rules for a scenario
// declaring mapName, given the scenario file's own path: if mapName is
// absolute, use it as-is; else try (scenario dir)/(mapName); else try the
// scenario path with its extension replaced by ".map"; else fail.
func ResolveMapPath(scenarioPath, mapName string) (string, error) {
	if filepath.IsAbs(mapName) {
		if fileExists(mapName) {
			return mapName, nil
		}
		return "", ErrMapNotFound
	}

	dir := filepath.Dir(scenarioPath)
	candidate := filepath.Join(dir, mapName)
	if fileExists(candidate) {
		return candidate, nil
	}

	ext := filepath.Ext(scenarioPath)
	swapped := scenarioPath[:len(scenarioPath)-len(ext)] + ".map"
	if fileExists(swapped) {
		return swapped, nil
	}

	return "", ErrMapNotFound
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
