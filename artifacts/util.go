package artifacts

import "path/filepath"

// resolveFullPath returns an absolute form of dir, or dir itself if it cannot
// be resolved.
func resolveFullPath(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}

	fullPath, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}

	return fullPath
}
