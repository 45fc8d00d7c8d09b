package checker

import (
	"os"
	"path/filepath"

	"github.com/reposafety/reposafety/pkg/git"
	"github.com/rs/zerolog/log"
)

// Targets builds the list of files to scan. Explicit paths win over the
// tracked-file listing; relative paths resolve against the repository root.
// Only existing regular files survive, in caller order, without dedup.
func Targets(paths []string, root string) ([]string, error) {
	if len(paths) > 0 {
		return resolve(paths, root), nil
	}

	tracked, err := git.LsFiles(root)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("count", len(tracked)).Msg("Enumerated tracked files")

	return resolve(tracked, root), nil
}

func resolve(paths []string, root string) []string {
	var targets []string
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, p)
		}
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			targets = append(targets, p)
		}
	}
	return targets
}
