package prefabs

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

//go:embed *.yaml scripts/*.tengo
var PrefabsFS embed.FS

// Dir is the on-disk prefab directory. Files found there shadow the embedded
// copies so tuning can be edited without a rebuild.
var Dir = "prefabs"

// Load returns a prefab file, preferring the disk copy.
func Load(name string) ([]byte, error) {
	return readPrefab(cleanPrefabPath(name))
}

// LoadScript returns a tengo input script from scripts/.
func LoadScript(name string) ([]byte, error) {
	return readPrefab(cleanScriptPath(name))
}

// Scripts lists the embedded script names without their directory.
func Scripts() []string {
	entries, err := fs.ReadDir(PrefabsFS, "scripts")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && isScriptFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// ModTime reports the disk copy's modification time, if there is one.
func ModTime(name string) (time.Time, bool) {
	info, err := os.Stat(diskPrefabPath(cleanPrefabPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func readPrefab(clean string) ([]byte, error) {
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func cleanPrefabPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		return after
	}
	// Watcher events carry the full disk path.
	if i := strings.LastIndex(s, "/"+Dir+"/"); i >= 0 {
		return s[i+len(Dir)+2:]
	}
	return s
}

func cleanScriptPath(p string) string {
	if p == "" {
		return ""
	}
	s := cleanPrefabPath(p)
	s = strings.TrimPrefix(s, "scripts/")
	if path.Ext(s) == "" {
		s += ".tengo"
	}
	return "scripts/" + s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
