package chromium

import (
	"os"
	"path/filepath"
	"runtime"
)

// bookmarkFileName is the literal file name Chromium-derived browsers use.
const bookmarkFileName = "Bookmarks"

// Browser pairs a display name with the root of its user-data directory.
type Browser struct {
	Name string
	Dir  string
}

// Source identifies one bookmark file to parse. Sources are built during
// discovery, consumed by ParseFile and then discarded.
type Source struct {
	Browser string
	Profile string // profile directory name, empty for a file directly in the root
	Path    string
}

// KnownBrowsers returns the builtin browser table for the current platform.
// Browsers that are not installed simply resolve to directories that do not
// exist; Discover skips them.
func KnownBrowsers() []Browser {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return knownBrowsers(runtime.GOOS, home, os.Getenv("LOCALAPPDATA"))
}

func knownBrowsers(goos, home, localAppData string) []Browser {
	switch goos {
	case "windows":
		return []Browser{
			{Name: "Microsoft Edge", Dir: filepath.Join(localAppData, "Microsoft", "Edge", "User Data")},
			{Name: "Google Chrome", Dir: filepath.Join(localAppData, "Google", "Chrome", "User Data")},
			{Name: "Brave", Dir: filepath.Join(localAppData, "BraveSoftware", "Brave-Browser", "User Data")},
		}
	case "darwin":
		support := filepath.Join(home, "Library", "Application Support")
		return []Browser{
			{Name: "Microsoft Edge", Dir: filepath.Join(support, "Microsoft Edge")},
			{Name: "Google Chrome", Dir: filepath.Join(support, "Google", "Chrome")},
			{Name: "Brave", Dir: filepath.Join(support, "BraveSoftware", "Brave-Browser")},
		}
	default:
		config := filepath.Join(home, ".config")
		return []Browser{
			{Name: "Microsoft Edge", Dir: filepath.Join(config, "microsoft-edge")},
			{Name: "Google Chrome", Dir: filepath.Join(config, "google-chrome")},
			{Name: "Brave", Dir: filepath.Join(config, "BraveSoftware", "Brave-Browser")},
		}
	}
}

// Discover walks the given browser roots and returns every bookmark file
// found, either directly in the root (single-profile installs) or one level
// down inside profile directories. Roots that do not exist or cannot be
// listed contribute nothing.
func Discover(browsers []Browser) []Source {
	var sources []Source
	for _, b := range browsers {
		info, err := os.Stat(b.Dir)
		if err != nil || !info.IsDir() {
			continue
		}

		if direct := filepath.Join(b.Dir, bookmarkFileName); isFile(direct) {
			sources = append(sources, Source{Browser: b.Name, Path: direct})
		}

		children, err := os.ReadDir(b.Dir)
		if err != nil {
			continue
		}
		for _, child := range children {
			if !child.IsDir() {
				continue
			}
			path := filepath.Join(b.Dir, child.Name(), bookmarkFileName)
			if isFile(path) {
				sources = append(sources, Source{Browser: b.Name, Profile: child.Name(), Path: path})
			}
		}
	}
	return sources
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
