// Package config implements the XDG base-directory search plumbing for
// locating rc.xml and themed files. Parsing rc.xml/themerc itself is an
// external collaborator's job; this package only locates the candidate
// file paths a parser would then read, in priority order.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// dirSpec is one entry of the XDG search table: an environment variable,
// its fallback if unset, and the path fragment to append.
type dirSpec struct {
	envVar  string
	fallback string // may itself contain ":"-joined multi-paths
	suffix  string
}

var configDirs = []dirSpec{
	{envVar: "XDG_CONFIG_HOME", fallback: "$HOME/.config", suffix: "labwc"},
	{envVar: "XDG_CONFIG_DIRS", fallback: "/etc/xdg", suffix: "labwc"},
}

var themeDirs = []dirSpec{
	{envVar: "XDG_DATA_HOME", fallback: "$HOME/.local/share", suffix: "themes"},
	{envVar: "HOME", fallback: "", suffix: ".themes"},
	{envVar: "XDG_DATA_DIRS", fallback: "/usr/share:/usr/local/share:/opt/share", suffix: "themes"},
}

// expandHome replaces a leading "$HOME" token with the user's actual
// home directory; only $HOME ever appears in the default prefixes above.
func expandHome(s string) string {
	home := os.Getenv("HOME")
	return strings.ReplaceAll(s, "$HOME", home)
}

// search walks dirs, splitting each resolved prefix on ":" (XDG_DATA_DIRS
// and XDG_CONFIG_DIRS are colon-separated lists per the XDG base
// directory specification, and the default fallbacks for those entries
// are pre-joined the same way) and joining the suffix plus filename onto
// each.
func search(dirs []dirSpec, filename string) []string {
	var out []string
	for _, d := range dirs {
		prefix := os.Getenv(d.envVar)
		if prefix == "" {
			prefix = d.fallback
		}
		if prefix == "" {
			continue
		}
		prefix = expandHome(prefix)
		for _, p := range strings.Split(prefix, ":") {
			if p == "" {
				continue
			}
			out = append(out, filepath.Join(p, d.suffix, filename))
		}
	}
	return out
}

// ConfigPaths returns every candidate path for filename (e.g. "rc.xml"),
// in XDG_CONFIG_HOME, XDG_CONFIG_DIRS order. The caller stats/reads in
// order and stops at the first hit, or merges per its own policy; this
// package only locates candidates.
func ConfigPaths(filename string) []string {
	return search(configDirs, filename)
}

// ThemePaths returns every candidate path for a themed file (e.g.
// "themerc"), under <prefix>/themes/<themeName>/openbox-3/<filename>.
func ThemePaths(themeName, filename string) []string {
	var out []string
	for _, d := range themeDirs {
		prefix := os.Getenv(d.envVar)
		if prefix == "" {
			prefix = d.fallback
		}
		if prefix == "" {
			continue
		}
		prefix = expandHome(prefix)
		for _, p := range strings.Split(prefix, ":") {
			if p == "" {
				continue
			}
			out = append(out, filepath.Join(p, d.suffix, themeName, "openbox-3", filename))
		}
	}
	return out
}

// FirstExisting returns the first path in paths that exists on disk, or
// "" if none do.
func FirstExisting(paths []string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
