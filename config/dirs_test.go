package config

import "testing"

func TestConfigPathsRespectsXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/a:/bbb")
	// Per the XDG base-dir spec, an empty XDG_CONFIG_DIRS is treated the
	// same as unset, so the /etc/xdg fallback still applies here.
	t.Setenv("XDG_CONFIG_DIRS", "")
	t.Setenv("HOME", "/home/user")

	paths := ConfigPaths("rc.xml")
	want := []string{"/a/labwc/rc.xml", "/bbb/labwc/rc.xml", "/etc/xdg/labwc/rc.xml"}
	if len(paths) != len(want) {
		t.Fatalf("ConfigPaths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("ConfigPaths[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestConfigPathsFallsBackToHomeConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_DIRS", "")
	t.Setenv("HOME", "/home/user")

	paths := ConfigPaths("rc.xml")
	if len(paths) == 0 || paths[0] != "/home/user/.config/labwc/rc.xml" {
		t.Fatalf("expected $HOME/.config fallback, got %v", paths)
	}
}

func TestThemePathsUsesOpenbox3Layout(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/home/user/.local/share")
	t.Setenv("HOME", "/home/user")
	t.Setenv("XDG_DATA_DIRS", "")

	paths := ThemePaths("Clearlooks", "themerc")
	found := false
	for _, p := range paths {
		if p == "/home/user/.local/share/themes/Clearlooks/openbox-3/themerc" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected openbox-3 themerc path, got %v", paths)
	}
}
