package tui

import "testing"

func TestGetTheme(t *testing.T) {
	if got := GetTheme("amber"); got.Name != "amber" {
		t.Errorf("GetTheme(amber).Name = %q", got.Name)
	}
	if got := GetTheme("nonexistent"); got.Name != ThemeMono.Name {
		t.Errorf("unknown theme should fall back to mono, got %q", got.Name)
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(Themes) {
		t.Fatalf("got %d names for %d themes", len(names), len(Themes))
	}
	for _, n := range names {
		if GetTheme(n).Name != n {
			t.Errorf("theme %q not resolvable by name", n)
		}
	}
}
