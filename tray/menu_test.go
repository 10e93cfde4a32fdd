package tray

import (
	"slices"
	"testing"
)

func TestBuildMenuIDsStableAcrossLanguages(t *testing.T) {
	want := BuildMenu("en", true).IDs()
	if len(want) == 0 {
		t.Fatal("english menu has no ids")
	}

	for _, tag := range []string{"fr", "fr-CA", "de", "zz", "", "not a tag!!", "ja-JP"} {
		t.Run(tag, func(t *testing.T) {
			got := BuildMenu(tag, true).IDs()
			if !slices.Equal(got, want) {
				t.Errorf("ids = %v, want %v", got, want)
			}
		})
	}
}

func TestBuildMenuLayout(t *testing.T) {
	m := BuildMenu("en", true)

	wantIDs := []string{
		ItemSubMenu, ItemBeforeSeparator, ItemAfterSeparator,
		ItemToggleVisibility, ItemQuit, ItemToggleIcon,
	}
	if got := m.IDs(); !slices.Equal(got, wantIDs) {
		t.Fatalf("ids = %v, want %v", got, wantIDs)
	}

	sub := m.Entries[0]
	if sub.Kind != KindSubmenu || len(sub.Children) != 3 || sub.Children[1].Kind != KindSeparator {
		t.Errorf("unexpected submenu layout: %+v", sub)
	}

	quit, ok := m.Find(ItemQuit)
	if !ok || quit.Accelerator != "Ctrl+Q" {
		t.Errorf("quit entry = %+v, ok = %v", quit, ok)
	}
}

func TestBuildMenuLabels(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		visible bool
		id      string
		want    string
		lang    string
	}{
		{"english hide", "en", true, ItemToggleVisibility, "Hide Window", "en"},
		{"english show", "en-GB", false, ItemToggleVisibility, "Show Window", "en"},
		{"french quit", "fr", true, ItemQuit, "Quitter", "fr"},
		{"french regional", "fr-BE", false, ItemToggleVisibility, "Afficher la fenêtre", "fr"},
		{"unknown falls back", "de", true, ItemQuit, "Quit", "en"},
		{"malformed falls back", "###", true, ItemToggleIcon, "Toggle the tray icon", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := BuildMenu(tt.tag, tt.visible)
			if m.Lang != tt.lang {
				t.Errorf("lang = %q, want %q", m.Lang, tt.lang)
			}
			e, ok := m.Find(tt.id)
			if !ok {
				t.Fatalf("entry %q not found", tt.id)
			}
			if e.Label != tt.want {
				t.Errorf("label = %q, want %q", e.Label, tt.want)
			}
		})
	}
}

func TestFindMissing(t *testing.T) {
	if _, ok := BuildMenu("en", true).Find("nope"); ok {
		t.Error("found an entry that does not exist")
	}
	if _, ok := BuildMenu("en", true).Find(""); ok {
		t.Error("empty id matched a separator")
	}
}
