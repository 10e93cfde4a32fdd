package tray

import "github.com/samber/lo"

// Menu item identifiers. They are stable across languages.
const (
	ItemSubMenu          = "sub-menu"
	ItemBeforeSeparator  = "bf-sep"
	ItemAfterSeparator   = "af-sep"
	ItemToggleVisibility = "toggle-visibility"
	ItemQuit             = "quit"
	ItemToggleIcon       = "toggle-tray-icon"
)

// Kind is the type of a menu entry.
type Kind int

const (
	KindItem Kind = iota
	KindSeparator
	KindSubmenu
)

// Entry is one node of a menu tree.
type Entry struct {
	Kind        Kind
	ID          string
	Label       string
	Accelerator string
	Children    []Entry
}

// Menu is an immutable menu tree built for one language. A language change
// builds a new Menu instead of editing the current one.
type Menu struct {
	Lang    string
	Entries []Entry
}

// BuildMenu builds the tray menu for tag. visible is the current main
// window visibility and picks the toggle-visibility label.
func BuildMenu(tag string, visible bool) Menu {
	l := newLabels(tag)
	return Menu{
		Lang: l.tag.String(),
		Entries: []Entry{
			{
				Kind:  KindSubmenu,
				ID:    ItemSubMenu,
				Label: l.text(keySubMenu),
				Children: []Entry{
					{Kind: KindItem, ID: ItemBeforeSeparator, Label: l.text(keyBeforeSeparator)},
					{Kind: KindSeparator},
					{Kind: KindItem, ID: ItemAfterSeparator, Label: l.text(keyAfterSeparator)},
				},
			},
			{Kind: KindItem, ID: ItemToggleVisibility, Label: l.visibility(visible), Accelerator: "Ctrl+Shift+T"},
			{Kind: KindItem, ID: ItemQuit, Label: l.text(keyQuit), Accelerator: "Ctrl+Q"},
			{Kind: KindItem, ID: ItemToggleIcon, Label: l.text(keyToggleIcon)},
		},
	}
}

// IDs returns the identifiers of every item and submenu in tree order.
// Separators have no identifier and are skipped.
func (m Menu) IDs() []string {
	return collectIDs(m.Entries)
}

func collectIDs(entries []Entry) []string {
	return lo.FlatMap(entries, func(e Entry, _ int) []string {
		if e.Kind == KindSeparator {
			return nil
		}
		return append([]string{e.ID}, collectIDs(e.Children)...)
	})
}

// Find returns the entry with the given identifier.
func (m Menu) Find(id string) (Entry, bool) {
	return find(m.Entries, id)
}

func find(entries []Entry, id string) (Entry, bool) {
	for _, e := range entries {
		if e.Kind != KindSeparator && e.ID == id {
			return e, true
		}
		if found, ok := find(e.Children, id); ok {
			return found, true
		}
	}
	return Entry{}, false
}
