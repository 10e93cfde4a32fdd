package tray

import (
	"fmt"
	"sync"

	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/icons"
)

// DefaultIcons are the icons bundled with Wails.
var DefaultIcons = Icons{
	Idle:   icons.SystrayLight,
	Active: icons.SystrayDark,
}

// WailsSurface renders menus onto a Wails system tray.
type WailsSurface struct {
	app  *application.App
	tray *application.SystemTray

	mu       sync.Mutex
	menu     *application.Menu
	items    map[string]*application.MenuItem
	onSelect func(id string)
}

// NewWailsSurface wraps a Wails system tray.
func NewWailsSurface(app *application.App, systemTray *application.SystemTray) *WailsSurface {
	return &WailsSurface{
		app:   app,
		tray:  systemTray,
		items: make(map[string]*application.MenuItem),
	}
}

// OnSelect registers the handler for menu item clicks. Items report their
// stable identifier, never their label.
func (s *WailsSurface) OnSelect(fn func(id string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSelect = fn
}

// SetMenu renders m into a fresh Wails menu and binds it to the tray.
func (s *WailsSurface) SetMenu(m Menu) error {
	if s.tray == nil {
		return ErrNoTray
	}

	menu := s.app.NewMenu()
	items := make(map[string]*application.MenuItem)
	s.render(menu, m.Entries, items)
	s.tray.SetMenu(menu)

	s.mu.Lock()
	s.menu = menu
	s.items = items
	s.mu.Unlock()
	return nil
}

// SetLabel changes the label of a rendered item.
func (s *WailsSurface) SetLabel(id, label string) error {
	s.mu.Lock()
	item, ok := s.items[id]
	menu := s.menu
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("menu item not found: %s", id)
	}
	item.SetLabel(label)
	menu.Update()
	return nil
}

// SetIcon binds icon to the tray.
func (s *WailsSurface) SetIcon(icon []byte) error {
	if s.tray == nil {
		return ErrNoTray
	}
	if len(icon) == 0 {
		return fmt.Errorf("empty tray icon")
	}
	s.tray.SetIcon(icon)
	return nil
}

func (s *WailsSurface) render(menu *application.Menu, entries []Entry, items map[string]*application.MenuItem) {
	for _, e := range entries {
		switch e.Kind {
		case KindSeparator:
			menu.AddSeparator()
		case KindSubmenu:
			s.render(menu.AddSubmenu(e.Label), e.Children, items)
		default:
			id := e.ID
			item := menu.Add(e.Label)
			if e.Accelerator != "" {
				item.SetAccelerator(e.Accelerator)
			}
			item.OnClick(func(*application.Context) { s.selected(id) })
			items[id] = item
		}
	}
}

func (s *WailsSurface) selected(id string) {
	s.mu.Lock()
	fn := s.onSelect
	s.mu.Unlock()
	if fn != nil {
		fn(id)
	}
}
