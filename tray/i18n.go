package tray

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	keySubMenu         = "Sub Menu!"
	keyBeforeSeparator = "Before Separator"
	keyAfterSeparator  = "After Separator"
	keyHideWindow      = "Hide Window"
	keyShowWindow      = "Show Window"
	keyQuit            = "Quit"
	keyToggleIcon      = "Toggle the tray icon"
)

var supported = []language.Tag{language.English, language.French}

var translations = map[language.Tag]map[string]string{
	language.French: {
		keySubMenu:         "Sous-menu !",
		keyBeforeSeparator: "Avant le séparateur",
		keyAfterSeparator:  "Après le séparateur",
		keyHideWindow:      "Masquer la fenêtre",
		keyShowWindow:      "Afficher la fenêtre",
		keyQuit:            "Quitter",
		keyToggleIcon:      "Basculer l'icône",
	},
}

var (
	matcher  = language.NewMatcher(supported)
	messages = newCatalog()
)

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, key := range []string{
		keySubMenu, keyBeforeSeparator, keyAfterSeparator,
		keyHideWindow, keyShowWindow, keyQuit, keyToggleIcon,
	} {
		_ = b.SetString(language.English, key, key)
	}
	for tag, msgs := range translations {
		for key, msg := range msgs {
			_ = b.SetString(tag, key, msg)
		}
	}
	return b
}

// Resolve maps an arbitrary language tag onto a supported one. Unknown or
// malformed tags resolve to English.
func Resolve(tag string) language.Tag {
	t, err := language.Parse(tag)
	if err != nil {
		return language.English
	}
	_, idx, conf := matcher.Match(t)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// labels translates menu keys for a single language.
type labels struct {
	tag language.Tag
	p   *message.Printer
}

func newLabels(tag string) labels {
	t := Resolve(tag)
	return labels{tag: t, p: message.NewPrinter(t, message.Catalog(messages))}
}

func (l labels) text(key string) string {
	return l.p.Sprintf(message.Key(key, key))
}

func (l labels) visibility(visible bool) string {
	if visible {
		return l.text(keyHideWindow)
	}
	return l.text(keyShowWindow)
}
