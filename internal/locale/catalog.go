// Package locale resolves user-facing strings for the current language.
package locale

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Missing is shown for ids that have no message in any language.
const Missing = "???"

type Catalog struct {
	builder *catalog.Builder
	known   map[ID]bool
	langs   []language.Tag
	matcher language.Matcher

	lang    language.Tag
	printer *message.Printer
}

// New builds the catalog of every built-in language, English first.
func New() (*Catalog, error) {
	c := &Catalog{
		builder: catalog.NewBuilder(catalog.Fallback(language.English)),
		known:   make(map[ID]bool),
		langs:   []language.Tag{language.English},
	}
	for tag := range tables {
		if tag != language.English {
			c.langs = append(c.langs, tag)
		}
	}
	sort.Slice(c.langs[1:], func(i, j int) bool {
		return c.langs[i+1].String() < c.langs[j+1].String()
	})

	english := tables[language.English]
	for _, tag := range c.langs {
		for id, msg := range english {
			if own, ok := tables[tag][id]; ok {
				msg = own
			}
			if err := c.builder.SetString(tag, string(id), msg); err != nil {
				return nil, fmt.Errorf("locale %s: %s: %w", tag, id, err)
			}
			c.known[id] = true
		}
	}
	c.matcher = language.NewMatcher(c.langs)
	c.SetLanguage(language.English)
	return c, nil
}

// SetLanguage switches to the closest built-in match of tag.
func (c *Catalog) SetLanguage(tag language.Tag) {
	_, i, _ := c.matcher.Match(tag)
	c.lang = c.langs[i]
	c.printer = message.NewPrinter(c.lang, message.Catalog(c.builder))
}

// SetLanguageName accepts a BCP 47 tag such as "fr" or "en-US".
func (c *Catalog) SetLanguageName(name string) error {
	tag, err := language.Parse(strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("language %q: %w", name, err)
	}
	c.SetLanguage(tag)
	return nil
}

func (c *Catalog) Language() language.Tag {
	return c.lang
}

// LanguageIndex is the position of the current language in Languages.
func (c *Catalog) LanguageIndex() int {
	for i, t := range c.langs {
		if t == c.lang {
			return i
		}
	}
	return 0
}

func (c *Catalog) Languages() []language.Tag {
	return append([]language.Tag(nil), c.langs...)
}

// LanguageName is the name of tag in its own language, e.g. "français".
func LanguageName(tag language.Tag) string {
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return tag.String()
}

func (c *Catalog) Localize(id ID) string {
	if !c.known[id] {
		return Missing
	}
	return c.printer.Sprintf(string(id))
}

// Sprintf formats the message id with args.
func (c *Catalog) Sprintf(id ID, args ...any) string {
	if !c.known[id] {
		return Missing
	}
	return c.printer.Sprintf(string(id), args...)
}
