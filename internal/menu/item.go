package menu

import (
	"fmt"

	"github.com/appengine-ltd/retro-rally/internal/input"
	"github.com/appengine-ltd/retro-rally/internal/locale"
)

const (
	MaxRows    = 25
	MaxCols    = 5
	MaxHistory = 16
)

// Kind is the variant tag of an Item.
type Kind uint8

const (
	KindEnd Kind = iota
	KindTitle
	KindSubtitle
	KindLabel
	KindSpacer
	KindPick
	KindCycler
	KindCMRCycler
	KindKeyBinding
	KindPadBinding
	KindMouseBinding
	numKinds
)

var kindNames = [numKinds]string{
	KindEnd:          "end",
	KindTitle:        "title",
	KindSubtitle:     "subtitle",
	KindLabel:        "label",
	KindSpacer:       "spacer",
	KindPick:         "pick",
	KindCycler:       "cycler",
	KindCMRCycler:    "cmr-cycler",
	KindKeyBinding:   "key-binding",
	KindPadBinding:   "pad-binding",
	KindMouseBinding: "mouse-binding",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ID names a menu inside a Tree. The root menu is 0.
type ID int32

const (
	Root ID = 0

	// GotoExit on a Pick leaves the menu system.
	GotoExit ID = -1
	// GotoBack on a Pick behaves like the back button.
	GotoBack ID = -2
)

// Tag packs a short ASCII name such as "keyb" into an ID.
func Tag(s string) ID {
	var id ID
	for i := 0; i < len(s) && i < 4; i++ {
		id = id<<8 | ID(s[i])
	}
	return id
}

func (id ID) String() string {
	switch {
	case id == GotoExit:
		return "exit"
	case id == GotoBack:
		return "back"
	case id > 0xffffff:
		b := []byte{byte(id >> 24), byte(id >> 16), byte(id >> 8), byte(id)}
		return string(b)
	default:
		return fmt.Sprintf("%d", int32(id))
	}
}

// Choice is one value of a Cycler. Raw, when set, is shown verbatim
// instead of the localized Text.
type Choice struct {
	Text  locale.ID
	Raw   string
	Value int
}

type Cycler struct {
	Value   *int
	Choices []Choice

	// CallbackSetsValue leaves Value alone and lets the item's callback
	// decide what the new value is.
	CallbackSetsValue bool
}

func (c *Cycler) index(v int) int {
	for i, ch := range c.Choices {
		if ch.Value == v {
			return i
		}
	}
	return -1
}

// Item is one row of a menu. Which fields matter depends on Kind.
type Item struct {
	Kind Kind

	Text     locale.ID
	RawText  string
	Generate func() string

	Callback func(nav *Nav, item *Item)
	Goto     ID
	EnableIf func(item *Item) bool

	// Height overrides the kind's row height multiplier when non-zero.
	Height float32

	// ID is reported by Run when this row ends the menu.
	ID int

	Cycler *Cycler
	Need   input.Need
}

// Menu is an ordered list of rows. A KindEnd row, if present, ends it early.
type Menu []Item

func (m Menu) rows() Menu {
	for i := range m {
		if m[i].Kind == KindEnd {
			return m[:i]
		}
	}
	return m
}

// Tree maps menu ids to menus. Entry Root is where navigation starts.
type Tree map[ID]Menu

// Validate checks that the tree can be navigated without tripping a fatal
// configuration error.
func (t Tree) Validate() error {
	if _, ok := t[Root]; !ok {
		return fmt.Errorf("menu tree: no root menu")
	}
	for id, m := range t {
		rows := m.rows()
		if len(rows) > MaxRows {
			return fmt.Errorf("menu %v: %d rows, at most %d", id, len(rows), MaxRows)
		}
		for i := range rows {
			it := &rows[i]
			if it.Kind >= numKinds {
				return fmt.Errorf("menu %v row %d: unsupported kind %v", id, i, it.Kind)
			}
			if it.Goto > 0 {
				if _, ok := t[it.Goto]; !ok {
					return fmt.Errorf("menu %v row %d: goto %v: no such menu", id, i, it.Goto)
				}
			}
			switch it.Kind {
			case KindCycler, KindCMRCycler:
				if it.Cycler == nil || len(it.Cycler.Choices) == 0 {
					return fmt.Errorf("menu %v row %d: cycler without choices", id, i)
				}
			case KindKeyBinding, KindPadBinding, KindMouseBinding:
				if !it.Need.Valid() {
					return fmt.Errorf("menu %v row %d: invalid need %d", id, i, it.Need)
				}
			}
		}
	}
	return nil
}
