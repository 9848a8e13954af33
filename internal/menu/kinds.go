package menu

// kindInfo is the per-variant behavior of menu rows.
type kindInfo struct {
	// height is the row height multiplier; it also scales the text.
	height     float32
	selectable bool
	layout     func(n *Nav, row int, sweep float32)
	navigate   func(n *Nav, it *Item) error
}

var kinds [numKinds]kindInfo

func init() {
	kinds = [numKinds]kindInfo{
		KindEnd:          {height: 0},
		KindTitle:        {height: 1.4, layout: (*Nav).layoutTitle},
		KindSubtitle:     {height: .8, layout: (*Nav).layoutSubtitle},
		KindLabel:        {height: 1, layout: (*Nav).layoutLabel},
		KindSpacer:       {height: .5, layout: func(*Nav, int, float32) {}},
		KindPick:         {height: 1, selectable: true, layout: (*Nav).layoutPick, navigate: (*Nav).navigatePick},
		KindCycler:       {height: 1, selectable: true, layout: (*Nav).layoutCycler, navigate: (*Nav).navigateCycler},
		KindCMRCycler:    {height: 1, selectable: true, layout: (*Nav).layoutCMRCycler, navigate: (*Nav).navigateCycler},
		KindKeyBinding:   {height: 1, selectable: true, layout: (*Nav).layoutKeyBinding, navigate: (*Nav).navigateKeyBinding},
		KindPadBinding:   {height: 1, selectable: true, layout: (*Nav).layoutPadBinding, navigate: (*Nav).navigatePadBinding},
		KindMouseBinding: {height: 1, selectable: true, layout: (*Nav).layoutMouseBinding, navigate: (*Nav).navigateMouseBinding},
	}
}

func kindOf(k Kind) kindInfo {
	if k < numKinds {
		return kinds[k]
	}
	return kindInfo{}
}

func rowHeight(it *Item) float32 {
	if it.Height != 0 {
		return it.Height
	}
	return kindOf(it.Kind).height
}

// Selectable reports whether the cursor may rest on the item.
func Selectable(it *Item) bool {
	if !kindOf(it.Kind).selectable {
		return false
	}
	if it.EnableIf != nil {
		return it.EnableIf(it)
	}
	return true
}
