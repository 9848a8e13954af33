package menu

import (
	"fmt"

	"github.com/appengine-ltd/retro-rally/internal/input"
	"github.com/appengine-ltd/retro-rally/internal/locale"
)

// layout makes id the current menu and builds its text nodes from scratch.
func (n *Nav) layout(id ID) {
	m, ok := n.tree[id]
	if !ok {
		fatalAlert("no menu %v in tree", id)
		return
	}
	rows := m.rows()
	if len(rows) > MaxRows {
		fatalAlert("menu %v has %d rows, at most %d", id, len(rows), MaxRows)
		return
	}

	n.history[n.historyPos].menu = id
	n.menuID = id
	n.menu = rows
	n.pick = -1
	n.idle = 0
	n.row = n.history[n.historyPos].row
	n.drop()

	var total float32
	for i := range rows {
		total += rowHeight(&rows[i]) * n.style.RowHeight
	}

	y := layoutOffsetY - total/2
	var sweep float32
	for row := range rows {
		it := &rows[row]
		n.rowY[row] = y

		k := kindOf(it.Kind)
		if k.layout == nil {
			fatalAlert("menu %v row %d: unsupported item kind %v", id, row, it.Kind)
			return
		}
		k.layout(n, row, sweep)

		y += rowHeight(it) * n.style.RowHeight
		if it.Kind != KindSpacer {
			sweep -= .2
		}
	}

	if n.row <= 0 || n.row >= len(rows) || !Selectable(&rows[n.row]) {
		n.row = -1
		n.navigateVertically(1)
	}
}

// makeText creates the node at row and col, or retitles the existing one so
// its animation state carries over.
func (n *Nav) makeText(text string, row, col int) *TextNode {
	if node := n.nodes[row][col]; node != nil {
		node.Text = text
		return node
	}

	var startX float32
	align := AlignCenter
	if !n.style.CenteredText {
		startX = leftAlignedStartX
		align = AlignLeft
	}
	node := &TextNode{
		Text:      text,
		Row:       row,
		Col:       col,
		X:         startX + colX[col],
		Y:         n.rowY[row],
		Scale:     n.style.StandardScale * kindOf(n.menu[row].Kind).height,
		Align:     align,
		MinExtent: n.style.UniformXExtent,
		baseX:     startX + colX[col],
	}
	n.nodes[row][col] = node
	return node
}

func (n *Nav) itemLabel(it *Item) string {
	switch {
	case it.RawText != "":
		return it.RawText
	case it.Generate != nil:
		return it.Generate()
	default:
		return n.localize(it.Text)
	}
}

// replaceText retitles every row whose definition uses orig.
func (n *Nav) replaceText(orig, with locale.ID) {
	for row := range n.menu {
		if n.menu[row].Text == orig {
			n.makeText(n.localize(with), row, 0)
		}
	}
}

func (n *Nav) labelNode(text string, row int, base Color, sweep float32) {
	node := n.makeText(text, row, 0)
	node.role = RoleLabel
	node.base = base
	node.sweep = sweep
}

func (n *Nav) layoutTitle(row int, _ float32) {
	n.labelNode(n.itemLabel(&n.menu[row]), row, n.style.TitleColor, .5)
}

func (n *Nav) layoutSubtitle(row int, _ float32) {
	n.labelNode(n.itemLabel(&n.menu[row]), row, n.style.LabelColor, .5)
}

func (n *Nav) layoutLabel(row int, sweep float32) {
	n.labelNode(n.itemLabel(&n.menu[row]), row, n.style.LabelColor, sweep)
}

func (n *Nav) layoutPick(row int, sweep float32) {
	it := &n.menu[row]
	node := n.makeText(n.itemLabel(it), row, 0)
	node.role = RoleAction
	node.sweep = sweep
	node.muted = !Selectable(it)
}

func (n *Nav) cyclerValueText(row int) string {
	c := n.menu[row].Cycler
	if c == nil || c.Value == nil {
		return "???"
	}
	i := c.index(*c.Value)
	if i < 0 {
		return "???"
	}
	if c.Choices[i].Raw != "" {
		return c.Choices[i].Raw
	}
	return n.localize(c.Choices[i].Text)
}

func (n *Nav) layoutCyclerValue(row int) *TextNode {
	node := n.makeText(n.cyclerValueText(row), row, 1)
	node.role = RoleAction
	return node
}

func (n *Nav) layoutCycler(row int, sweep float32) {
	node := n.makeText(n.itemLabel(&n.menu[row])+":", row, 0)
	node.role = RoleAction
	node.sweep = sweep
	n.layoutCyclerValue(row).sweep = sweep
}

func (n *Nav) layoutCMRCycler(row int, sweep float32) {
	text := fmt.Sprintf("%s: %s", n.itemLabel(&n.menu[row]), n.cyclerValueText(row))
	node := n.makeText(text, row, 0)
	node.role = RoleAction
	node.sweep = sweep
}

func (n *Nav) needLabel(row int) string {
	return n.localize(locale.NeedText(n.menu[row].Need.String())) + ":"
}

func (n *Nav) layoutKeyBinding(row int, sweep float32) {
	n.labelNode(n.needLabel(row), row, n.style.InactiveColor2, sweep)
	for j := 0; j < input.MaxKeysPerNeed; j++ {
		node := n.makeText(n.keyBindingName(row, j), row, j+1)
		node.role = RoleKeyBinding
		node.sweep = sweep
	}
}

func (n *Nav) layoutPadBinding(row int, sweep float32) {
	n.labelNode(n.needLabel(row), row, n.style.InactiveColor2, sweep)
	for j := 0; j < input.MaxPadPerNeed; j++ {
		node := n.makeText(n.padBindingName(row, j), row, j+1)
		node.role = RolePadBinding
		node.sweep = sweep
	}
}

func (n *Nav) layoutMouseBinding(row int, sweep float32) {
	label := n.makeText(n.needLabel(row), row, 0)
	label.role = RoleAction
	label.sweep = sweep

	node := n.makeText(n.mouseBindingName(row), row, 1)
	node.role = RoleMouseBinding
	node.sweep = sweep
}

func (n *Nav) binding(row int) *input.Binding {
	return &n.deps.Bindings[n.menu[row].Need]
}

func (n *Nav) keyBindingName(row, col int) string {
	k := n.binding(row).Keys[col]
	if k == input.KeyNull {
		return n.localize(locale.Unbound)
	}
	return k.String()
}

var padButtonLabels = [input.NumPadButtons]string{
	input.PadA:             "A",
	input.PadB:             "B",
	input.PadX:             "X",
	input.PadY:             "Y",
	input.PadBack:          "Back",
	input.PadGuide:         "Guide",
	input.PadStart:         "Start",
	input.PadLeftStick:     "Push LS",
	input.PadRightStick:    "Push RS",
	input.PadLeftShoulder:  "LB",
	input.PadRightShoulder: "RB",
	input.PadDpadUp:        "D-Pad Up",
	input.PadDpadDown:      "D-Pad Down",
	input.PadDpadLeft:      "D-Pad Left",
	input.PadDpadRight:     "D-Pad Right",
}

var padAxisLabels = [input.NumPadAxes][2]string{
	input.PadLeftX:        {"LS left", "LS right"},
	input.PadLeftY:        {"LS up", "LS down"},
	input.PadRightX:       {"RS left", "RS right"},
	input.PadRightY:       {"RS up", "RS down"},
	input.PadTriggerLeft:  {"LT", "LT"},
	input.PadTriggerRight: {"RT", "RT"},
}

// PadBindingName is the short on-screen label of a gamepad binding. Unbound
// bindings return "".
func PadBindingName(pb input.PadBinding) string {
	switch pb.Type {
	case input.PadTypeButton:
		if b := input.PadButton(pb.ID); b < input.NumPadButtons {
			return padButtonLabels[b]
		}
	case input.PadTypeAxisMinus:
		if a := input.PadAxis(pb.ID); a < input.NumPadAxes {
			return padAxisLabels[a][0]
		}
	case input.PadTypeAxisPlus:
		if a := input.PadAxis(pb.ID); a < input.NumPadAxes {
			return padAxisLabels[a][1]
		}
	case input.PadUnbound:
		return ""
	}
	return "???"
}

func (n *Nav) padBindingName(row, col int) string {
	pb := n.binding(row).Pad[col]
	if !pb.Bound() {
		return n.localize(locale.Unbound)
	}
	return PadBindingName(pb)
}

func (n *Nav) mouseBindingName(row int) string {
	switch b := n.binding(row).Mouse; b {
	case input.MouseNone:
		return n.localize(locale.Unbound)
	case input.MouseLeft:
		return n.localize(locale.MouseLeft)
	case input.MouseMiddle:
		return n.localize(locale.MouseMiddle)
	case input.MouseRight:
		return n.localize(locale.MouseRight)
	case input.MouseWheelUp:
		return n.localize(locale.MouseWheelUp)
	case input.MouseWheelDown:
		return n.localize(locale.MouseWheelDown)
	default:
		return fmt.Sprintf("%s %d", n.localize(locale.Button), int(b))
	}
}

// refreshBindings re-renders the slot texts of every binding row of kind,
// after a capture may have stripped inputs from other needs.
func (n *Nav) refreshBindings(kind Kind) {
	for row := range n.menu {
		if n.menu[row].Kind != kind {
			continue
		}
		switch kind {
		case KindKeyBinding:
			for j := 0; j < input.MaxKeysPerNeed; j++ {
				n.makeText(n.keyBindingName(row, j), row, j+1)
			}
		case KindPadBinding:
			for j := 0; j < input.MaxPadPerNeed; j++ {
				n.makeText(n.padBindingName(row, j), row, j+1)
			}
		case KindMouseBinding:
			n.makeText(n.mouseBindingName(row), row, 1)
		}
	}
}
