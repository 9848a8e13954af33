package prefs

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/appengine-ltd/retro-rally/internal/input"
)

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// suggest returns the candidate closest to name, or "" when nothing is
// close enough to be a likely typo.
func suggest(name string, candidates []string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	best, bestDist := "", -1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(name, strings.ToLower(cand))
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func unknown(what, name string, candidates []string) error {
	if s := suggest(name, candidates); s != "" {
		return fmt.Errorf("unknown %s %q (did you mean %q?)", what, name, s)
	}
	return fmt.Errorf("unknown %s %q", what, name)
}

func padBindingNames() []string {
	out := []string{"none"}
	for b := input.PadButton(0); b < input.NumPadButtons; b++ {
		out = append(out, input.ButtonBinding(b).String())
	}
	for a := input.PadAxis(0); a < input.NumPadAxes; a++ {
		out = append(out, input.AxisPlus(a).String(), input.AxisMinus(a).String())
	}
	return out
}

func mouseButtonNames() []string {
	out := make([]string, 0, input.NumMouseButtons)
	for b := input.MouseButton(0); b < input.NumMouseButtons; b++ {
		out = append(out, b.String())
	}
	return out
}

func parseKey(name string) (input.Key, error) {
	if strings.EqualFold(strings.TrimSpace(name), "none") || strings.TrimSpace(name) == "" {
		return input.KeyNull, nil
	}
	if k, ok := input.KeyByName(name); ok {
		return k, nil
	}
	return input.KeyNull, unknown("key", name, input.KeyNames())
}

func parsePad(name string) (input.PadBinding, error) {
	pb, err := input.ParsePadBinding(name)
	if err != nil {
		return input.PadBinding{}, unknown("pad binding", name, padBindingNames())
	}
	return pb, nil
}

func parseMouse(name string) (input.MouseButton, error) {
	if strings.TrimSpace(name) == "" {
		return input.MouseNone, nil
	}
	if b, ok := input.MouseButtonByName(name); ok {
		return b, nil
	}
	return input.MouseNone, unknown("mouse button", name, mouseButtonNames())
}

func keyText(k input.Key) string {
	if k == input.KeyNull {
		return "none"
	}
	return k.String()
}
