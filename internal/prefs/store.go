package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/appengine-ltd/retro-rally/internal/input"
	"github.com/spf13/viper"
)

const FileName = "prefs.toml"

// DefaultPath is prefs.toml in the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "retro-rally", FileName), nil
}

// Store reads and writes one TOML preferences file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

func (s *Store) viper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("toml")
	setDefaults(v, Default())
	return v
}

func setDefaults(v *viper.Viper, p Prefs) {
	for key, val := range flatten(p) {
		v.SetDefault(key, val)
	}
}

// flatten maps p to viper keys.
func flatten(p Prefs) map[string]any {
	m := map[string]any{
		"audio.music_volume":    p.MusicVolume,
		"audio.sfx_volume":      p.SFXVolume,
		"video.fullscreen":      p.Fullscreen,
		"language":              p.Language,
		"players.local":         p.LocalPlayers,
		"input.dead_zone":       float64(p.DeadZone),
		"input.ui_dead_zone":    float64(p.UIDeadZone),
		"menu.colors.title":     p.Colors.Title,
		"menu.colors.highlight": p.Colors.Highlight,
		"menu.colors.inactive":  p.Colors.Inactive,
		"menu.colors.label":     p.Colors.Label,
	}
	for n := input.Need(0); n < input.NumRemappableNeeds; n++ {
		b := p.Bindings[n]
		prefix := "bindings." + n.String() + "."
		keys := make([]string, len(b.Keys))
		for i, k := range b.Keys {
			keys[i] = keyText(k)
		}
		pads := make([]string, len(b.Pad))
		for i, pb := range b.Pad {
			pads[i] = pb.String()
		}
		m[prefix+"keys"] = keys
		m[prefix+"pad"] = pads
		m[prefix+"mouse"] = b.Mouse.String()
	}
	return m
}

// Load reads the file. A missing file yields the defaults and no error.
// Entries that do not parse keep their default value; the problems are
// returned joined so the caller can log them.
func (s *Store) Load() (Prefs, error) {
	v := s.viper()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("prefs %s: %w", s.path, err)
	}
	p, err := decode(v)
	if err != nil {
		return p, fmt.Errorf("prefs %s: %w", s.path, err)
	}
	return p, nil
}

func decode(v *viper.Viper) (Prefs, error) {
	p := Default()
	var errs []error

	p.MusicVolume = v.GetInt("audio.music_volume")
	p.SFXVolume = v.GetInt("audio.sfx_volume")
	p.Fullscreen = v.GetBool("video.fullscreen")
	p.Language = v.GetString("language")
	p.LocalPlayers = v.GetInt("players.local")
	p.DeadZone = float32(v.GetFloat64("input.dead_zone"))
	p.UIDeadZone = float32(v.GetFloat64("input.ui_dead_zone"))
	p.Colors = Colors{
		Title:     v.GetString("menu.colors.title"),
		Highlight: v.GetString("menu.colors.highlight"),
		Inactive:  v.GetString("menu.colors.inactive"),
		Label:     v.GetString("menu.colors.label"),
	}

	if p.LocalPlayers < 1 || p.LocalPlayers > input.MaxLocalPlayers {
		errs = append(errs, fmt.Errorf("players.local: %d out of range 1..%d", p.LocalPlayers, input.MaxLocalPlayers))
		p.LocalPlayers = 1
	}

	if sub := v.GetStringMap("bindings"); sub != nil {
		for name := range sub {
			if n, ok := input.NeedByName(name); !ok || !n.Remappable() {
				errs = append(errs, fmt.Errorf("bindings: %w", unknown("need", name, input.NeedNames()[:input.NumRemappableNeeds])))
			}
		}
	}

	for n := input.Need(0); n < input.NumRemappableNeeds; n++ {
		prefix := "bindings." + n.String() + "."
		b := &p.Bindings[n]
		for i, name := range v.GetStringSlice(prefix + "keys") {
			if i >= input.MaxKeysPerNeed {
				break
			}
			k, err := parseKey(name)
			if err != nil {
				errs = append(errs, fmt.Errorf("%skeys: %w", prefix, err))
				continue
			}
			b.Keys[i] = k
		}
		for i, name := range v.GetStringSlice(prefix + "pad") {
			if i >= input.MaxPadPerNeed {
				break
			}
			pb, err := parsePad(name)
			if err != nil {
				errs = append(errs, fmt.Errorf("%spad: %w", prefix, err))
				continue
			}
			b.Pad[i] = pb
		}
		m, err := parseMouse(v.GetString(prefix + "mouse"))
		if err != nil {
			errs = append(errs, fmt.Errorf("%smouse: %w", prefix, err))
		} else {
			b.Mouse = m
		}
	}
	return p, errors.Join(errs...)
}

// Save writes p, creating the directory if needed.
func (s *Store) Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	v := viper.New()
	v.SetConfigType("toml")
	for key, val := range flatten(p) {
		v.Set(key, val)
	}
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("prefs %s: %w", s.path, err)
	}
	return nil
}
