package locale

// ID identifies a user-facing string.
type ID string

const (
	Unbound     ID = "unbound"
	PressKey    ID = "press_key"
	PressButton ID = "press_button"
	ClickButton ID = "click_button"
	Button      ID = "button"

	MouseLeft      ID = "mouse_left"
	MouseMiddle    ID = "mouse_middle"
	MouseRight     ID = "mouse_right"
	MouseWheelUp   ID = "mouse_wheel_up"
	MouseWheelDown ID = "mouse_wheel_down"

	ConfigureKeyboardHelp       ID = "configure_keyboard_help"
	ConfigureKeyboardHelpCancel ID = "configure_keyboard_help_cancel"
	ConfigureGamepadHelp        ID = "configure_gamepad_help"
	ConfigureGamepadHelpCancel  ID = "configure_gamepad_help_cancel"
	ConfigureMouseHelp          ID = "configure_mouse_help"
	ConfigureMouseHelpCancel    ID = "configure_mouse_help_cancel"

	GameTitle ID = "game_title"
	Play      ID = "play"
	Players   ID = "players"
	Settings  ID = "settings"
	Quit      ID = "quit"
	Back      ID = "back"

	ConfigureKeyboard ID = "configure_keyboard"
	ConfigureGamepad  ID = "configure_gamepad"
	ConfigureMouse    ID = "configure_mouse"
	Music             ID = "music"
	SFX               ID = "sfx"
	Fullscreen        ID = "fullscreen"
	Language          ID = "language"
	On                ID = "on"
	Off               ID = "off"

	Volume000 ID = "volume_000"
	Volume020 ID = "volume_020"
	Volume040 ID = "volume_040"
	Volume060 ID = "volume_060"
	Volume080 ID = "volume_080"
	Volume100 ID = "volume_100"

	ResetKeyboardBindings ID = "reset_keyboard_bindings"
	ResetGamepadBindings  ID = "reset_gamepad_bindings"
	ResetMouseBindings    ID = "reset_mouse_bindings"

	Player    ID = "player"
	Gamepad   ID = "gamepad"
	Keyboard  ID = "keyboard"
	DriveHelp ID = "drive_help"
)

// NeedText is the description shown next to a bindable need, keyed by the
// need's name.
func NeedText(need string) ID {
	return ID("need_" + need)
}
