package locale

import "golang.org/x/text/language"

// Messages are fmt-style formats; a literal percent sign is written %%.
var tables = map[language.Tag]map[ID]string{
	language.English: {
		Unbound:     "---",
		PressKey:    "Press a key",
		PressButton: "Press a button",
		ClickButton: "Click a button",
		Button:      "Button",

		MouseLeft:      "Left click",
		MouseMiddle:    "Middle click",
		MouseRight:     "Right click",
		MouseWheelUp:   "Wheel up",
		MouseWheelDown: "Wheel down",

		ConfigureKeyboardHelp:       "Enter to rebind, Delete to clear",
		ConfigureKeyboardHelpCancel: "Press a key, or Esc to cancel",
		ConfigureGamepadHelp:        "A to rebind, X to clear",
		ConfigureGamepadHelpCancel:  "Press a button, or Start to cancel",
		ConfigureMouseHelp:          "Enter to rebind, Delete to clear",
		ConfigureMouseHelpCancel:    "Click a button, or Esc to cancel",

		GameTitle: "RETRO RALLY",
		Play:      "Play",
		Players:   "Players",
		Settings:  "Settings",
		Quit:      "Quit",
		Back:      "Back",

		ConfigureKeyboard: "Configure keyboard",
		ConfigureGamepad:  "Configure gamepad",
		ConfigureMouse:    "Configure mouse",
		Music:             "Music",
		SFX:               "Sound effects",
		Fullscreen:        "Fullscreen",
		Language:          "Language",
		On:                "On",
		Off:               "Off",

		Volume000: "Muted",
		Volume020: "20%%",
		Volume040: "40%%",
		Volume060: "60%%",
		Volume080: "80%%",
		Volume100: "100%%",

		ResetKeyboardBindings: "Reset keyboard bindings",
		ResetGamepadBindings:  "Reset gamepad bindings",
		ResetMouseBindings:    "Reset mouse bindings",

		Player:    "Player %d",
		Gamepad:   "Gamepad",
		Keyboard:  "Keyboard",
		DriveHelp: "Steer with your controls. Esc or Start to stop.",

		NeedText("forward"):        "Accelerate",
		NeedText("backward"):       "Reverse",
		NeedText("left"):           "Steer left",
		NeedText("right"):          "Steer right",
		NeedText("brakes"):         "Brakes",
		NeedText("throw_forward"):  "Throw forward",
		NeedText("throw_backward"): "Throw backward",
		NeedText("camera_mode"):    "Camera mode",
		NeedText("rear_view"):      "Rear view",
	},
	language.French: {
		Unbound:     "---",
		PressKey:    "Appuyez sur une touche",
		PressButton: "Appuyez sur un bouton",
		ClickButton: "Cliquez",
		Button:      "Bouton",

		MouseLeft:      "Clic gauche",
		MouseMiddle:    "Clic milieu",
		MouseRight:     "Clic droit",
		MouseWheelUp:   "Molette haut",
		MouseWheelDown: "Molette bas",

		ConfigureKeyboardHelp:       "Entrée pour changer, Suppr pour effacer",
		ConfigureKeyboardHelpCancel: "Appuyez sur une touche, ou Échap pour annuler",
		ConfigureGamepadHelp:        "A pour changer, X pour effacer",
		ConfigureGamepadHelpCancel:  "Appuyez sur un bouton, ou Start pour annuler",
		ConfigureMouseHelp:          "Entrée pour changer, Suppr pour effacer",
		ConfigureMouseHelpCancel:    "Cliquez, ou Échap pour annuler",

		Play:     "Jouer",
		Players:  "Joueurs",
		Settings: "Réglages",
		Quit:     "Quitter",
		Back:     "Retour",

		ConfigureKeyboard: "Configurer le clavier",
		ConfigureGamepad:  "Configurer la manette",
		ConfigureMouse:    "Configurer la souris",
		Music:             "Musique",
		SFX:               "Effets sonores",
		Fullscreen:        "Plein écran",
		Language:          "Langue",
		On:                "Oui",
		Off:               "Non",

		Volume000: "Muet",

		ResetKeyboardBindings: "Réinitialiser le clavier",
		ResetGamepadBindings:  "Réinitialiser la manette",
		ResetMouseBindings:    "Réinitialiser la souris",

		Player:    "Joueur %d",
		Gamepad:   "Manette",
		Keyboard:  "Clavier",
		DriveHelp: "Pilotez avec vos commandes. Échap ou Start pour arrêter.",

		NeedText("forward"):        "Accélérer",
		NeedText("backward"):       "Reculer",
		NeedText("left"):           "Tourner à gauche",
		NeedText("right"):          "Tourner à droite",
		NeedText("brakes"):         "Freins",
		NeedText("throw_forward"):  "Lancer devant",
		NeedText("throw_backward"): "Lancer derrière",
		NeedText("camera_mode"):    "Caméra",
		NeedText("rear_view"):      "Rétroviseur",
	},
}
