//go:build cgo

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/appengine-ltd/retro-rally/internal/gui"
	"github.com/appengine-ltd/retro-rally/internal/prefs"
	flag "github.com/spf13/pflag"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		windowed    bool
		noAudio     bool
		players     int
		prefsPath   string
		lang        string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&windowed, "windowed", false, "ignore the saved fullscreen setting")
	flag.BoolVar(&noAudio, "no-audio", false, "run without sound")
	flag.IntVarP(&players, "players", "p", 0, "number of local players (1-4)")
	flag.StringVar(&prefsPath, "prefs", "", "preferences file (default: user config dir)")
	flag.StringVar(&lang, "lang", "", "language tag, e.g. en or fr")
	flag.Parse()

	if showVersion {
		fmt.Printf("Retro Rally %s (%s) %s\n", version, commit, date)
		return
	}

	logger := log.New(os.Stderr, "retro-rally: ", log.LstdFlags)
	if prefsPath == "" {
		p, err := prefs.DefaultPath()
		if err != nil {
			logger.Printf("no config dir, using %s: %v", prefs.FileName, err)
			p = prefs.FileName
		}
		prefsPath = p
	}

	app := gui.NewApp(gui.AppConfig{
		Version:   version,
		PrefsPath: prefsPath,
		Windowed:  windowed,
		NoAudio:   noAudio,
		Players:   players,
		Language:  lang,
		Logger:    logger,
	})

	if err := app.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
