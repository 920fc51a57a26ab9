// This file is part of Gopherpong.
//
// Gopherpong is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherpong is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherpong.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jetsetilly/gopherpong/logger"
	"github.com/jetsetilly/gopherpong/modalflag"
	"github.com/jetsetilly/gopherpong/playmode"
	"github.com/jetsetilly/gopherpong/prefs"
	"github.com/jetsetilly/gopherpong/statsview"
)

// values used with os.Exit()
const (
	exitOK    = 0
	exitParse = 10
	exitMode  = 20
)

// number of log entries printed when a mode ends with an error
const recentLogEntries = 10

// the window is created by the sdlplay package, which locks the main
// goroutine to the main thread. launch() must not be started in a new
// goroutine.
func main() {
	os.Exit(launch(os.Args[1:]))
}

func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("PLAY", "HEADLESS")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitParse
	}

	switch md.Mode() {
	case "PLAY":
		err = play(md)
	case "HEADLESS":
		err = runHeadless(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		fmt.Println("* most recent log entries:")
		logger.Tail(os.Stdout, recentLogEntries)
		return exitMode
	}

	return exitOK
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	title := md.AddString("title", "Gopherpong", "window title")
	width := md.AddInt("width", 1024, "window width")
	height := md.AddInt("height", 768, "window height")
	vsync := md.AddBool("vsync", true, "synchronise with the display refresh")
	stats := md.AddBool("stats", false, "show render statistics")
	mute := md.AddBool("mute", false, "pause the audio device")
	wav := md.AddString("wav", "", "record audio to wav file")
	seed := md.AddInt64("seed", 0, "seed for the direction of the ball (0 for random)")
	var profile *bool
	if statsview.Available() {
		profile = md.AddBool("statsview", false, fmt.Sprintf("run the stats server (%s)", statsview.DefaultAddress))
	}
	log := md.AddBool("log", false, "echo debugging log to stderr")
	overrides := md.AddString("prefs", "", "preference overrides (key::value; key::value)")

	md.AdditionalHelp("Escape quits. F10 writes a graph of the game state to the dumps directory.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	// flags that have been set on the command line override the preferences
	// for the session
	var cl []string
	if md.Visited("width") {
		cl = append(cl, fmt.Sprintf("sdlplay.width::%d", *width))
	}
	if md.Visited("height") {
		cl = append(cl, fmt.Sprintf("sdlplay.height::%d", *height))
	}
	if md.Visited("vsync") {
		cl = append(cl, fmt.Sprintf("sdlplay.vsync::%v", *vsync))
	}
	if md.Visited("stats") {
		cl = append(cl, fmt.Sprintf("sdlplay.hudstats::%v", *stats))
	}
	if *overrides != "" {
		cl = append(cl, *overrides)
	}

	err = prefs.SetCommandLine(strings.Join(cl, "; "))
	if err != nil {
		return err
	}

	if profile != nil && *profile {
		statsview.Launch(os.Stdout, "")
	}

	err = playmode.Play(playmode.Config{
		Title:   *title,
		Seed:    *seed,
		Mute:    *mute,
		WavFile: *wav,

		// the overridden values would otherwise be saved to disk
		SavePrefs: len(cl) == 0,
	})
	if err != nil {
		return err
	}

	if unused := prefs.UnusedCommandLine(); unused != "" {
		logger.Logf(logger.Allow, "prefs", "unused overrides: %s", unused)
	}

	return nil
}
