// This file is part of Petvis.
//
// Petvis is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Petvis is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Petvis.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/jetsetilly/petvis/gui/sdlvis"
	"github.com/jetsetilly/petvis/logger"
	"github.com/jetsetilly/petvis/protocol"
	"github.com/jetsetilly/petvis/statsview"
	"github.com/jetsetilly/petvis/version"
)

var cli struct {
	Device     string           `help:"Serial device to read from. The first USB serial device found is used when not given." placeholder:"PATH"`
	Sheet      string           `help:"Path to the character sheet image." placeholder:"PATH" type:"path"`
	Fullscreen bool             `help:"Start in fullscreen."`
	Log        bool             `help:"Echo the log to stderr."`
	Stats      bool             `help:"Launch the runtime statistics viewer."`
	Version    kong.VersionFlag `help:"Print version information and quit."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("petvis"),
		kong.Description("A phosphor display visualiser for the CBM 8032 serial stream."),
		kong.Vars{"version": fmt.Sprintf("%s (%s)", version.ApplicationName, version.Version())},
	)

	if cli.Log {
		logger.SetEcho(os.Stderr, true)
	}

	if cli.Stats {
		if statsview.Available() {
			statsview.Launch(os.Stderr)
		} else {
			fmt.Println("statsview is not available in this build. rebuild with the statsview tag")
			os.Exit(10)
		}
	}

	mbx := &protocol.Mailbox{}

	vis, err := sdlvis.NewSdlVis(mbx, cli.Device, cli.Sheet)
	if err != nil {
		fmt.Printf("* %s\n", err.Error())
		if !cli.Log {
			logger.Tail(os.Stderr, 10)
		}
		os.Exit(10)
	}
	defer vis.Destroy()

	if cli.Fullscreen {
		vis.SetFullScreen(true)
	}

	// the gui is serviced on the main goroutine until the user quits or the
	// process is interrupted
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	for !vis.HasQuit() {
		select {
		case <-intChan:
			vis.Quit()
		default:
		}
		vis.Service()
	}
}
