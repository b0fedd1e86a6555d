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

package sdlvis

import (
	"github.com/jetsetilly/petvis/prefs"
	"github.com/jetsetilly/petvis/resources"
)

type preferences struct {
	img *SdlVis
	dsk *prefs.Disk

	// fraction of brightness an unlit cell keeps from one render tick to
	// the next
	sustain prefs.Float

	// phosphor tint. the alpha value is applied to dim pixels only
	red   prefs.Float
	green prefs.Float
	blue  prefs.Float
	alpha prefs.Float

	// window size multiplier at startup
	scale prefs.Float

	fullScreen prefs.Bool

	// serial device to read from. empty means discover
	device prefs.String
}

func newPreferences(img *SdlVis) (*preferences, error) {
	p := &preferences{img: img}
	p.setDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("display.sustain", &p.sustain)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.red", &p.red)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.green", &p.green)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.blue", &p.blue)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.alpha", &p.alpha)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.scale", &p.scale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.fullscreen", &p.fullScreen)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("serial.device", &p.device)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (p *preferences) setDefaults() {
	_ = p.sustain.Set(0.8)

	// green phosphor
	_ = p.red.Set(0.24)
	_ = p.green.Set(1.0)
	_ = p.blue.Set(0.55)
	_ = p.alpha.Set(0.0)

	_ = p.scale.Set(2.0)
	_ = p.fullScreen.Set(false)
	_ = p.device.Set("")
}

func (p *preferences) colouration() [4]float32 {
	return [4]float32{
		float32(p.red.Get().(float64)),
		float32(p.green.Get().(float64)),
		float32(p.blue.Get().(float64)),
		float32(p.alpha.Get().(float64)),
	}
}

func (p *preferences) save() error {
	return p.dsk.Save()
}
