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

package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/petvis/prefs"
	"github.com/jetsetilly/petvis/test"
)

func TestTypes(t *testing.T) {
	var b prefs.Bool
	test.Equate(t, b.Get().(bool), false)
	test.ExpectSuccess(t, b.Set(true))
	test.Equate(t, b.Get().(bool), true)
	test.ExpectSuccess(t, b.Set("FALSE"))
	test.Equate(t, b.Get().(bool), false)

	var f prefs.Float
	test.ExpectSuccess(t, f.Set(0.75))
	test.Equate(t, f.Get().(float64), 0.75)
	test.ExpectSuccess(t, f.Set("0.5"))
	test.Equate(t, f.Get().(float64), 0.5)
	test.ExpectFailure(t, f.Set("not a number"))

	var n prefs.Int
	test.ExpectSuccess(t, n.Set(3))
	test.Equate(t, n.Get().(int), 3)

	var s prefs.String
	test.ExpectSuccess(t, s.Set("hello"))
	test.Equate(t, s.Get().(string), "hello")
	test.ExpectFailure(t, s.Set("with\nnewline"))
}

func TestSaveLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "test.prefs")

	dsk, err := prefs.NewDisk(pth)
	test.ExpectSuccess(t, err)

	var sustain prefs.Float
	var fullscreen prefs.Bool
	test.ExpectSuccess(t, sustain.Set(0.8))
	test.ExpectSuccess(t, fullscreen.Set(true))
	test.ExpectSuccess(t, dsk.Add("vis.sustain", &sustain))
	test.ExpectSuccess(t, dsk.Add("startup.fullscreen", &fullscreen))
	test.ExpectSuccess(t, dsk.Save())

	// load into a fresh set of values registered with a fresh Disk
	dsk2, err := prefs.NewDisk(pth)
	test.ExpectSuccess(t, err)

	var sustain2 prefs.Float
	var fullscreen2 prefs.Bool
	test.ExpectSuccess(t, dsk2.Add("vis.sustain", &sustain2))
	test.ExpectSuccess(t, dsk2.Add("startup.fullscreen", &fullscreen2))
	test.ExpectSuccess(t, dsk2.Load())

	test.Equate(t, sustain2.Get().(float64), 0.8)
	test.Equate(t, fullscreen2.Get().(bool), true)
}

func TestLoadMissingFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "does_not_exist.prefs")

	dsk, err := prefs.NewDisk(pth)
	test.ExpectSuccess(t, err)

	var b prefs.Bool
	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, dsk.Add("some.key", &b))

	// a missing file is not an error and does not disturb current values
	test.ExpectSuccess(t, dsk.Load())
	test.Equate(t, b.Get().(bool), true)
}

func TestForeignEntriesPreserved(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "test.prefs")

	// save a file containing a key this Disk instance does not know about
	dsk, err := prefs.NewDisk(pth)
	test.ExpectSuccess(t, err)
	var s prefs.String
	test.ExpectSuccess(t, s.Set("kept"))
	test.ExpectSuccess(t, dsk.Add("other.key", &s))
	test.ExpectSuccess(t, dsk.Save())

	// a Disk instance with a different set of keys saves to the same file
	dsk2, err := prefs.NewDisk(pth)
	test.ExpectSuccess(t, err)
	var b prefs.Bool
	test.ExpectSuccess(t, dsk2.Add("my.key", &b))
	test.ExpectSuccess(t, dsk2.Save())

	// the foreign key has survived the rewrite
	dsk3, err := prefs.NewDisk(pth)
	test.ExpectSuccess(t, err)
	var s3 prefs.String
	test.ExpectSuccess(t, dsk3.Add("other.key", &s3))
	test.ExpectSuccess(t, dsk3.Load())
	test.Equate(t, s3.Get().(string), "kept")
}
