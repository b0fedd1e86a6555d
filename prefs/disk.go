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

// Package prefs provides a mechanism for storing preference values to disk.
//
// Preference values are registered with a Disk instance under a unique key.
// Saving writes every registered value to the preferences file; loading sets
// every registered value from the file, leaving values without an entry
// untouched.
//
// Values of type Bool, Int, Float and String are supported. All types are
// safe for concurrent use, meaning one goroutine can Set() a preference
// while another Get()s it.
package prefs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "petvis.prefs"

// WarningBoilerPlate is the first line in a prefs file. Attempting to load a
// file that does not start with this string is an error.
const WarningBoilerPlate = "*** petvis preferences file; modifications will be lost ***"

// the string that separates the key from the value on each line of the
// prefs file.
const keySep = " :: "

// Disk represents the preference values that are to be saved to (and loaded
// from) a specific file.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to prefs table using the key provided. The key must
// be unique to this Disk instance and must not contain the key separator
// sequence.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(keySep)) {
		return fmt.Errorf("prefs: invalid key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: duplicate key (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// String returns a copy of the on-disk representation of the registered
// preference values.
func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, key := range dsk.sortedKeys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", key, keySep, dsk.entries[key].String()))
	}
	return s.String()
}

// Save all registered preference values to disk. Entries in the file that
// are not registered with this Disk instance are preserved.
func (dsk *Disk) Save() error {
	// load any existing entries that are not ours so they survive the rewrite
	keep, _ := dsk.readFile(func(key string) bool {
		_, ok := dsk.entries[key]
		return !ok
	})

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: save: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	fmt.Fprintln(w, WarningBoilerPlate)

	for _, key := range dsk.sortedKeys() {
		fmt.Fprintf(w, "%s%s%s\n", key, keySep, dsk.entries[key].String())
	}

	keys := make([]string, 0, len(keep))
	for key := range keep {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(w, "%s%s%s\n", key, keySep, keep[key])
	}

	return nil
}

// Load all registered preference values from disk. Values without an entry
// in the file are left untouched. A missing prefs file is not an error; it
// simply means nothing is loaded.
func (dsk *Disk) Load() error {
	vals, err := dsk.readFile(func(key string) bool {
		_, ok := dsk.entries[key]
		return ok
	})
	if err != nil {
		return err
	}

	for key, val := range vals {
		if err := dsk.entries[key].Set(val); err != nil {
			return fmt.Errorf("prefs: load: %v", err)
		}
	}

	return nil
}

// readFile returns the key/value pairs in the prefs file for which the
// filter function returns true.
func (dsk *Disk) readFile(filter func(key string) bool) (map[string]string, error) {
	vals := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return vals, nil
		}
		return nil, fmt.Errorf("prefs: load: %v", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	// check validity of file by checking the first line
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("prefs: load: %v", err)
	}
	if strings.TrimSpace(line) != WarningBoilerPlate {
		return nil, fmt.Errorf("prefs: load: not a valid prefs file (%s)", dsk.path)
	}

	for {
		line, err = r.ReadString('\n')
		if line != "" {
			kv := strings.SplitN(strings.TrimSuffix(line, "\n"), keySep, 2)
			if len(kv) == 2 && filter(kv[0]) {
				vals[kv[0]] = kv[1]
			}
		}
		if err != nil {
			break
		}
	}

	return vals, nil
}

func (dsk *Disk) sortedKeys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
