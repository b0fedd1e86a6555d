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

// Package resources handles the location of files used by the application
// across invocations: preferences, assets, etc.
//
// If a directory named ".petvis" exists in the current working directory then
// that is used as the base path for all resources. Otherwise the directory is
// placed in the user's configuration directory (eg. $XDG_CONFIG_HOME on
// Linux).
package resources

import (
	"os"
	"path/filepath"
)

// the directory name for all resources.
const baseResourceDir = ".petvis"

// JoinPath returns the resource string (representing the resource to be
// loaded) prepended with operating system and installation specific details.
//
// Any directories in the path that do not exist are created as a side effect.
func JoinPath(resource ...string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", err
	}

	p := make([]string, 0, len(resource)+1)
	p = append(p, base)
	p = append(p, resource...)

	pth := filepath.Join(p...)

	if err := os.MkdirAll(filepath.Dir(pth), 0700); err != nil {
		return "", err
	}

	return pth, nil
}

// basePath returns baseResourceDir with the user's config directory
// prepended, unless the unadorned baseResourceDir can be found in the
// current directory.
func basePath() (string, error) {
	if _, err := os.Stat(baseResourceDir); err == nil {
		return baseResourceDir, nil
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, baseResourceDir[1:]), nil
}
