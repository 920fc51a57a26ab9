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

package test_test

import (
	"bytes"
	"go/format"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// every Go file in the module must be unchanged by gofmt
func TestSourceFormatting(t *testing.T) {
	root := ".."
	err := filepath.WalkDir(root, func(pth string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// the underscore and dot prefixes are ignored by the go tool too
			if pth != root && (strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(pth) != ".go" {
			return nil
		}

		src, err := os.ReadFile(pth)
		if err != nil {
			return err
		}
		fmtd, err := format.Source(src)
		if err != nil {
			t.Errorf("%s: %v", pth, err)
			return nil
		}
		if !bytes.Equal(src, fmtd) {
			t.Errorf("%s is not gofmt formatted", pth)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("%v", err)
	}
}
