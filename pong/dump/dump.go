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

// Package dump writes a graph of the game state in the dot format of the
// Graphviz tools. The graph is useful when debugging and can be viewed with:
//
//	dot -Tpng state_20240131_142501.dot > state.png
package dump

import (
	"bufio"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopherpong/curated"
	"github.com/jetsetilly/gopherpong/logger"
	"github.com/jetsetilly/gopherpong/paths"
	"github.com/jetsetilly/gopherpong/pong"
)

// sentinal errors.
const (
	ErrNilArg = "dump: nil argument: %s"
	ErrDump   = "dump: %v"
)

// the subdirectory of the resource directory where dumps are written.
const dumpDir = "dumps"

// Write the graph of the game state to the io.Writer.
func Write(w io.Writer, g *pong.Game) error {
	if g == nil {
		return curated.Errorf(ErrNilArg, "game")
	}
	memviz.Map(w, g)
	return nil
}

// WriteFile writes the graph of the game state to a new file in the dumps
// directory. Returns the name of the file.
func WriteFile(g *pong.Game) (string, error) {
	if g == nil {
		return "", curated.Errorf(ErrNilArg, "game")
	}

	fn, err := paths.ResourcePath(dumpDir, paths.UniqueFilename("state", "dot"))
	if err != nil {
		return "", curated.Errorf(ErrDump, err)
	}

	f, err := os.Create(fn)
	if err != nil {
		return "", curated.Errorf(ErrDump, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := Write(w, g); err != nil {
		return "", err
	}
	if err := w.Flush(); err != nil {
		return "", curated.Errorf(ErrDump, err)
	}

	logger.Logf(logger.Allow, "dump", "game state written to %s", fn)

	return fn, nil
}
