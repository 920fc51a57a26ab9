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

package playmode

import (
	"github.com/jetsetilly/gopherpong/logger"
	"github.com/jetsetilly/gopherpong/pong"
	"github.com/jetsetilly/gopherpong/pong/dump"
	"github.com/jetsetilly/gopherpong/userinput"
)

// keys that are handled by the play loop rather than by the game
const (
	quitKey = userinput.KeyEscape
	dumpKey = userinput.KeyF10
)

// handleKeys deals with the keys that are not part of the game. Returns false
// if the play loop should end.
func handleKeys(keys *userinput.State, g *pong.Game) bool {
	if keys.Released(quitKey) {
		return false
	}

	if keys.Released(dumpKey) {
		if _, err := dump.WriteFile(g); err != nil {
			logger.Logf(logger.Allow, "playmode", "%v", err)
		}
	}

	return true
}

// prompt returns the text shown in the middle of the window for the state.
func prompt(state pong.State) string {
	switch state {
	case pong.Begin:
		return "SPACE to serve"
	case pong.Over:
		return "RETURN to restart"
	}
	return ""
}
