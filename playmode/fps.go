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
	"fmt"
	"time"

	"github.com/jetsetilly/gopherpong/batcher"
)

// weight given to the most recent frame time
const fpsSmoothing = 0.05

// fpsMeter keeps a smoothed measurement of the frame rate.
type fpsMeter struct {
	fps float64
}

func newFPSMeter() *fpsMeter {
	return &fpsMeter{}
}

// tick updates the measurement with the duration of the most recent frame.
func (m *fpsMeter) tick(delta time.Duration) {
	if delta <= 0 {
		return
	}
	v := 1.0 / delta.Seconds()
	if m.fps == 0 {
		m.fps = v
		return
	}
	m.fps += (v - m.fps) * fpsSmoothing
}

// stats returns the text for the HUD.
func (m *fpsMeter) stats(st batcher.FlushStats) string {
	return fmt.Sprintf("%.1f fps\n%d vertices\n%d indices\n%d draw calls",
		m.fps, st.Vertices, st.Indices, st.DrawCalls)
}
