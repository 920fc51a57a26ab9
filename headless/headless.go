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

package headless

import (
	"fmt"

	"github.com/jetsetilly/gopherpong/batcher"
	"github.com/jetsetilly/gopherpong/curated"
	"github.com/jetsetilly/gopherpong/geometry"
	"github.com/jetsetilly/gopherpong/logger"
	"github.com/jetsetilly/gopherpong/pong"
	"github.com/jetsetilly/gopherpong/random"
	"github.com/jetsetilly/gopherpong/userinput"
)

// ErrConfig is returned by Run() if the Config is unusable.
const ErrConfig = "headless: %v"

// Config for a headless run.
type Config struct {
	Frames int
	Seed   int64
	Bound  geometry.Point

	// number of elements in the vertex and index buffers
	Capacity int

	LeftAutopilot  bool
	RightAutopilot bool
}

// DefaultConfig returns a Config with a court the size of the default window
// and only the left paddle on autopilot. Two autopilots never miss the ball.
func DefaultConfig() Config {
	return Config{
		Frames:        3600,
		Seed:          1,
		Bound:         geometry.Point{X: 1024, Y: 768},
		Capacity:      batcher.DefaultCapacity,
		LeftAutopilot: true,
	}
}

// Result of a headless run.
type Result struct {
	Frames     int
	LeftScore  int
	RightScore int

	// number of times each game event was seen
	Events map[pong.Event]int

	// totals for all frames
	Vertices  int
	Indices   int
	DrawCalls int

	// number of frames that could not be drawn completely
	Dropped int
}

func (res Result) String() string {
	return fmt.Sprintf("%d frames: score %d - %d: serves %d, walls %d, paddles %d: %d vertices, %d indices, %d draw calls, %d dropped",
		res.Frames, res.LeftScore, res.RightScore,
		res.Events[pong.EventServe], res.Events[pong.EventWall], res.Events[pong.EventPaddle],
		res.Vertices, res.Indices, res.DrawCalls, res.Dropped)
}

// GameEvent implements the pong.Listener interface.
func (res *Result) GameEvent(ev pong.Event) {
	res.Events[ev]++
}

// counter implements the batcher.Device interface.
type counter struct {
	vertices  int
	indices   int
	drawCalls int
}

func (c *counter) UploadVertices(data []float32) {
	c.vertices += len(data)
}

func (c *counter) UploadIndices(data []uint32) {
	c.indices += len(data)
}

func (c *counter) DrawTriangles(_ int) {
	c.drawCalls++
}

// Run the game for the number of frames specified in the Config.
func Run(cfg Config) (Result, error) {
	if cfg.Frames < 0 {
		return Result{}, curated.Errorf(ErrConfig, "negative number of frames")
	}
	if cfg.Bound.X <= 0 || cfg.Bound.Y <= 0 {
		return Result{}, curated.Errorf(ErrConfig, "court has no area")
	}

	res := Result{
		Events: make(map[pong.Event]int),
	}

	g, err := pong.NewGame(cfg.Bound, random.NewPredictable(cfg.Seed))
	if err != nil {
		return res, curated.Errorf(ErrConfig, err)
	}
	g.AddListener(&res)

	keys := userinput.NewState()

	var autopilots []*pong.Autopilot
	if cfg.LeftAutopilot {
		autopilots = append(autopilots, pong.NewAutopilot(&g.Left, keys))
	}
	if cfg.RightAutopilot {
		autopilots = append(autopilots, pong.NewAutopilot(&g.Right, keys))
	}

	buf := batcher.NewBuffer(cfg.Capacity, cfg.Capacity)
	defer buf.Destroy()

	dev := &counter{}

	for res.Frames = 0; res.Frames < cfg.Frames; res.Frames++ {
		for _, ap := range autopilots {
			ap.Drive(&g.Ball)
		}

		// toggling the key means that it is released every other frame
		switch g.State {
		case pong.Begin:
			keys.Set(pong.LaunchKey, !keys.Held(pong.LaunchKey))
		case pong.Over:
			keys.Set(pong.RestartKey, !keys.Held(pong.RestartKey))
		}

		err = g.Update(keys)
		if err != nil {
			return res, err
		}

		err = g.Draw(buf)
		if err != nil {
			if !curated.Is(err, batcher.ErrCapacity) {
				return res, err
			}
			logger.Log(logger.Allow, "headless", err.Error())
			res.Dropped++
		}

		err = buf.Flush(dev)
		if err != nil {
			return res, err
		}

		keys.EndFrame()
	}

	res.LeftScore = g.Left.Score
	res.RightScore = g.Right.Score
	res.Vertices = dev.vertices
	res.Indices = dev.indices
	res.DrawCalls = dev.drawCalls

	logger.Logf(logger.Allow, "headless", "%s", res.String())

	return res, nil
}
