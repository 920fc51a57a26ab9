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

package headless_test

import (
	"testing"

	"github.com/jetsetilly/gopherpong/curated"
	"github.com/jetsetilly/gopherpong/geometry"
	"github.com/jetsetilly/gopherpong/headless"
	"github.com/jetsetilly/gopherpong/pong"
	"github.com/jetsetilly/gopherpong/test"
)

func TestShortRun(t *testing.T) {
	cfg := headless.DefaultConfig()
	cfg.Frames = 10

	res, err := headless.Run(cfg)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.Frames, 10)

	// the ball is served on the second frame and can't reach a wall or a
	// paddle in the frames that remain
	test.ExpectEquality(t, res.Events[pong.EventServe], 1)
	test.ExpectEquality(t, res.Events[pong.EventWall], 0)
	test.ExpectEquality(t, res.Events[pong.EventPaddle], 0)
	test.ExpectEquality(t, res.LeftScore, 0)
	test.ExpectEquality(t, res.RightScore, 0)

	// 24 net dashes, two paddles and the ball every frame
	test.ExpectEquality(t, res.Vertices, 10*27*36)
	test.ExpectEquality(t, res.Indices, 10*27*6)
	test.ExpectEquality(t, res.DrawCalls, 10)
	test.ExpectEquality(t, res.Dropped, 0)
}

func TestLongRun(t *testing.T) {
	cfg := headless.DefaultConfig()
	cfg.Frames = 2000
	cfg.RightAutopilot = false

	res, err := headless.Run(cfg)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.DrawCalls, 2000)
	test.ExpectEquality(t, res.Dropped, 0)

	// the right paddle never moves so the left player scores every point
	points := res.LeftScore + res.RightScore
	if points == 0 {
		t.Fatalf("no points scored in %d frames", res.Frames)
	}
	test.ExpectEquality(t, res.RightScore, 0)
	test.ExpectEquality(t, res.Events[pong.EventScore], points)

	// every point is followed by a restart and a new serve unless the run
	// ended first
	if res.Events[pong.EventServe] != points && res.Events[pong.EventServe] != points+1 {
		t.Errorf("unexpected number of serves (%d) for %d points", res.Events[pong.EventServe], points)
	}
}

func TestVersus(t *testing.T) {
	cfg := headless.DefaultConfig()
	cfg.Frames = 2000
	cfg.RightAutopilot = true

	// two autopilots never miss so the game never leaves the first rally
	res, err := headless.Run(cfg)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.LeftScore, 0)
	test.ExpectEquality(t, res.RightScore, 0)
	test.ExpectEquality(t, res.Events[pong.EventServe], 1)
	test.ExpectInequality(t, res.Events[pong.EventPaddle], 0)
}

func TestPredictable(t *testing.T) {
	cfg := headless.DefaultConfig()
	cfg.Frames = 1000

	a, err := headless.Run(cfg)
	test.ExpectSuccess(t, err)
	b, err := headless.Run(cfg)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a.String(), b.String())
}

func TestDropped(t *testing.T) {
	cfg := headless.DefaultConfig()
	cfg.Frames = 5
	cfg.Capacity = 100

	res, err := headless.Run(cfg)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.Dropped, 5)

	// the partial frame is still flushed
	test.ExpectEquality(t, res.DrawCalls, 5)
	test.ExpectEquality(t, res.Vertices, 5*72)
}

func TestBadConfig(t *testing.T) {
	cfg := headless.DefaultConfig()
	cfg.Frames = -1
	_, err := headless.Run(cfg)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, headless.ErrConfig))

	cfg = headless.DefaultConfig()
	cfg.Bound = geometry.Point{}
	_, err = headless.Run(cfg)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, headless.ErrConfig))
}
