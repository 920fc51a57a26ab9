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

package pong_test

import (
	"testing"

	"github.com/jetsetilly/gopherpong/batcher"
	"github.com/jetsetilly/gopherpong/curated"
	"github.com/jetsetilly/gopherpong/geometry"
	"github.com/jetsetilly/gopherpong/logger"
	"github.com/jetsetilly/gopherpong/pong"
	"github.com/jetsetilly/gopherpong/random"
	"github.com/jetsetilly/gopherpong/test"
	"github.com/jetsetilly/gopherpong/userinput"
)

var court = geometry.Point{X: 1024, Y: 768}

type listener struct {
	events []pong.Event
}

func (l *listener) GameEvent(ev pong.Event) {
	l.events = append(l.events, ev)
}

func newGame(t *testing.T) (*pong.Game, *userinput.State, *listener) {
	t.Helper()
	g, err := pong.NewGame(court, random.NewPredictable(1))
	if err != nil {
		t.Fatalf("%v", err)
	}
	l := &listener{}
	g.AddListener(l)
	return g, userinput.NewState(), l
}

// frame runs a single frame of the game with the specified keys held down.
// keys that are not listed are released.
func frame(t *testing.T, g *pong.Game, st *userinput.State, keys ...userinput.KeyCode) {
	t.Helper()
	for _, k := range []userinput.KeyCode{
		userinput.KeyW, userinput.KeyS, userinput.KeyUp, userinput.KeyDown,
		userinput.KeySpace, userinput.KeyReturn,
	} {
		st.Set(k, false)
	}
	for _, k := range keys {
		st.Set(k, true)
	}
	test.ExpectSuccess(t, g.Update(st))
	st.EndFrame()
}

func TestInitialPlacement(t *testing.T) {
	g, _, _ := newGame(t)
	test.ExpectEquality(t, g.State, pong.Begin)
	test.ExpectEquality(t, g.Left.Rect, geometry.NewRect(16, 320, 16, 128))
	test.ExpectEquality(t, g.Right.Rect, geometry.NewRect(992, 320, 16, 128))
	test.ExpectEquality(t, g.Ball.Rect, geometry.NewRect(504, 376, 16, 16))
	test.ExpectFailure(t, g.Ball.Launched())
}

func TestPaddleClamp(t *testing.T) {
	g, st, _ := newGame(t)

	check := func() {
		t.Helper()
		for _, p := range []pong.Paddle{g.Left, g.Right} {
			if p.Rect.Position.Y < 0 || p.Rect.Position.Y > court.Y-pong.PaddleHeight {
				t.Fatalf("%s out of court", p.String())
			}
		}
	}

	for i := 0; i < 100; i++ {
		frame(t, g, st, userinput.KeyW, userinput.KeyUp)
		check()
	}
	test.ExpectEquality(t, g.Left.Rect.Position.Y, court.Y-pong.PaddleHeight)
	test.ExpectEquality(t, g.Right.Rect.Position.Y, court.Y-pong.PaddleHeight)

	for i := 0; i < 100; i++ {
		frame(t, g, st, userinput.KeyS, userinput.KeyDown)
		check()
	}
	test.ExpectEquality(t, g.Left.Rect.Position.Y, 0)
	test.ExpectEquality(t, g.Right.Rect.Position.Y, 0)

	// holding both keys cancels out
	frame(t, g, st, userinput.KeyW)
	frame(t, g, st, userinput.KeyW, userinput.KeyS)
	test.ExpectEquality(t, g.Left.Rect.Position.Y, pong.PaddleSpeed)
}

func TestStateMachine(t *testing.T) {
	g, st, l := newGame(t)

	// the ball does not move before launch
	frame(t, g, st)
	test.ExpectEquality(t, g.Ball.Rect.Position, geometry.Point{X: 504, Y: 376})

	// the launch happens on release of the key, not on the press
	frame(t, g, st, pong.LaunchKey)
	test.ExpectEquality(t, g.State, pong.Begin)
	frame(t, g, st)
	test.ExpectEquality(t, g.State, pong.Gameplay)
	test.ExpectSlice(t, l.events, []pong.Event{pong.EventServe})

	d := g.Ball.Direction
	if (d.X != -1 && d.X != 1) || (d.Y != -1 && d.Y != 1) {
		t.Fatalf("unexpected launch direction %s", d)
	}

	// the ball moves once launched
	pos := g.Ball.Rect.Position
	frame(t, g, st)
	test.ExpectEquality(t, g.Ball.Rect.Position, geometry.Point{
		X: pos.X + d.X*pong.BallSpeed,
		Y: pos.Y + d.Y*pong.BallSpeed,
	})

	// the restart key does nothing during gameplay
	frame(t, g, st, pong.RestartKey)
	frame(t, g, st)
	test.ExpectEquality(t, g.State, pong.Gameplay)

	// ball leaves through the left side
	g.Ball.Rect.Position.X = -40
	frame(t, g, st)
	test.ExpectEquality(t, g.State, pong.Over)
	test.ExpectEquality(t, g.Right.Score, 1)
	test.ExpectEquality(t, g.Left.Score, 0)
	test.ExpectEquality(t, l.events[len(l.events)-1], pong.EventScore)

	// the launch key does nothing when the game is over
	frame(t, g, st, pong.LaunchKey)
	frame(t, g, st)
	test.ExpectEquality(t, g.State, pong.Over)

	// restart. paddles are moved back into position and scores are kept
	frame(t, g, st, userinput.KeyW, pong.RestartKey)
	test.ExpectEquality(t, g.State, pong.Over)
	frame(t, g, st)
	test.ExpectEquality(t, g.State, pong.Begin)
	test.ExpectEquality(t, g.Ball.Rect.Position, geometry.Point{X: 504, Y: 376})
	test.ExpectEquality(t, g.Ball.Direction, geometry.Point{})
	test.ExpectEquality(t, g.Left.Rect.Position.Y, 320)
	test.ExpectEquality(t, g.Right.Score, 1)
}

func TestScoreRightExit(t *testing.T) {
	g, st, _ := newGame(t)

	frame(t, g, st, pong.LaunchKey)
	frame(t, g, st)
	test.ExpectEquality(t, g.State, pong.Gameplay)

	g.Ball.Rect.Position.X = court.X + 20
	frame(t, g, st)
	test.ExpectEquality(t, g.State, pong.Over)
	test.ExpectEquality(t, g.Left.Score, 1)
	test.ExpectEquality(t, g.Right.Score, 0)
}

func TestWallBounce(t *testing.T) {
	b := pong.NewBall(court)

	b.Rect.Position.Y = -3
	b.Direction = geometry.Point{X: 1, Y: -1}
	ev, ok := b.Update(nil, nil, court)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev, pong.EventWall)
	test.ExpectEquality(t, b.Direction, geometry.Point{X: 1, Y: 1})
	test.ExpectEquality(t, b.Rect.Position.Y, pong.BallSpeed)

	b.Rect.Position.Y = court.Y - 10
	ev, ok = b.Update(nil, nil, court)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev, pong.EventWall)
	test.ExpectEquality(t, b.Direction, geometry.Point{X: 1, Y: -1})
	test.ExpectEquality(t, b.Rect.Position.Y, court.Y-pong.BallSize-pong.BallSpeed)

	// touching the wall but already moving away from it
	b.Rect.Position.Y = 0
	b.Direction = geometry.Point{X: 1, Y: 1}
	_, ok = b.Update(nil, nil, court)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, b.Direction, geometry.Point{X: 1, Y: 1})
}

func TestPaddleBounce(t *testing.T) {
	left := pong.NewPaddle(pong.Left, court)
	right := pong.NewPaddle(pong.Right, court)
	b := pong.NewBall(court)

	// side of the left paddle
	b.Rect.Position = geometry.Point{X: left.Rect.Right() - 4, Y: left.Rect.Centre().Y - 8}
	b.Direction = geometry.Point{X: -1, Y: 1}
	ev, ok := b.Update(&left, &right, court)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev, pong.EventPaddle)
	test.ExpectEquality(t, b.Direction, geometry.Point{X: 1, Y: 1})

	// side of the right paddle
	b.Rect.Position = geometry.Point{X: right.Rect.Left() - 12, Y: right.Rect.Centre().Y}
	b.Direction = geometry.Point{X: 1, Y: -1}
	_, ok = b.Update(&left, &right, court)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b.Direction, geometry.Point{X: -1, Y: -1})

	// top of the left paddle
	b.Rect.Position = geometry.Point{X: left.Rect.Left() + 4, Y: left.Rect.Top() - 4}
	b.Direction = geometry.Point{X: 1, Y: -1}
	_, ok = b.Update(&left, &right, court)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b.Direction, geometry.Point{X: 1, Y: 1})

	// bottom of the right paddle
	b.Rect.Position = geometry.Point{X: right.Rect.Left() + 4, Y: right.Rect.Bottom() - 12}
	b.Direction = geometry.Point{X: -1, Y: 1}
	_, ok = b.Update(&left, &right, court)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b.Direction, geometry.Point{X: -1, Y: -1})

	// no paddle nearby
	b.Reset(court)
	b.Direction = geometry.Point{X: 1, Y: 1}
	_, ok = b.Update(&left, &right, court)
	test.ExpectFailure(t, ok)
}

func TestLaunch(t *testing.T) {
	rnd := random.NewPredictable(10)
	b := pong.NewBall(court)
	for i := 0; i < 100; i++ {
		b.Launch(rnd)
		test.ExpectSuccess(t, b.Launched())
		if b.Direction.X == 0 || b.Direction.Y == 0 {
			t.Fatalf("launch direction has a zero component: %s", b.Direction)
		}
	}
}

func TestOutOfPlay(t *testing.T) {
	b := pong.NewBall(court)

	out, _ := b.OutOfPlay(court)
	test.ExpectFailure(t, out)

	// partially off the left side is still in play
	b.Rect.Position.X = -10
	out, _ = b.OutOfPlay(court)
	test.ExpectFailure(t, out)

	b.Rect.Position.X = -17
	out, side := b.OutOfPlay(court)
	test.ExpectSuccess(t, out)
	test.ExpectEquality(t, side, pong.Left)

	b.Rect.Position.X = court.X + 1
	out, side = b.OutOfPlay(court)
	test.ExpectSuccess(t, out)
	test.ExpectEquality(t, side, pong.Right)
}

func TestDraw(t *testing.T) {
	g, _, _ := newGame(t)

	buf := batcher.NewBuffer(batcher.DefaultCapacity, batcher.DefaultCapacity)
	test.ExpectSuccess(t, g.Draw(buf))

	// net is made up of 24 dashes, plus two paddles and the ball
	const rects = 24 + 3
	test.ExpectEquality(t, buf.VertexCount(), rects*4*batcher.Stride)
	test.ExpectEquality(t, buf.IndexCount(), rects*6)

	// too small for everything
	small := batcher.NewBuffer(100, 100)
	err := g.Draw(small)
	test.ExpectSuccess(t, curated.Is(err, batcher.ErrCapacity))

	test.ExpectSuccess(t, curated.Is(g.Draw(nil), pong.ErrNilArg))
}

func TestResize(t *testing.T) {
	g, st, _ := newGame(t)

	for i := 0; i < 100; i++ {
		frame(t, g, st, userinput.KeyUp)
	}

	smaller := geometry.Point{X: 640, Y: 480}
	g.Resize(smaller)
	test.ExpectEquality(t, g.Bound, smaller)
	test.ExpectEquality(t, g.Right.Rect.Position, geometry.Point{X: 608, Y: 480 - pong.PaddleHeight})
	test.ExpectEquality(t, g.Left.Rect.Position.X, 16)
	test.ExpectEquality(t, g.Ball.Rect.Position, geometry.Point{X: 312, Y: 232})
}

func TestAutopilot(t *testing.T) {
	g, st, _ := newGame(t)
	ap := pong.NewAutopilot(&g.Left, st)

	g.Ball.Rect.Position.Y = court.Y - pong.BallSize
	for i := 0; i < 100; i++ {
		ap.Drive(&g.Ball)
		test.ExpectSuccess(t, g.Update(st))
		st.EndFrame()
	}

	// the paddle has followed the ball to the top of the court
	test.ExpectEquality(t, g.Left.Rect.Top(), court.Y)
}

// axisInput reports no held keys and a fixed axis value for every pair of
// keys. paddle movement must come from the axis alone.
type axisInput struct {
	dir int
}

func (in axisInput) Held(_ userinput.KeyCode) bool {
	return false
}

func (in axisInput) Released(_ userinput.KeyCode) bool {
	return false
}

func (in axisInput) Axis(_ userinput.KeyCode, _ userinput.KeyCode) int {
	return in.dir
}

func TestPaddleAxis(t *testing.T) {
	p := pong.NewPaddle(pong.Left, court)
	y := p.Rect.Position.Y

	p.Update(axisInput{dir: 1}, court)
	test.ExpectEquality(t, p.Rect.Position.Y, y+pong.PaddleSpeed)

	p.Update(axisInput{dir: -1}, court)
	p.Update(axisInput{dir: -1}, court)
	test.ExpectEquality(t, p.Rect.Position.Y, y-pong.PaddleSpeed)

	p.Update(axisInput{}, court)
	test.ExpectEquality(t, p.Rect.Position.Y, y-pong.PaddleSpeed)
}

func TestNilListener(t *testing.T) {
	g, _, _ := newGame(t)

	logger.Clear()
	g.AddListener(nil)

	tw := &test.Writer{}
	logger.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "pong: nil listener ignored\n")
}

func TestNilArguments(t *testing.T) {
	_, err := pong.NewGame(court, nil)
	test.ExpectSuccess(t, curated.Is(err, pong.ErrNilArg))

	g, _, _ := newGame(t)
	test.ExpectSuccess(t, curated.Is(g.Update(nil), pong.ErrNilArg))
}
