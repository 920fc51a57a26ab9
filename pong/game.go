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

package pong

import (
	"github.com/jetsetilly/gopherpong/batcher"
	"github.com/jetsetilly/gopherpong/curated"
	"github.com/jetsetilly/gopherpong/geometry"
	"github.com/jetsetilly/gopherpong/logger"
	"github.com/jetsetilly/gopherpong/random"
)

// Sentinel error patterns.
const (
	ErrNilArg = "pong: nil argument: %s"
)

// Game is the complete state of a match.
type Game struct {
	State State
	Left  Paddle
	Right Paddle
	Ball  Ball

	// size of the court. the court covers the entire window
	Bound geometry.Point

	rnd       *random.Random
	listeners []Listener
}

// NewGame is the preferred method of initialisation for the Game type.
func NewGame(bound geometry.Point, rnd *random.Random) (*Game, error) {
	if rnd == nil {
		return nil, curated.Errorf(ErrNilArg, "random")
	}

	g := &Game{
		State: Begin,
		Left:  NewPaddle(Left, bound),
		Right: NewPaddle(Right, bound),
		Ball:  NewBall(bound),
		Bound: bound,
		rnd:   rnd,
	}

	return g, nil
}

// AddListener registers a Listener to be notified of game events.
func (g *Game) AddListener(l Listener) {
	if l == nil {
		logger.Log(logger.Allow, "pong", "nil listener ignored")
		return
	}
	g.listeners = append(g.listeners, l)
}

func (g *Game) notify(ev Event) {
	for _, l := range g.listeners {
		l.GameEvent(ev)
	}
}

// Resize changes the size of the court. The paddles are moved so that they
// stay at the edges of the court. A ball that has not been launched is moved
// to the new centre.
func (g *Game) Resize(bound geometry.Point) {
	g.Bound = bound
	g.Left.Resize(bound)
	g.Right.Resize(bound)
	if g.State == Begin {
		g.Ball.Reset(bound)
	}
}

// Update advances the game by one frame.
func (g *Game) Update(input Input) error {
	if input == nil {
		return curated.Errorf(ErrNilArg, "input")
	}

	g.Left.Update(input, g.Bound)
	g.Right.Update(input, g.Bound)

	switch g.State {
	case Begin:
		if input.Released(LaunchKey) {
			g.Ball.Launch(g.rnd)
			g.State = Gameplay
			g.notify(EventServe)
		}

	case Gameplay:
		if ev, ok := g.Ball.Update(&g.Left, &g.Right, g.Bound); ok {
			g.notify(ev)
		}

		if out, side := g.Ball.OutOfPlay(g.Bound); out {
			// the player on the opposite side to where the ball left the
			// court wins the point
			if side == Left {
				g.Right.IncrementScore()
			} else {
				g.Left.IncrementScore()
			}
			logger.Logf(logger.Allow, "pong", "score %d - %d", g.Left.Score, g.Right.Score)
			g.State = Over
			g.notify(EventScore)
		}

	case Over:
		if input.Released(RestartKey) {
			g.Ball.Reset(g.Bound)
			g.Left.Reset(g.Bound)
			g.Right.Reset(g.Bound)
			g.State = Begin
		}
	}

	return nil
}

// Draw pushes the court, the paddles and the ball into the buffer. The first
// error encountered stops the drawing for the frame.
func (g *Game) Draw(buf *batcher.Buffer) error {
	if buf == nil {
		return curated.Errorf(ErrNilArg, "buffer")
	}

	// net
	x := g.Bound.X/2 - netWidth/2
	for y := 0; y < g.Bound.Y; y += netPeriod {
		err := batcher.Rect(buf, geometry.NewRect(x, y, netWidth, netDash), batcher.Dim)
		if err != nil {
			return err
		}
	}

	for _, r := range [3]geometry.Rect{g.Left.Rect, g.Right.Rect, g.Ball.Rect} {
		err := batcher.Rect(buf, r, batcher.White)
		if err != nil {
			return err
		}
	}

	return nil
}
