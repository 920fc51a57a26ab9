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
	"fmt"

	"github.com/jetsetilly/gopherpong/geometry"
	"github.com/jetsetilly/gopherpong/random"
)

// Ball is the ball.
type Ball struct {
	Rect geometry.Rect

	// both components are in the range -1 to 1. a zero direction means that
	// the ball has not been launched
	Direction geometry.Point
}

// NewBall is the preferred method of initialisation for the Ball type. The
// ball is placed in the centre of the court and is not moving.
func NewBall(bound geometry.Point) Ball {
	b := Ball{
		Rect: geometry.NewRect(0, 0, BallSize, BallSize),
	}
	b.Reset(bound)
	return b
}

func (b *Ball) String() string {
	return fmt.Sprintf("ball: %s dir %s", b.Rect, b.Direction)
}

// Reset moves the ball to the centre of the court and stops it.
func (b *Ball) Reset(bound geometry.Point) {
	b.Rect.Move(geometry.Point{
		X: bound.X/2 - b.Rect.Size.X/2,
		Y: bound.Y/2 - b.Rect.Size.Y/2,
	})
	b.Direction = geometry.Point{}
}

// Launched returns true if the ball is moving.
func (b *Ball) Launched() bool {
	return b.Direction.X != 0 || b.Direction.Y != 0
}

// Launch gives the ball a random diagonal direction.
func (b *Ball) Launch(rnd *random.Random) {
	b.Direction = geometry.Point{}
	for b.Direction.X == 0 {
		b.Direction.X = rnd.Sign()
	}
	for b.Direction.Y == 0 {
		b.Direction.Y = rnd.Sign()
	}
}

// Update bounces the ball off the top and bottom of the court and off the
// paddles and then moves the ball. The returned bool is false if the ball
// did not bounce off anything.
func (b *Ball) Update(left *Paddle, right *Paddle, bound geometry.Point) (Event, bool) {
	var ev Event
	var bounced bool

	if b.Rect.Bottom() <= 0 || b.Rect.Top() >= bound.Y {
		geometry.ClampY(&b.Rect, bound)

		// only reverse direction if the ball is heading into the wall.
		// otherwise a ball that is still touching the wall on the next frame
		// would turn back into it
		if (b.Rect.Bottom() <= 0 && b.Direction.Y < 0) || (b.Rect.Top() >= bound.Y && b.Direction.Y > 0) {
			b.Direction.Y = -b.Direction.Y
			ev, bounced = EventWall, true
		}
	} else {
		for _, p := range [2]*Paddle{left, right} {
			if p == nil || !geometry.Overlaps(b.Rect, p.Rect) {
				continue
			}
			if b.bouncePaddle(p) {
				ev, bounced = EventPaddle, true
			}
			break
		}
	}

	b.Rect.Position.X += b.Direction.X * BallSpeed
	b.Rect.Position.Y += b.Direction.Y * BallSpeed

	return ev, bounced
}

// bouncePaddle reverses the ball's direction after it has hit a paddle. If
// the centre of the ball is level with the paddle then the ball has hit the
// side of the paddle and the horizontal direction is reversed. Otherwise it
// has hit the top or bottom and the vertical direction is reversed.
func (b *Ball) bouncePaddle(p *Paddle) bool {
	bc := b.Rect.Centre()
	pc := p.Rect.Centre()

	if bc.Y >= p.Rect.Bottom() && bc.Y <= p.Rect.Top() {
		if (bc.X < pc.X && b.Direction.X > 0) || (bc.X >= pc.X && b.Direction.X < 0) {
			b.Direction.X = -b.Direction.X
			return true
		}
		return false
	}

	if (bc.Y < pc.Y && b.Direction.Y > 0) || (bc.Y >= pc.Y && b.Direction.Y < 0) {
		b.Direction.Y = -b.Direction.Y
		return true
	}

	return false
}

// OutOfPlay returns true if the ball has completely left the court through
// the left or right side. The Side value is the side the ball left through.
func (b *Ball) OutOfPlay(bound geometry.Point) (bool, Side) {
	if b.Rect.Right() < 0 {
		return true, Left
	}
	if b.Rect.Left() > bound.X {
		return true, Right
	}
	return false, Left
}
