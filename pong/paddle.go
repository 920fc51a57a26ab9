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
	"github.com/jetsetilly/gopherpong/userinput"
)

// Side of the court.
type Side int

// List of valid Side values.
const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Paddle is controlled by a player.
type Paddle struct {
	Rect    geometry.Rect
	Score   int
	Side    Side
	KeyUp   userinput.KeyCode
	KeyDown userinput.KeyCode
}

// NewPaddle is the preferred method of initialisation for the Paddle type.
// The paddle is placed on the specified side of the court and centred
// vertically.
func NewPaddle(side Side, bound geometry.Point) Paddle {
	p := Paddle{
		Side: side,
		Rect: geometry.NewRect(0, 0, PaddleWidth, PaddleHeight),
	}

	switch side {
	case Left:
		p.KeyUp = userinput.KeyW
		p.KeyDown = userinput.KeyS
	case Right:
		p.KeyUp = userinput.KeyUp
		p.KeyDown = userinput.KeyDown
	}

	p.Reset(bound)

	return p
}

func (p *Paddle) String() string {
	return fmt.Sprintf("%s paddle: %s score %d", p.Side, p.Rect, p.Score)
}

// Reset moves the paddle to its starting position. The score is not changed.
func (p *Paddle) Reset(bound geometry.Point) {
	p.anchor(bound)
	p.Rect.Position.Y = bound.Y/2 - p.Rect.Size.Y/2
}

// Resize keeps the paddle against its side of the court and inside the
// court after the court has changed size.
func (p *Paddle) Resize(bound geometry.Point) {
	p.anchor(bound)
	if geometry.OutOfBounds(p.Rect, bound) {
		geometry.ClampY(&p.Rect, bound)
	}
}

func (p *Paddle) anchor(bound geometry.Point) {
	switch p.Side {
	case Left:
		p.Rect.Position.X = PaddleMargin
	case Right:
		p.Rect.Position.X = bound.X - PaddleMargin - p.Rect.Size.X
	}
}

// Update moves the paddle according to the keys that are held.
func (p *Paddle) Update(input Input, bound geometry.Point) {
	p.Rect.Position.Y += input.Axis(p.KeyUp, p.KeyDown) * PaddleSpeed

	if geometry.OutOfBounds(p.Rect, bound) {
		geometry.ClampY(&p.Rect, bound)
	}
}

// IncrementScore adds one to the paddle's score.
func (p *Paddle) IncrementScore() {
	p.Score++
}
