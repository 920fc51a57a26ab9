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

package random

import (
	"math/rand"
	"time"
)

// Random is a source of random numbers.
type Random struct {
	rnd *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed of zero is replaced by a seed taken from the current time.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// NewPredictable creates a Random instance that always produces the same
// sequence of numbers for the same seed, including a seed of zero.
func NewPredictable(seed int64) *Random {
	return &Random{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a number in the range [0, n).
func (r *Random) Intn(n int) int {
	return r.rnd.Intn(n)
}

// Sign returns -1, 0 or 1.
func (r *Random) Sign() int {
	return r.Intn(3) - 1
}
