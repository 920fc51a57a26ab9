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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/gopherpong/curated"
)

// Value is the underlying Go value of a preference.
type Value interface{}

// pref is implemented by every type that can be registered with a Disk.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// sentinal errors.
const (
	ErrConvert = "prefs: cannot convert %T to %s"
	ErrRange   = "prefs: %v out of range for %s"
)

// hooks are shared by all preference types. the pre hook can prevent the
// new value from being stored by returning an error.
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

// SetHookPre sets the function that is called before a new value is stored.
// It is called even if the value is unchanged.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost sets the function that is called after a new value is stored.
// It is called even if the value is unchanged.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

func (h *hooks) store(v *atomic.Value, nv Value) error {
	if h.pre != nil {
		if err := h.pre(nv); err != nil {
			return err
		}
	}
	v.Store(nv)
	if h.post != nil {
		if err := h.post(nv); err != nil {
			return err
		}
	}
	return nil
}

// Bool is a boolean preference.
type Bool struct {
	hooks
	value atomic.Value
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.Get().(bool))
}

// Set accepts a bool or a string. Any string other than "true" (in any case)
// is treated as false.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		nv = strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return curated.Errorf(ErrConvert, v, "bool")
	}
	return p.store(&p.value, nv)
}

// Get returns the current value as a bool.
func (p *Bool) Get() Value {
	if v := p.value.Load(); v != nil {
		return v.(bool)
	}
	return false
}

// Reset sets the value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// Int is an integer preference. An optional range can be set with
// SetRange().
type Int struct {
	hooks
	value    atomic.Value
	min, max int
	ranged   bool
}

// SetRange limits the values that Set() will accept. The limits are
// inclusive.
func (p *Int) SetRange(min, max int) {
	p.min = min
	p.max = max
	p.ranged = true
}

func (p *Int) String() string {
	return strconv.Itoa(p.Get().(int))
}

// Set accepts any Go integer type or a string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case int32:
		nv = int(v)
	case int64:
		nv = int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return curated.Errorf(ErrConvert, v, "int")
		}
		nv = n
	default:
		return curated.Errorf(ErrConvert, v, "int")
	}

	if p.ranged && (nv < p.min || nv > p.max) {
		return curated.Errorf(ErrRange, nv, "int")
	}

	return p.store(&p.value, nv)
}

// Get returns the current value as an int.
func (p *Int) Get() Value {
	if v := p.value.Load(); v != nil {
		return v.(int)
	}
	return 0
}

// Reset sets the value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Float is a floating point preference. An optional range can be set with
// SetRange().
type Float struct {
	hooks
	value    atomic.Value
	min, max float64
	ranged   bool
}

// SetRange limits the values that Set() will accept. The limits are
// inclusive.
func (p *Float) SetRange(min, max float64) {
	p.min = min
	p.max = max
	p.ranged = true
}

func (p *Float) String() string {
	return strconv.FormatFloat(p.Get().(float64), 'f', 3, 64)
}

// Set accepts a float64, float32, int or a string.
func (p *Float) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case float32:
		nv = float64(v)
	case int:
		nv = float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return curated.Errorf(ErrConvert, v, "float")
		}
		nv = f
	default:
		return curated.Errorf(ErrConvert, v, "float")
	}

	if p.ranged && (nv < p.min || nv > p.max) {
		return curated.Errorf(ErrRange, nv, "float")
	}

	return p.store(&p.value, nv)
}

// Get returns the current value as a float64.
func (p *Float) Get() Value {
	if v := p.value.Load(); v != nil {
		return v.(float64)
	}
	return 0.0
}

// Reset sets the value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}

// String is a string preference.
type String struct {
	hooks
	value atomic.Value
}

func (p *String) String() string {
	return p.Get().(string)
}

// Set accepts any value. Values that are not strings are formatted with the
// %v verb.
func (p *String) Set(v Value) error {
	return p.store(&p.value, fmt.Sprintf("%v", v))
}

// Get returns the current value as a string.
func (p *String) Get() Value {
	if v := p.value.Load(); v != nil {
		return v.(string)
	}
	return ""
}

// Reset sets the value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}
