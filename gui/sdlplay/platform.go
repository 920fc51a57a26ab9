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

package sdlplay

import (
	"runtime"
	"time"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherpong/curated"
	"github.com/jetsetilly/gopherpong/logger"
	"github.com/jetsetilly/gopherpong/userinput"
)

// ErrPlatform is returned when the window or the GL context cannot be
// created.
const ErrPlatform = "sdlplay: %v"

// Platform is the SDL window and its GL context.
type Platform struct {
	window    *sdl.Window
	glContext sdl.GLContext
	mode      sdl.DisplayMode

	// paces the main loop when vsync is not available
	syncTicker *time.Ticker

	// time of most recent call to Present()
	lastPresent time.Time
	delta       time.Duration
}

// NewPlatform is the preferred method of initialisation for the Platform
// type. The window is opened with the requested size and title and the GL
// context is made current.
func NewPlatform(title string, width int, height int, vsync bool) (*Platform, error) {
	// SDL calls LockOSThread() in its init() function but we call it here
	// too. we never unlock it
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(ErrPlatform, err)
	}

	for _, attr := range []struct {
		attr  sdl.GLattr
		value int
	}{
		{attr: sdl.GL_CONTEXT_MAJOR_VERSION, value: 3},
		{attr: sdl.GL_CONTEXT_MINOR_VERSION, value: 2},
		{attr: sdl.GL_CONTEXT_FLAGS, value: sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{attr: sdl.GL_CONTEXT_PROFILE_MASK, value: sdl.GL_CONTEXT_PROFILE_CORE},
		{attr: sdl.GL_DOUBLEBUFFER, value: 1},
	} {
		err = sdl.GLSetAttribute(attr.attr, attr.value)
		if err != nil {
			sdl.Quit()
			return nil, curated.Errorf(ErrPlatform, err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdlplay", "SDL version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &Platform{}

	plt.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(ErrPlatform, err)
	}
	logger.Logf(logger.Allow, "sdlplay", "refresh rate: %dHz", plt.mode.RefreshRate)

	plt.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(ErrPlatform, err)
	}
	plt.window.SetMinimumSize(minWindowWidth, minWindowHeight)

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		plt.Destroy()
		return nil, curated.Errorf(ErrPlatform, err)
	}

	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		plt.Destroy()
		return nil, curated.Errorf(ErrPlatform, err)
	}

	err = gl.Init()
	if err != nil {
		plt.Destroy()
		return nil, curated.Errorf(ErrPlatform, err)
	}
	logger.Logf(logger.Allow, "sdlplay", "GL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	plt.SetVSync(vsync)
	plt.lastPresent = time.Now()

	return plt, nil
}

// list of swap interval values. with the exception of syncTicker these are
// the values expected by sdl.GLSetSwapInterval()
const (
	syncImmediate = 0
	syncVertical  = 1
	syncTicker    = 2
)

// SetVSync turns vertical sync on or off. If vsync is requested but the
// driver does not support it, a ticker at the display's refresh rate is used
// instead.
func (plt *Platform) SetVSync(vsync bool) {
	if plt.syncTicker != nil {
		plt.syncTicker.Stop()
		plt.syncTicker = nil
	}

	if !vsync {
		plt.setSwapInterval(syncImmediate)
		return
	}

	if err := sdl.GLSetSwapInterval(syncVertical); err != nil {
		logger.Logf(logger.Allow, "sdlplay", "vsync not available: %v", err)
		plt.setSwapInterval(syncTicker)
	}
}

func (plt *Platform) setSwapInterval(i int) {
	if i == syncTicker {
		rate := plt.mode.RefreshRate
		if rate <= 0 {
			rate = 60
		}
		plt.syncTicker = time.NewTicker(time.Second / time.Duration(rate))

		// the ticker replaces the swap interval
		i = syncImmediate
	}

	if err := sdl.GLSetSwapInterval(i); err != nil {
		logger.Logf(logger.Allow, "sdlplay", "GLSetSwapInterval(%d): %v", i, err)
	}
}

// Destroy closes the window and shuts down SDL.
func (plt *Platform) Destroy() {
	if plt.syncTicker != nil {
		plt.syncTicker.Stop()
		plt.syncTicker = nil
	}
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}
	if plt.window != nil {
		if err := plt.window.Destroy(); err != nil {
			logger.Logf(logger.Allow, "sdlplay", "%v", err)
		}
		plt.window = nil
	}
	sdl.Quit()
}

// WindowSize returns the size of the window in screen coordinates.
func (plt *Platform) WindowSize() (int32, int32) {
	return plt.window.GetSize()
}

// FramebufferSize returns the size of the framebuffer in pixels. This can be
// different to the window size on high DPI displays.
func (plt *Platform) FramebufferSize() (int32, int32) {
	return plt.window.GLGetDrawableSize()
}

// Delta returns the time between the two most recent calls to Present().
func (plt *Platform) Delta() time.Duration {
	return plt.delta
}

// Poll returns all pending events. Keyboard events for keys that are not
// used by the game are not returned.
func (plt *Platform) Poll() []userinput.Event {
	var events []userinput.Event

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			events = append(events, userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			key := translateScancode(ev.Keysym.Scancode)
			if key == userinput.KeyNone {
				continue
			}
			events = append(events, userinput.EventKeyboard{
				Key:  key,
				Down: ev.Type == sdl.KEYDOWN,
			})

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				events = append(events, userinput.EventResize{
					Width:  int(ev.Data1),
					Height: int(ev.Data2),
				})
			}
		}
	}

	return events
}

// Present swaps the GL buffers. It blocks until the next vertical refresh if
// vsync is on.
func (plt *Platform) Present() {
	if plt.syncTicker != nil {
		<-plt.syncTicker.C
	}
	plt.window.GLSwap()

	now := time.Now()
	plt.delta = now.Sub(plt.lastPresent)
	plt.lastPresent = now
}
