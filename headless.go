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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jetsetilly/gopherpong/batcher"
	"github.com/jetsetilly/gopherpong/geometry"
	"github.com/jetsetilly/gopherpong/headless"
	"github.com/jetsetilly/gopherpong/logger"
	"github.com/jetsetilly/gopherpong/modalflag"
	"github.com/jetsetilly/gopherpong/performance"
)

func runHeadless(md *modalflag.Modes) error {
	md.NewMode()

	cfg := headless.DefaultConfig()

	frames := md.AddInt("frames", cfg.Frames, "number of frames to run")
	seed := md.AddInt64("seed", cfg.Seed, "seed for the direction of the ball")
	width := md.AddInt("width", cfg.Bound.X, "width of the court")
	height := md.AddInt("height", cfg.Bound.Y, "height of the court")
	capacity := md.AddInt("capacity", batcher.DefaultCapacity, "size of the vertex and index buffers")
	versus := md.AddBool("versus", false, "control both paddles")
	profile := md.AddString("profile", "none", "write profiles to the current directory: cpu, mem")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	cfg.Frames = *frames
	cfg.Seed = *seed
	cfg.Bound = geometry.Point{X: *width, Y: *height}
	cfg.Capacity = *capacity
	cfg.RightAutopilot = *versus

	var res headless.Result
	var elapsed time.Duration

	err = performance.RunProfiler(prf, "headless", func() error {
		start := time.Now()
		var err error
		res, err = headless.Run(cfg)
		elapsed = time.Since(start)
		return err
	})
	if err != nil {
		return err
	}

	fmt.Println(res.String())
	fmt.Printf("%.2f fps (%d frames in %.2f seconds)\n",
		performance.CalcFPS(res.Frames, elapsed), res.Frames, elapsed.Seconds())

	return nil
}
