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

// Package modalflag handles command lines that are made up of modes, each
// with its own set of flags. For example:
//
//	gopherpong PLAY -width 1280 -vsync=false
//	gopherpong HEADLESS -frames 600
//
// The first argument after the flags of the current mode can select a
// sub-mode. The first sub-mode added with AddSubModes() is the default and
// is selected if no sub-mode is named. Sub-mode names are not case
// sensitive.
//
// Typical use:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "HEADLESS")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		width := md.AddInt("width", 1024, "width of window")
//		...
//	}
//
// Help is printed to the Output writer when the -help flag is given. The
// help lists the flags and the sub-modes of the current mode.
package modalflag
