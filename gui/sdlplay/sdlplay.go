// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlplay is an SDL implementation of the play window. It presents
// the engine's pixel buffer, translates SDL events into userinput events and
// shows error popups.
//
// All functions must be called from the main thread with the exception of
// Interrupt(), which can be called from any goroutine.
package sdlplay

import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/engine"
	"github.com/jetsetilly/gopherboy/gui/viewport"
	"github.com/jetsetilly/gopherboy/logger"
	"github.com/jetsetilly/gopherboy/version"
)

const pixelDepth = 4

// default window size is this many times the size of the emulated screen
const defaultScale = 3

// SdlPlay is a simple SDL implementation of the play window.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	format   *sdl.PixelFormat

	// the area of the window that the texture is copied to
	viewport sdl.Rect

	// the user event type used to signal an interrupt
	interruptEvent uint32

	prefs *Preferences
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. The
// window is not shown until Show() is called.
func NewSdlPlay() (*SdlPlay, error) {
	scr := &SdlPlay{}

	var err error

	// the window works with default preferences if they can't be loaded
	scr.prefs, err = newPreferences()
	if err != nil {
		logger.Logf(logger.Allow, "sdlplay", "preferences: %v", err)
	}

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// MOUSEMOTION events fill up the event queue pretty quickly and we have
	// no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	scr.interruptEvent = sdl.RegisterEvents(1)

	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		engine.ScreenWidth*defaultScale, engine.ScreenHeight*defaultScale,
		uint32(sdl.WINDOW_HIDDEN|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.window.SetMinimumSize(engine.ScreenWidth, engine.ScreenHeight)

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// texture is the same size as the pixel buffer. scaling is applied when
	// it is copied to the renderer
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ARGB8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		engine.ScreenWidth, engine.ScreenHeight)
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.format, err = sdl.AllocFormat(uint(sdl.PIXELFORMAT_ARGB8888))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.UpdateViewport()

	return scr, nil
}

// Destroy releases all SDL resources.
func (scr *SdlPlay) Destroy() {
	if scr.format != nil {
		scr.format.Free()
		scr.format = nil
	}
	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
}

// Show the window.
func (scr *SdlPlay) Show() {
	scr.window.Show()
	scr.UpdateViewport()
}

// SetTitle changes the title of the window. The application name is always
// part of the title.
func (scr *SdlPlay) SetTitle(title string) {
	if title == "" {
		scr.window.SetTitle(version.ApplicationName)
		return
	}
	scr.window.SetTitle(version.ApplicationName + " - " + title)
}

// MapRGB returns the colour in the pixel format of the texture.
func (scr *SdlPlay) MapRGB(r, g, b uint8) uint32 {
	return sdl.MapRGB(scr.format, r, g, b)
}

// Present copies the pixels to the window. The length of pixels must be
// engine.ScreenWidth * engine.ScreenHeight.
func (scr *SdlPlay) Present(pixels []uint32) error {
	if len(pixels) < engine.ScreenWidth*engine.ScreenHeight {
		return curated.Errorf("sdlplay: pixel buffer too small (%d)", len(pixels))
	}

	err := scr.texture.Update(nil, unsafe.Pointer(&pixels[0]), engine.ScreenWidth*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.SetDrawColor(0, 0, 0, 255)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Clear()
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, &scr.viewport)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}

// UpdateViewport implements the userinput.Display interface.
func (scr *SdlPlay) UpdateViewport() {
	w, h, err := scr.renderer.GetOutputSize()
	if err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
		return
	}

	r := viewport.Calculate(scr.prefs.scalingMode(), w, h, engine.ScreenWidth, engine.ScreenHeight)
	scr.viewport = sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// CycleScaling implements the userinput.Display interface.
func (scr *SdlPlay) CycleScaling() {
	mode := scr.prefs.scalingMode().Next()
	if err := scr.prefs.Scaling.Set(int(mode)); err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}
	if err := scr.prefs.save(); err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}
	logger.Logf(logger.Allow, "sdlplay", "scaling: %s", mode)

	scr.UpdateViewport()
}
