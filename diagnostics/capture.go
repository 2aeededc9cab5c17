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

// Package diagnostics collects the text that the engine emits while the
// frontend performs a fallible operation. The collected text is shown to the
// user in a popup and, for operations without which the emulation cannot
// continue, turned into a fatal error.
//
// Each fallible operation is bracketed by exactly one Begin()/End() pair.
// Wrap() is the usual way of doing that.
package diagnostics

import (
	"strings"

	"github.com/jetsetilly/gopherboy/curated"
	"github.com/jetsetilly/gopherboy/engine"
	"github.com/jetsetilly/gopherboy/logger"
)

// FatalDiagnostics is the pattern of the error returned by End() and Wrap()
// when the captured text is fatal. The caller should terminate the process
// with exit status 1.
const FatalDiagnostics = "fatal: %s"

// LogTarget is the part of the engine that accepts a LogSink.
type LogTarget interface {
	SetLogSink(sink engine.LogSink)
}

// Popup displays a message to the user. ShowError should block until the user
// has dismissed the message.
type Popup interface {
	ShowError(title string, message string)
}

// the title of the popup window
const popupTitle = "Error"

// Capture implements the engine.LogSink interface.
type Capture struct {
	target LogTarget
	popup  Popup

	// buffer is nil outside of a capture session
	buffer []byte
}

// NewCapture is the preferred method of initialisation for the Capture type.
// The popup argument can be nil, in which case no popup is ever shown.
func NewCapture(target LogTarget, popup Popup) *Capture {
	return &Capture{
		target: target,
		popup:  popup,
	}
}

// Begin a capture session. The buffer is reset and the capture is installed as
// the engine's LogSink.
func (dc *Capture) Begin() {
	dc.buffer = make([]byte, 0, 256)
	dc.target.SetLogSink(dc)
}

// Log implements the engine.LogSink interface. Text received outside of a
// capture session goes to the central logger.
func (dc *Capture) Log(text string) {
	if !dc.Active() {
		logger.Log(logger.Allow, "diagnostics", strings.TrimRight(text, "\n"))
		return
	}
	dc.buffer = append(dc.buffer, text...)
}

// Active returns true if a capture session is in progress.
func (dc *Capture) Active() bool {
	return dc.buffer != nil
}

// End the capture session and return the captured text. If the text is not
// empty and showPopup is true then the text is shown in a popup. If the text is
// not empty and fatal is true then a FatalDiagnostics error is returned, after
// the popup has been dismissed.
//
// A session that captured no text returns the empty string and no error.
func (dc *Capture) End(showPopup bool, fatal bool) (string, error) {
	dc.target.SetLogSink(nil)

	text := string(dc.buffer)
	dc.buffer = nil

	if text == "" {
		return "", nil
	}

	logger.Log(logger.Allow, "diagnostics", strings.TrimRight(text, "\n"))

	if showPopup && dc.popup != nil {
		dc.popup.ShowError(popupTitle, text)
	}

	if fatal {
		return text, curated.Errorf(FatalDiagnostics, strings.TrimSpace(text))
	}

	return text, nil
}

// Wrap brackets a single operation with Begin() and End(). If the operation
// fails without the engine having emitted any text then the error is recorded
// as the captured text, so that no failure goes unreported.
//
// The session is fatal only if fatalOnFailure is true and the operation
// returned an error.
func (dc *Capture) Wrap(op func() error, showPopup bool, fatalOnFailure bool) (string, error) {
	dc.Begin()

	err := op()
	if err != nil && len(dc.buffer) == 0 {
		dc.buffer = append(dc.buffer, err.Error()...)
		dc.buffer = append(dc.buffer, '\n')
	}

	return dc.End(showPopup, fatalOnFailure && err != nil)
}
