// Package imdialog lets an immediate mode UI show a blocking native file
// dialog without stalling its frame loop.
//
// A Slot runs the dialog on its own goroutine and hands the answer back
// through a one element channel. The UI calls Check once per frame and
// IsOpen to grey out its "Browse" button:
//
//	var pick = imdialog.New[string]()
//
//	func frame() {
//		if res, ok := pick.Check(); ok {
//			switch {
//			case res.Err != nil:
//				status = "dialog failed: " + res.Err.Error()
//			case res.Value == "":
//				// cancelled
//			default:
//				path = res.Value
//			}
//		}
//		if browseClicked && !pick.IsOpen() {
//			_ = pick.Open(imdialog.SingleFile, filepath.Dir(path))
//		}
//	}
package imdialog

import (
	"errors"

	"github.com/leonwijng/imdialog/native"
)

var (
	// ErrAlreadyOpen is returned by Open while a dialog is still in flight.
	ErrAlreadyOpen = errors.New("imdialog: the dialog is already open")

	// ErrWorkerFailed is delivered instead of a zero value when the dialog
	// goroutine died without answering and the slot was built with
	// WithStrictDisconnect.
	ErrWorkerFailed = errors.New("imdialog: dialog worker stopped without a result")
)

// Result is what a finished dialog delivers. Err is the native backend's
// error, unchanged. A cancelled dialog is a nil Err with a zero Value.
type Result[T any] struct {
	Value T
	Err   error
}

// Kind selects the native call a Slot runs. T is the payload that call
// produces.
type Kind[T any] struct {
	name string
	show func(native.Dialog) (T, error)
}

// NewKind builds a custom kind. show runs on the dialog goroutine.
func NewKind[T any](name string, show func(native.Dialog) (T, error)) Kind[T] {
	return Kind[T]{name: name, show: show}
}

func (k Kind[T]) String() string {
	return k.name
}

var (
	SingleFile    = NewKind("open-single-file", native.Dialog.ShowOpenSingleFile)
	MultipleFiles = NewKind("open-multiple-files", native.Dialog.ShowOpenMultipleFiles)
	SingleDir     = NewKind("open-single-dir", native.Dialog.ShowOpenSingleDir)
	SaveFile      = NewKind("save-single-file", native.Dialog.ShowSaveSingleFile)
)
