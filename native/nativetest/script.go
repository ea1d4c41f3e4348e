// Package nativetest provides a scripted native.Dialog whose Show calls
// block until the test decides how the "user" answered.
package nativetest

import (
	"sync"

	"github.com/leonwijng/imdialog/native"
)

type outcome struct {
	paths  []string
	err    error
	panics bool
	value  any
}

// Script hands out dialogs that block in their Show methods until one of
// Resolve, Cancel, Fail or Panic is called.
type Script struct {
	mu        sync.Mutex
	dialogs   int
	locations []string
	calls     []string

	started  chan struct{}
	outcomes chan outcome
}

// New returns an empty script.
func New() *Script {
	return &Script{
		started:  make(chan struct{}, 64),
		outcomes: make(chan outcome),
	}
}

// Factory satisfies native.Factory.
func (s *Script) Factory() native.Dialog {
	s.mu.Lock()
	s.dialogs++
	s.mu.Unlock()
	return &dialog{script: s}
}

// Started receives one value each time a dialog enters a Show call.
func (s *Script) Started() <-chan struct{} {
	return s.started
}

// Resolve answers the pending dialog with paths. Single selection dialogs
// return the first path. It blocks until a dialog is waiting.
func (s *Script) Resolve(paths ...string) {
	s.outcomes <- outcome{paths: paths}
}

// Cancel answers the pending dialog as if the user closed it.
func (s *Script) Cancel() {
	s.outcomes <- outcome{}
}

// Fail makes the pending dialog return err.
func (s *Script) Fail(err error) {
	s.outcomes <- outcome{err: err}
}

// Panic makes the pending dialog panic with v.
func (s *Script) Panic(v any) {
	s.outcomes <- outcome{panics: true, value: v}
}

// Dialogs reports how many dialogs the factory created.
func (s *Script) Dialogs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialogs
}

// Locations lists the starting locations passed to SetLocation, in order.
func (s *Script) Locations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.locations...)
}

// Calls lists the Show methods invoked, in order.
func (s *Script) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

type dialog struct {
	script *Script
}

func (d *dialog) SetLocation(path string) native.Dialog {
	d.script.mu.Lock()
	d.script.locations = append(d.script.locations, path)
	d.script.mu.Unlock()
	return d
}

func (d *dialog) wait(call string) outcome {
	d.script.mu.Lock()
	d.script.calls = append(d.script.calls, call)
	d.script.mu.Unlock()

	d.script.started <- struct{}{}
	o := <-d.script.outcomes
	if o.panics {
		panic(o.value)
	}
	return o
}

func (d *dialog) single(call string) (string, error) {
	o := d.wait(call)
	if o.err != nil || len(o.paths) == 0 {
		return "", o.err
	}
	return o.paths[0], nil
}

func (d *dialog) ShowOpenSingleFile() (string, error) {
	return d.single("open-single-file")
}

func (d *dialog) ShowOpenMultipleFiles() ([]string, error) {
	o := d.wait("open-multiple-files")
	if o.err != nil {
		return nil, o.err
	}
	return o.paths, nil
}

func (d *dialog) ShowOpenSingleDir() (string, error) {
	return d.single("open-single-dir")
}

func (d *dialog) ShowSaveSingleFile() (string, error) {
	return d.single("save-single-file")
}
