package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/leonwijng/imdialog"
	"github.com/leonwijng/imdialog/native"
)

var writeClipboard = clipboard.WriteAll

// picker is the state both frontends draw: the current path, a status
// line, and one slot per payload type.
type picker struct {
	single *imdialog.Slot[string]
	multi  *imdialog.Slot[[]string]

	kind     string
	startDir string
	path     string
	status   string
	log      *slog.Logger
}

func newPicker(cfg DialogConfig, factory native.Factory, logger *slog.Logger) *picker {
	opts := []imdialog.Option{imdialog.WithFactory(factory), imdialog.WithLogger(logger)}
	return &picker{
		single:   imdialog.New[string](opts...),
		multi:    imdialog.New[[]string](opts...),
		kind:     cfg.Kind,
		startDir: cfg.StartDir,
		status:   "Ready",
		log:      logger,
	}
}

// busy reports whether a dialog is showing; frontends disable Browse.
func (p *picker) busy() bool {
	return p.single.IsOpen() || p.multi.IsOpen()
}

// location is where the next dialog starts: the directory holding the
// current path, or the configured start dir.
func (p *picker) location(kind string) string {
	if p.path == "" {
		return p.startDir
	}
	first, _, _ := strings.Cut(p.path, pathSep)
	if kind == "dir" {
		return first
	}
	return filepath.Dir(first)
}

const pathSep = "; "

var singleKinds = map[string]imdialog.Kind[string]{
	"file": imdialog.SingleFile,
	"dir":  imdialog.SingleDir,
	"save": imdialog.SaveFile,
}

func (p *picker) open(kind string) {
	loc := p.location(kind)

	var err error
	if single, ok := singleKinds[kind]; ok {
		if p.multi.IsOpen() {
			err = imdialog.ErrAlreadyOpen
		} else {
			err = p.single.Open(single, loc)
		}
	} else if kind == "files" {
		if p.single.IsOpen() {
			err = imdialog.ErrAlreadyOpen
		} else {
			err = p.multi.Open(imdialog.MultipleFiles, loc)
		}
	} else {
		err = fmt.Errorf("unknown dialog kind %q", kind)
	}

	switch {
	case errors.Is(err, imdialog.ErrAlreadyOpen):
		p.status = "A dialog is already open"
	case err != nil:
		p.status = "Cannot open dialog: " + err.Error()
	default:
		p.status = "Waiting for the " + kind + " dialog..."
	}
}

// poll runs once per frame and reports whether anything changed.
func (p *picker) poll() bool {
	if res, ok := p.single.Check(); ok {
		p.apply(res.Err, res.Value)
		return true
	}
	if res, ok := p.multi.Check(); ok {
		p.apply(res.Err, strings.Join(res.Value, pathSep))
		return true
	}
	return false
}

func (p *picker) apply(err error, path string) {
	switch {
	case err != nil:
		p.log.Error("dialog failed", "err", err)
		p.status = "Dialog failed: " + err.Error()
	case path == "":
		p.status = "Nothing selected"
	default:
		p.path = path
		p.status = "Selected " + path
	}
}

func (p *picker) copyPath() {
	if p.path == "" {
		p.status = "Nothing to copy"
		return
	}
	if err := writeClipboard(p.path); err != nil {
		p.status = "Failed to copy path: " + err.Error()
		return
	}
	p.status = "Path copied to clipboard"
}
