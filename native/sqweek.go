//go:build sqweek || windows
// +build sqweek windows

package native

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sqweek/dialog"
)

// Seams for tests.
var (
	sqweekLoad   = (*dialog.FileBuilder).Load
	sqweekSave   = (*dialog.FileBuilder).Save
	sqweekBrowse = (*dialog.DirectoryBuilder).Browse
)

func init() {
	Register("sqweek", NewSqweek)
}

// Sqweek shows dialogs through github.com/sqweek/dialog (Win32, Cocoa or
// GTK3 through cgo). It has no multi-select.
type Sqweek struct {
	location string
}

// NewSqweek returns a sqweek dialog with no starting location.
func NewSqweek() Dialog {
	return &Sqweek{}
}

func (s *Sqweek) SetLocation(path string) Dialog {
	s.location = path
	return s
}

func (s *Sqweek) file() *dialog.FileBuilder {
	b := dialog.File()
	if s.location == "" {
		return b
	}
	if fi, err := os.Stat(s.location); err == nil && !fi.IsDir() {
		return b.SetStartDir(filepath.Dir(s.location)).SetStartFile(filepath.Base(s.location))
	}
	return b.SetStartDir(s.location)
}

func (s *Sqweek) ShowOpenSingleFile() (string, error) {
	return sqweekPath(sqweekLoad(s.file()))
}

func (s *Sqweek) ShowOpenMultipleFiles() ([]string, error) {
	return nil, ErrUnsupported
}

func (s *Sqweek) ShowOpenSingleDir() (string, error) {
	b := dialog.Directory()
	if s.location != "" {
		b = b.SetStartDir(s.location)
	}
	return sqweekPath(sqweekBrowse(b))
}

func (s *Sqweek) ShowSaveSingleFile() (string, error) {
	return sqweekPath(sqweekSave(s.file()))
}

func sqweekPath(path string, err error) (string, error) {
	if errors.Is(err, dialog.ErrCancelled) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return path, nil
}
