package native

import (
	"errors"

	"github.com/ncruces/zenity"
)

// Seams for tests; the real functions open windows.
var (
	zenitySelectFile         = zenity.SelectFile
	zenitySelectFileMultiple = zenity.SelectFileMultiple
	zenitySelectFileSave     = zenity.SelectFileSave
)

func init() {
	Register("zenity", NewZenity)
}

// Zenity shows dialogs through github.com/ncruces/zenity. It is pure Go on
// every platform and shells out to zenity/kdialog on Unix.
type Zenity struct {
	location string
}

// NewZenity returns a zenity dialog with no starting location.
func NewZenity() Dialog {
	return &Zenity{}
}

func (z *Zenity) SetLocation(path string) Dialog {
	z.location = path
	return z
}

func (z *Zenity) options(extra ...zenity.Option) []zenity.Option {
	opts := make([]zenity.Option, 0, len(extra)+1)
	if z.location != "" {
		opts = append(opts, zenity.Filename(z.location))
	}
	return append(opts, extra...)
}

func (z *Zenity) ShowOpenSingleFile() (string, error) {
	return zenityPath(zenitySelectFile(z.options()...))
}

func (z *Zenity) ShowOpenMultipleFiles() ([]string, error) {
	paths, err := zenitySelectFileMultiple(z.options()...)
	if errors.Is(err, zenity.ErrCanceled) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func (z *Zenity) ShowOpenSingleDir() (string, error) {
	return zenityPath(zenitySelectFile(z.options(zenity.Directory())...))
}

func (z *Zenity) ShowSaveSingleFile() (string, error) {
	return zenityPath(zenitySelectFileSave(z.options(zenity.ConfirmOverwrite())...))
}

func zenityPath(path string, err error) (string, error) {
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return path, nil
}
