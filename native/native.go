// Package native wraps the blocking, OS provided file and directory pickers
// behind a small interface so that callers can run them off the UI goroutine.
//
// Every backend reports a user cancelling the dialog as an empty success:
// an empty path for single selections and a nil slice for multi selections.
// Any other error is returned exactly as the backend produced it.
package native

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnsupported is returned by a backend that cannot show the requested
// kind of dialog.
var ErrUnsupported = errors.New("native: dialog kind not supported by this backend")

// ErrUnknownBackend is returned by Lookup for a name nobody registered.
var ErrUnknownBackend = errors.New("native: unknown dialog backend")

// Dialog is a single native dialog. The Show methods block until the user
// closes the window.
type Dialog interface {
	// SetLocation sets the directory (or file) the dialog starts in.
	SetLocation(path string) Dialog
	ShowOpenSingleFile() (string, error)
	ShowOpenMultipleFiles() ([]string, error)
	ShowOpenSingleDir() (string, error)
	ShowSaveSingleFile() (string, error)
}

// Factory creates a fresh Dialog.
type Factory func() Dialog

// DefaultBackend names the backend returned by Default.
const DefaultBackend = "zenity"

var (
	mu       sync.RWMutex
	backends = map[string]Factory{}
)

// Register makes a backend available under name, replacing any previous
// registration.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	backends[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownBackend, name, namesLocked())
	}
	return f, nil
}

// Names lists the registered backends in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return namesLocked()
}

func namesLocked() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the factory of DefaultBackend.
func Default() Factory {
	return NewZenity
}
