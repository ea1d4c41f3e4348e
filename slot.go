package imdialog

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/leonwijng/imdialog/native"
)

var errNoKind = errors.New("imdialog: open with a zero Kind")

// Option configures a Slot.
type Option func(*options)

type options struct {
	factory native.Factory
	logger  *slog.Logger
	strict  bool
}

// WithFactory sets where dialogs come from. The default is native.Default().
func WithFactory(f native.Factory) Option {
	return func(o *options) { o.factory = f }
}

// WithLogger sets the logger used for the disconnect warning and debug
// traces. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithStrictDisconnect makes Check deliver ErrWorkerFailed when the dialog
// goroutine died without answering. Without it the slot reports an empty
// selection.
func WithStrictDisconnect() Option {
	return func(o *options) { o.strict = true }
}

// Slot holds at most one dialog in flight. It belongs to the UI goroutine;
// Open, Check and IsOpen must not be called concurrently.
type Slot[T any] struct {
	opts options

	// non-nil iff a request is in flight
	recv <-chan Result[T]
	id   string
	kind string
}

// New returns an empty slot.
func New[T any](opts ...Option) *Slot[T] {
	o := options{
		factory: native.Default(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Slot[T]{opts: o}
}

// Open starts kind on a new goroutine, beginning in location when it is not
// empty. It returns ErrAlreadyOpen, and starts nothing, while an earlier
// dialog has not been collected by Check.
func (s *Slot[T]) Open(kind Kind[T], location string) error {
	if s.recv != nil {
		return ErrAlreadyOpen
	}
	if kind.show == nil {
		return errNoKind
	}

	ch := make(chan Result[T], 1)
	go run(ch, s.opts.factory, kind, location)

	s.recv = ch
	s.id = uuid.NewString()
	s.kind = kind.name
	s.opts.logger.Debug("dialog opened", "request", s.id, "kind", s.kind, "location", location)
	return nil
}

// run is the dialog goroutine. A panic in the native call leaves ch closed
// and empty, which Check treats as a disconnect.
func run[T any](ch chan<- Result[T], factory native.Factory, kind Kind[T], location string) {
	defer close(ch)
	defer func() { _ = recover() }()

	d := factory()
	if location != "" {
		d = d.SetLocation(location)
	}
	v, err := kind.show(d)
	ch <- Result[T]{Value: v, Err: err}
}

// Check collects the dialog's answer without blocking. ok is false while
// nothing is in flight or the dialog is still showing. Each answer is
// returned exactly once.
func (s *Slot[T]) Check() (res Result[T], ok bool) {
	if s.recv == nil {
		return res, false
	}

	select {
	case r, delivered := <-s.recv:
		log := s.opts.logger.With("request", s.id, "kind", s.kind)
		s.recv, s.id, s.kind = nil, "", ""
		if !delivered {
			log.Warn("dialog channel disconnected")
			if s.opts.strict {
				return Result[T]{Err: ErrWorkerFailed}, true
			}
			return res, true
		}
		log.Debug("dialog answered", "err", r.Err)
		return r, true
	default:
		return res, false
	}
}

// IsOpen reports whether a dialog is in flight.
func (s *Slot[T]) IsOpen() bool {
	return s.recv != nil
}

// RequestID identifies the in-flight dialog in log lines. It is empty when
// nothing is in flight.
func (s *Slot[T]) RequestID() string {
	return s.id
}
