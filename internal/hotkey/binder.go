package hotkey

import (
	"fmt"

	"github.com/dshills/hotkey/internal/dom"
	"github.com/dshills/hotkey/internal/input/key"
	"github.com/dshills/hotkey/internal/logging"
)

// Querier resolves a selector to elements.
// *dom.Document implements Querier.
type Querier interface {
	QuerySelectorAll(selector string) ([]*dom.Element, error)
}

// Binder attaches hotkey listeners to elements.
type Binder struct {
	logger *logging.Logger
	strict bool
}

// Option configures a Binder.
type Option func(*Binder)

// WithLogger sets the logger used to report bindings.
func WithLogger(l *logging.Logger) Option {
	return func(b *Binder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithStrict makes combinations with more than one trigger key invalid
// instead of keeping the last one.
func WithStrict(strict bool) Option {
	return func(b *Binder) {
		b.strict = strict
	}
}

// NewBinder creates a Binder.
func NewBinder(opts ...Option) *Binder {
	b := &Binder{
		logger: logging.NullLogger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Bind parses combinationText, resolves selector against q and attaches a
// keypress listener to every matched element.
//
// Nothing is attached when an error is returned. Errors are a
// *key.InvalidCombinationError when the combination has no usable trigger
// key, or the selector error reported by q. A selector that matches no
// elements is not an error.
func (b *Binder) Bind(q Querier, selector, combinationText string, cb Callback) (*Binding, error) {
	binding, err := b.Prepare(q, selector, combinationText, cb)
	if err != nil {
		return nil, err
	}
	binding.Attach()
	return binding, nil
}

// Prepare does everything Bind does except attaching listeners. The
// elements are resolved now; Attach adds the listeners later. Callers
// making several bindings at once prepare all of them first so that a
// failure leaves every element untouched.
func (b *Binder) Prepare(q Querier, selector, combinationText string, cb Callback) (*Binding, error) {
	if cb == nil {
		return nil, ErrNilCallback
	}

	combo, err := b.parse(combinationText)
	if err != nil {
		b.logger.Debug("rejected combination %q: %v", combinationText, err)
		return nil, err
	}

	elements, err := q.QuerySelectorAll(selector)
	if err != nil {
		b.logger.Debug("rejected selector %q: %v", selector, err)
		return nil, fmt.Errorf("resolving %q: %w", selector, err)
	}

	return newBinding(selector, combo, elements, cb, b.logger), nil
}

func (b *Binder) parse(text string) (key.Combination, error) {
	if b.strict {
		return key.ParseStrict(text)
	}
	return key.Parse(text)
}

var defaultBinder = NewBinder()

// Bind binds a key combination to callback on every element of doc that
// matches selector. It returns true on success, including when the
// selector matches nothing, and false if no trigger key could be
// determined from combinationText or the selector is invalid; in that
// case no listener is attached.
func Bind(doc Querier, selector, combinationText string, callback Callback) bool {
	_, err := defaultBinder.Bind(doc, selector, combinationText, callback)
	return err == nil
}
