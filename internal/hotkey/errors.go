package hotkey

import "errors"

// ErrNilCallback indicates Bind was called without a callback.
var ErrNilCallback = errors.New("nil callback")
