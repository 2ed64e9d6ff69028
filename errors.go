package guikit

import "errors"

// ErrConfig is matched by every configuration error reported by this package.
// Configuration errors are reported where the misuse happens and are never
// retried.
var ErrConfig = errors.New("configuration error")

// Specific configuration failures. A *ConfigError unwraps to both ErrConfig
// and one of these.
var (
	ErrNegative       = errors.New("negative value")
	ErrLengthMismatch = errors.New("length mismatch")
	ErrNilFunc        = errors.New("nil function")
	ErrLabel          = errors.New("invalid label")
	ErrEmptyKey       = errors.New("empty key")
	ErrRange          = errors.New("value out of range")
	ErrUnknownWindow  = errors.New("unknown window key")
)

// ErrAbstractWindow is returned when a window is built without a scope or
// without content, the equivalent of instantiating the abstract base.
var ErrAbstractWindow = errors.New("window needs both a scope and content")

// ErrUndefinedAction is returned when a clicked menu item has no action.
var ErrUndefinedAction = errors.New("undefined menu action")

// ConfigError describes a misuse detected at the point of the call.
type ConfigError struct {
	Op  string // operation that detected the error, e.g. "drag row draw"
	Err error  // specific cause, usually wrapping one of the sentinels above
}

func (e *ConfigError) Error() string {
	return "guikit: " + e.Op + ": " + e.Err.Error()
}

// Unwrap exposes both ErrConfig and the specific cause to errors.Is.
func (e *ConfigError) Unwrap() []error {
	return []error{ErrConfig, e.Err}
}

func configErr(op string, err error) error {
	return &ConfigError{Op: op, Err: err}
}
