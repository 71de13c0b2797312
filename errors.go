package tooltip

import "errors"

// ErrInvalidConfig is wrapped by every configuration error returned from New.
var ErrInvalidConfig = errors.New("invalid tooltip configuration")
