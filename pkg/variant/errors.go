package variant

import "errors"

// ErrInvalidAccess is returned by Get when the requested index is not the
// active one, including when the variant is empty.
var ErrInvalidAccess = errors.New("variant: index is not active")
