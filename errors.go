package funcschema

import "errors"

// ErrUnknownFormat is reported by ParseFormat for an unrecognized
// dialect name. The format still resolves to the default; the error only
// carries the reason for the correction.
var ErrUnknownFormat = errors.New("funcschema: unknown format")
