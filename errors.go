package campsort

import "errors"

// ErrUnknownSession is returned when Run is called with a Session other
// than model.Morning or model.Afternoon.
var ErrUnknownSession = errors.New("campsort: unknown session")
