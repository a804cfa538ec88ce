package session

import "errors"

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("session not found")
