package expreplay

import "errors"

// ExpReplayError implements errors unique to an experience replay
// memory.
type ExpReplayError struct {
	Op  string
	Err error
}

// Error satisifes the error interface
func (e *ExpReplayError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *ExpReplayError) Unwrap() error {
	return e.Err
}

var errEmptyCache = errors.New("replay memory empty")

var errInvalidBatch = errors.New("batch size must be > 0")

// IsEmptyBuffer returns whether or not an error reports that a
// replay memory is empty.
func IsEmptyBuffer(err error) bool {
	var replayErr *ExpReplayError
	if errors.As(err, &replayErr) {
		err = replayErr.Err
	}
	return err == errEmptyCache
}

// IsInvalidBatch returns whether or not an error reports that a
// non-positive number of transitions was requested
func IsInvalidBatch(err error) bool {
	var replayErr *ExpReplayError
	if errors.As(err, &replayErr) {
		err = replayErr.Err
	}
	return err == errInvalidBatch
}
