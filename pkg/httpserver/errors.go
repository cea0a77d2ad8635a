package httpserver

import "errors"

var (
	ErrStart          = errors.New("preview server failed to start")
	ErrAlreadyRunning = errors.New("preview server is already running")
	ErrShutdown       = errors.New("preview server did not shut down cleanly")
)
