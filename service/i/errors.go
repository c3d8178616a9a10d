package i

import "errors"

// Errors adapters return so services can match them without importing infrastructure.
var (
	ErrCacheMiss        = errors.New("cache miss")
	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameConflict = errors.New("username conflict")
	ErrRunNotFound      = errors.New("run not found")
)
