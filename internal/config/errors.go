package config

import "errors"

// Validation errors. They are joined, so one call reports every problem.
var (
	ErrEmptyTokenSignKey     = errors.New("token sign key is required (APP_TOKEN_SIGN_KEY or -token-sign-key)")
	ErrEmptyServerAddress    = errors.New("server address is required (SERVER_ADDRESS or -a)")
	ErrEmptyAdapterAddress   = errors.New("API address is required (ADAPTER_ADDRESS or -server)")
	ErrInvalidAdapterAddress = errors.New("API address must be an absolute URL, e.g. http://localhost:8080")
	ErrEmptySessionDSN       = errors.New("session file is required (CLIENT_SESSION_DSN or -session)")
	ErrNegativeTimeout       = errors.New("timeouts must not be negative")
)
