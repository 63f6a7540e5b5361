package constants

import "errors"

// Credential errors.
var (
	ErrNoCredentials      = errors.New("no credentials configured, pass --api-key or a credentials file")
	ErrCredentialsNotFile = errors.New("credentials path is not a regular file")
)
