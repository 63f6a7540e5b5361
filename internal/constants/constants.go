package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Retry limits. Retries are off by default; these apply only when a
// caller opts in via the transport's retry option.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Request parameter names.
const (
	// APIKeyParam authenticates every request.
	APIKeyParam = "api_key"

	// APISecretParam authenticates secret-gated requests.
	APISecretParam = "api_secret"
)
