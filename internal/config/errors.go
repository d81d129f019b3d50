package config

import "errors"

// Errors reported by [Configuration] accessors at point of use.
var (
	// ErrSharedDirNotSet indicates that neither the orchestrator.it_sources
	// property nor the SONAR_IT_SOURCES environment variable is configured.
	ErrSharedDirNotSet = errors.New(`property "orchestrator.it_sources" or environment variable "SONAR_IT_SOURCES" is missing`)
	// ErrSharedDirInvalid indicates that the configured shared-sources root
	// does not exist or is not a directory.
	ErrSharedDirInvalid = errors.New("it_sources is not an existing directory")
	// ErrInvalidInteger indicates that a present property value could not be
	// parsed as a base-10 integer.
	ErrInvalidInteger = errors.New("invalid integer property")
)
