// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orchestrator Authors

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ambientEnv holds the individually-named environment variables that act as
// fallbacks for specific settings, as opposed to the bulk merge done by
// [Builder.AddEnvVariables]. It is parsed once at build time from the
// environment snapshot injected into the Builder, never from the live
// process environment.
type ambientEnv struct {
	// MavenRepository seeds maven.localRepository when no properties file
	// is configured. Env: SONAR_MAVEN_REPOSITORY
	MavenRepository string `env:"SONAR_MAVEN_REPOSITORY"`

	// ItSources is the shared test-fixtures root used by
	// [Configuration.FileLocationOfShared]. Env: SONAR_IT_SOURCES
	ItSources string `env:"SONAR_IT_SOURCES"`

	// UserHome is the orchestrator home directory override.
	// Env: SONAR_USER_HOME
	UserHome string `env:"SONAR_USER_HOME"`

	// JavaHome, AntHome and MavenHome are the optional tool installation
	// directories resolved by [FileSystem].
	JavaHome  string `env:"JAVA_HOME"`
	AntHome   string `env:"ANT_HOME"`
	MavenHome string `env:"MAVEN_HOME"`
}

// parseAmbientEnv populates an ambientEnv from the given variable map using
// the caarlos0/env tags declared on the struct.
func parseAmbientEnv(environ map[string]string) (ambientEnv, error) {
	var a ambientEnv
	if err := env.ParseWithOptions(&a, env.Options{Environment: environ}); err != nil {
		return ambientEnv{}, fmt.Errorf("error parsing ambient environment: %w", err)
	}

	return a, nil
}

// environToMap converts os.Environ-style "KEY=value" entries into a map.
// Malformed entries without "=" are skipped.
func environToMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[key] = value
	}
	return m
}
