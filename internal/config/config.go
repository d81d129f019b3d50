// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orchestrator Authors

package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/sonar-contrib/orchestrator/internal/locator"
	"github.com/sonar-contrib/orchestrator/internal/updatecenter"
	"github.com/sonar-contrib/orchestrator/internal/version"
)

// SonarVersionProperty is the property holding the SonarQube runtime version
// under test.
const SonarVersionProperty = "sonar.runtimeVersion"

const (
	jdbcDialectProperty = "sonar.jdbc.dialect"

	sharedDirProperty    = "orchestrator.it_sources"
	sharedDirEnvVariable = "SONAR_IT_SOURCES"
)

// Configuration is the immutable result of [Builder.Build]. Its property
// values never change after construction, so it is safe for concurrent
// read-only use.
type Configuration struct {
	props        map[string]string
	sysProps     map[string]string
	userHome     string
	ambient      ambientEnv
	updateCenter *updatecenter.UpdateCenter

	fsOnce sync.Once
	fs     *FileSystem
}

func newConfiguration(b *Builder, ambient ambientEnv) *Configuration {
	return &Configuration{
		props:        maps.Clone(b.props),
		sysProps:     maps.Clone(b.sysProps),
		userHome:     b.userHome,
		ambient:      ambient,
		updateCenter: b.updateCenter,
	}
}

// Create builds a configuration from defaults only.
func Create() (*Configuration, error) {
	return NewBuilder().Build()
}

// CreateFromMap builds a configuration from the given properties.
func CreateFromMap(properties map[string]string) (*Configuration, error) {
	return NewBuilder().AddProperties(properties).Build()
}

// CreateEnv builds a configuration from the process environment and the
// ambient system properties, in that order (system properties win).
func CreateEnv() (*Configuration, error) {
	return NewBuilder().AddEnvVariables().AddSystemProperties().Build()
}

// GetString returns the value stored under key and whether it is present.
// The legacy dialect value "embedded" (any case) under sonar.jdbc.dialect is
// translated to the canonical "h2".
func (c *Configuration) GetString(key string) (string, bool) {
	value, ok := c.props[key]
	if ok && key == jdbcDialectProperty && strings.EqualFold(value, "embedded") {
		return "h2", true
	}
	return value, ok
}

// GetStringOrDefault returns the value stored under key, or defaultValue
// when the key is absent or its value is blank. The dialect translation of
// [Configuration.GetString] does not apply here.
func (c *Configuration) GetStringOrDefault(key, defaultValue string) string {
	if value := c.props[key]; strings.TrimSpace(value) != "" {
		return value
	}
	return defaultValue
}

// GetStringByKeys scans keys in order and returns the first present value.
// Useful for settings that may live under several legacy or versioned key
// names.
func (c *Configuration) GetStringByKeys(keys ...string) (string, bool) {
	return c.GetStringByKeysMatching(func(string) bool { return true }, keys...)
}

// GetStringByKeysMatching scans keys in order and returns the first present
// value accepted by valid.
func (c *Configuration) GetStringByKeysMatching(valid func(string) bool, keys ...string) (string, bool) {
	for _, key := range keys {
		if value, ok := c.GetString(key); ok && valid(value) {
			return value, true
		}
	}
	return "", false
}

// GetInt parses the value stored under key as a base-10 integer. It returns
// defaultValue when the key is absent or blank, and an error when a present
// value is not a valid integer.
func (c *Configuration) GetInt(key string, defaultValue int) (int, error) {
	value := c.props[key]
	if strings.TrimSpace(value) == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidInteger, key, value)
	}
	return parsed, nil
}

// AsMap returns a copy of the full resolved property map.
func (c *Configuration) AsMap() map[string]string {
	return maps.Clone(c.props)
}

// FileSystem returns the directory resolver owned by this configuration.
// The resolver is constructed on first use and cached.
func (c *Configuration) FileSystem() *FileSystem {
	c.fsOnce.Do(func() {
		c.fs = newFileSystem(c)
	})
	return c.fs
}

// UpdateCenter returns the opaque update-center collaborator attached at
// build time, or nil.
func (c *Configuration) UpdateCenter() *updatecenter.UpdateCenter {
	return c.updateCenter
}

// SonarVersion parses the sonar.runtimeVersion property.
func (c *Configuration) SonarVersion() (version.Version, error) {
	return version.Create(c.props[SonarVersionProperty])
}

// PluginVersion parses the <pluginKey>Version property.
func (c *Configuration) PluginVersion(pluginKey string) (version.Version, error) {
	return version.Create(c.props[pluginKey+"Version"])
}

// FileLocationOfShared resolves relativePath against the shared test-fixtures
// root. The root is read from (in order) the ambient system property
// orchestrator.it_sources, the configuration property of the same name, and
// the SONAR_IT_SOURCES environment variable. The root must be an existing
// directory; validation happens here, at point of use, not at build time.
//
// Example: FileLocationOfShared("javascript/performancing/pom.xml").
func (c *Configuration) FileLocationOfShared(relativePath string) (locator.FileLocation, error) {
	rootPath := c.sysProps[sharedDirProperty]
	if rootPath == "" {
		rootPath = c.props[sharedDirProperty]
	}
	if rootPath == "" {
		rootPath = c.ambient.ItSources
	}
	if rootPath == "" {
		return locator.FileLocation{}, ErrSharedDirNotSet
	}

	info, err := os.Stat(rootPath)
	if err != nil || !info.IsDir() {
		return locator.FileLocation{}, fmt.Errorf(
			"%w: check the definition of it_sources (%s or %s): %s",
			ErrSharedDirInvalid, sharedDirProperty, sharedDirEnvVariable, rootPath)
	}

	return locator.Of(filepath.Join(rootPath, relativePath)), nil
}
