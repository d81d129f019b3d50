// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orchestrator Authors

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"

	"github.com/sonar-contrib/orchestrator/internal/logger"
	"github.com/sonar-contrib/orchestrator/internal/updatecenter"
)

const (
	configURLProperty    = "orchestrator.configUrl"
	configURLEnvVariable = "ORCHESTRATOR_CONFIG_URL"

	mavenLocalRepositoryProperty = "maven.localRepository"

	defaultUpdateCenterURL = "http://update.sonarsource.org/update-center-dev.properties"
)

// Builder accumulates property sources and produces an immutable
// [Configuration]. It is mutated by a single owner during assembly and must
// not be shared between goroutines.
//
// Ambient process state (environment, system properties, user home, the
// properties-file fetcher) is injected at construction and snapshotted, so a
// built Configuration is deterministic and independent of later process
// changes.
type Builder struct {
	props        map[string]string
	environ      map[string]string
	sysProps     map[string]string
	userHome     string
	fetcher      Fetcher
	log          *logger.Logger
	updateCenter *updatecenter.UpdateCenter
}

// Option customizes the ambient state of a Builder.
type Option func(*Builder)

// WithEnvironment replaces the process environment snapshot.
func WithEnvironment(environ map[string]string) Option {
	return func(b *Builder) { b.environ = environ }
}

// WithSystemProperties replaces the ambient system-properties map (the
// -D-style key/value pairs supplied by the embedding process).
func WithSystemProperties(sysProps map[string]string) Option {
	return func(b *Builder) { b.sysProps = sysProps }
}

// WithUserHome replaces the user home directory used for computed defaults.
func WithUserHome(userHome string) Option {
	return func(b *Builder) { b.userHome = userHome }
}

// WithFetcher replaces the properties-file fetcher.
func WithFetcher(fetcher Fetcher) Option {
	return func(b *Builder) { b.fetcher = fetcher }
}

// WithLogger replaces the logger used for default-seeding warnings.
func WithLogger(log *logger.Logger) Option {
	return func(b *Builder) { b.log = log }
}

// NewBuilder returns a Builder whose ambient state defaults to the real
// process environment, an empty system-properties map and the current user's
// home directory.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		props:    make(map[string]string),
		sysProps: make(map[string]string),
		fetcher:  newURLFetcher(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = logger.NewLogger("config")
	}
	if b.environ == nil {
		b.environ = environToMap(os.Environ())
	}
	if b.userHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			b.userHome = home
		}
	}

	return b
}

// AddEnvVariables merges the environment snapshot into the working map.
// Later add-calls and explicit sets overwrite these values on key collision.
func (b *Builder) AddEnvVariables() *Builder {
	return b.AddProperties(b.environ)
}

// AddSystemProperties merges the ambient system-properties map into the
// working map, overwriting existing keys.
func (b *Builder) AddSystemProperties() *Builder {
	return b.AddProperties(b.sysProps)
}

// AddProperties merges p into the working map. Keys present in p overwrite
// existing keys, including with empty values (last writer wins).
func (b *Builder) AddProperties(p map[string]string) *Builder {
	if err := mergo.Merge(&b.props, p, mergo.WithOverwriteWithEmptyValue); err != nil {
		// merging two string maps cannot fail; keep the map untouched if it does
		b.log.Error().Err(err).Msg("error merging properties")
	}
	return b
}

// AddConfiguration merges the resolved property map of an already-built
// configuration, overwriting existing keys. Used to inherit from a prior
// configuration.
func (b *Builder) AddConfiguration(c *Configuration) *Builder {
	return b.AddProperties(c.AsMap())
}

// SetProperty stores an explicit single-key override.
func (b *Builder) SetProperty(key, value string) *Builder {
	b.props[key] = value
	return b
}

// ClearProperty removes any value stored for key. A cleared key counts as
// absent for the fill-absent file-loading and default-seeding steps.
func (b *Builder) ClearProperty(key string) *Builder {
	delete(b.props, key)
	return b
}

// SetPropertyPath stores the absolute form of a filesystem path under key.
func (b *Builder) SetPropertyPath(key, path string) *Builder {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	b.props[key] = path
	return b
}

// SetUpdateCenter attaches the opaque update-center collaborator carried by
// the built configuration.
func (b *Builder) SetUpdateCenter(uc *updatecenter.UpdateCenter) *Builder {
	b.updateCenter = uc
	return b
}

// Build finalizes the configuration: it loads the optional properties file
// (or seeds defaults), interpolates every value once, and freezes the result.
// A configured file URL that cannot be fetched or parsed fails the build; no
// partial configuration is ever returned.
func (b *Builder) Build() (*Configuration, error) {
	ambient, err := parseAmbientEnv(b.environ)
	if err != nil {
		return nil, err
	}
	if err := b.loadPropertiesFile(ambient); err != nil {
		return nil, err
	}
	b.props = interpolateAll(b.props)

	return newConfiguration(b, ambient), nil
}

// loadPropertiesFile merges file-supplied pairs into currently-absent keys,
// or seeds hardcoded defaults when no file URL is configured. The URL is read
// from orchestrator.configUrl (wins when non-blank) or the
// ORCHESTRATOR_CONFIG_URL entry merged via AddEnvVariables.
func (b *Builder) loadPropertiesFile(ambient ambientEnv) error {
	fileURL := b.props[configURLEnvVariable]
	if v := b.props[configURLProperty]; strings.TrimSpace(v) != "" {
		fileURL = v
	}
	if strings.TrimSpace(fileURL) == "" {
		b.seedDefaults(ambient)
		return nil
	}

	fileURL = interpolate(fileURL, b.props)
	content, err := b.fetcher.Fetch(fileURL)
	if err != nil {
		return fmt.Errorf("fail to load configuration file %s: %w", fileURL, err)
	}
	pairs, err := parseProperties(content)
	if err != nil {
		return fmt.Errorf("fail to load configuration file %s: %w", fileURL, err)
	}

	for key, value := range pairs {
		if _, present := b.props[key]; !present {
			b.props[key] = value
		}
	}
	return nil
}

// seedDefaults fills the hardcoded defaults into keys that are still blank,
// logging each substitution at warning level.
func (b *Builder) seedDefaults(ambient ambientEnv) {
	b.setPropertyIfAbsent(jdbcDialectProperty, "embedded")
	b.setPropertyIfAbsent("orchestrator.updateCenterUrl", defaultUpdateCenterURL)

	if ambient.MavenRepository != "" {
		// CI agents point SONAR_MAVEN_REPOSITORY at a shared repository
		b.setPropertyIfAbsent(mavenLocalRepositoryProperty, ambient.MavenRepository)
		return
	}
	repo := b.sysProps[mavenLocalRepositoryProperty]
	if strings.TrimSpace(repo) == "" {
		repo = filepath.Join(b.userHome, ".m2", "repository")
	}
	b.setPropertyIfAbsent(mavenLocalRepositoryProperty, repo)
}

func (b *Builder) setPropertyIfAbsent(key, value string) {
	if strings.TrimSpace(b.props[key]) == "" {
		b.log.Warn().Str("key", key).Str("value", value).Msg("using default value for orchestrator properties")
		b.props[key] = value
	}
}
