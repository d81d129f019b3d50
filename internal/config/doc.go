// Package config assembles the single effective configuration of an
// orchestrated test run and derives the filesystem locations the rest of the
// tool works from.
//
// A configuration is built from multiple sources with a fixed precedence
// (highest first):
//  1. Explicit overrides (SetProperty and friends)
//  2. Environment variables and system properties, in call order
//  3. Values loaded from an optional properties file (orchestrator.configUrl)
//  4. Hardcoded defaults seeded when no properties file is configured
//
// Sources 3 and 4 never overwrite a key that is already present. After all
// sources are merged, every value goes through a single pass of ${key}
// interpolation and the result is frozen into an immutable [Configuration].
//
// The main entry points are [NewBuilder] for full control over sources and
// the [Create], [CreateFromMap] and [CreateEnv] shortcuts.
package config
