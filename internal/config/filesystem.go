// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Orchestrator Authors

package config

import "path/filepath"

// FileSystem derives the named directories the orchestrator works from. Each
// directory follows a documented precedence chain of configuration key, then
// environment variable, then computed default, and every resolved value is
// canonicalized so that two spellings of the same directory compare equal.
//
// A FileSystem is owned by its Configuration and shares its lifetime; all
// paths are resolved at construction, so the value is immutable and safe for
// concurrent reads.
type FileSystem struct {
	javaHome             optionalDir
	antHome              optionalDir
	mavenHome            optionalDir
	mavenLocalRepository string
	workspace            string
	orchestratorHome     string
	sonarQubeZipsDir     string
}

type optionalDir struct {
	path string
	set  bool
}

func newFileSystem(c *Configuration) *FileSystem {
	fs := &FileSystem{
		javaHome:  resolveOptionalDir(c, "java.home", c.ambient.JavaHome),
		antHome:   resolveOptionalDir(c, "ant.home", c.ambient.AntHome),
		mavenHome: resolveOptionalDir(c, "maven.home", c.ambient.MavenHome),
	}

	fs.mavenLocalRepository = canonicalPath(c.GetStringOrDefault(
		mavenLocalRepositoryProperty, filepath.Join(c.userHome, ".m2", "repository")))
	fs.workspace = canonicalPath(c.GetStringOrDefault("orchestrator.workspaceDir", "target"))

	home := c.GetStringOrDefault("SONAR_USER_HOME", c.ambient.UserHome)
	if home == "" {
		home = filepath.Join(c.userHome, ".sonar")
	}
	fs.orchestratorHome = canonicalPath(home)
	// install cache is always a subdirectory of the orchestrator home
	fs.sonarQubeZipsDir = canonicalPath(filepath.Join(fs.orchestratorHome, "installs"))

	return fs
}

// resolveOptionalDir resolves a directory that has no computed default: the
// configuration key wins, then the environment fallback, otherwise unset.
func resolveOptionalDir(c *Configuration, key, envValue string) optionalDir {
	path := c.GetStringOrDefault(key, envValue)
	if path == "" {
		return optionalDir{}
	}
	return optionalDir{path: canonicalPath(path), set: true}
}

// JavaHome returns the Java installation directory from java.home or
// JAVA_HOME, or ok=false when neither is set. No default is synthesized.
func (fs *FileSystem) JavaHome() (string, bool) { return fs.javaHome.path, fs.javaHome.set }

// AntHome returns the Ant installation directory from ant.home or ANT_HOME,
// or ok=false when neither is set.
func (fs *FileSystem) AntHome() (string, bool) { return fs.antHome.path, fs.antHome.set }

// MavenHome returns the Maven installation directory from maven.home or
// MAVEN_HOME, or ok=false when neither is set.
func (fs *FileSystem) MavenHome() (string, bool) { return fs.mavenHome.path, fs.mavenHome.set }

// MavenLocalRepository returns maven.localRepository, defaulting to
// <user-home>/.m2/repository.
func (fs *FileSystem) MavenLocalRepository() string { return fs.mavenLocalRepository }

// Workspace returns orchestrator.workspaceDir, defaulting to "target"
// relative to the working directory.
func (fs *FileSystem) Workspace() string { return fs.workspace }

// OrchestratorHome returns the tool's home directory from SONAR_USER_HOME
// (property, then environment variable), defaulting to <user-home>/.sonar.
func (fs *FileSystem) OrchestratorHome() string { return fs.orchestratorHome }

// SonarQubeZipsDir returns the install cache, always
// <orchestratorHome>/installs.
func (fs *FileSystem) SonarQubeZipsDir() string { return fs.sonarQubeZipsDir }

// canonicalPath returns the absolute form of p, with symlinks resolved when
// the path exists. Two textual spellings of the same directory canonicalize
// to equal strings, which is the equality contract for every directory this
// resolver returns.
func canonicalPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
