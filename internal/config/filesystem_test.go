package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// verifySameDirs asserts that two textual paths refer to the same directory
// by comparing their canonical forms.
func verifySameDirs(t *testing.T, got, want string) {
	t.Helper()
	assert.Equal(t, canonicalPath(want), canonicalPath(got))
}

// TestFileSystem_Defaults verifies every directory with an empty
// configuration: optional homes unset, the rest derived from the user home
// and the working directory.
func TestFileSystem_Defaults(t *testing.T) {
	home := t.TempDir()
	cfg := buildConfig(t, map[string]string{}, WithUserHome(home))
	fs := cfg.FileSystem()

	// optional directories are never synthesized
	_, ok := fs.JavaHome()
	assert.False(t, ok)
	_, ok = fs.AntHome()
	assert.False(t, ok)
	_, ok = fs.MavenHome()
	assert.False(t, ok)

	verifySameDirs(t, fs.MavenLocalRepository(), filepath.Join(home, ".m2", "repository"))
	verifySameDirs(t, fs.Workspace(), "target")
	verifySameDirs(t, fs.OrchestratorHome(), filepath.Join(home, ".sonar"))
	verifySameDirs(t, fs.SonarQubeZipsDir(), filepath.Join(home, ".sonar", "installs"))
}

// TestFileSystem_ConfigureJavaHome verifies the java.home property.
func TestFileSystem_ConfigureJavaHome(t *testing.T) {
	dir := t.TempDir()
	cfg := buildConfig(t, map[string]string{"java.home": dir})

	javaHome, ok := cfg.FileSystem().JavaHome()
	require.True(t, ok)
	verifySameDirs(t, javaHome, dir)
}

// TestFileSystem_JavaHomeFromEnvVariable verifies the JAVA_HOME fallback when
// the property is unset.
func TestFileSystem_JavaHomeFromEnvVariable(t *testing.T) {
	dir := t.TempDir()
	cfg := buildConfig(t, map[string]string{},
		WithEnvironment(map[string]string{"JAVA_HOME": dir}))

	javaHome, ok := cfg.FileSystem().JavaHome()
	require.True(t, ok)
	verifySameDirs(t, javaHome, dir)
}

// TestFileSystem_ConfigureAntHome verifies the ant.home property.
func TestFileSystem_ConfigureAntHome(t *testing.T) {
	dir := t.TempDir()
	cfg := buildConfig(t, map[string]string{"ant.home": dir})

	antHome, ok := cfg.FileSystem().AntHome()
	require.True(t, ok)
	verifySameDirs(t, antHome, dir)
}

// TestFileSystem_ConfigureMavenHome verifies the maven.home property and the
// MAVEN_HOME fallback.
func TestFileSystem_ConfigureMavenHome(t *testing.T) {
	dir := t.TempDir()
	cfg := buildConfig(t, map[string]string{"maven.home": dir})

	mavenHome, ok := cfg.FileSystem().MavenHome()
	require.True(t, ok)
	verifySameDirs(t, mavenHome, dir)

	envDir := t.TempDir()
	cfg = buildConfig(t, map[string]string{},
		WithEnvironment(map[string]string{"MAVEN_HOME": envDir}))

	mavenHome, ok = cfg.FileSystem().MavenHome()
	require.True(t, ok)
	verifySameDirs(t, mavenHome, envDir)
}

// TestFileSystem_ConfigureMavenLocalRepository verifies the
// maven.localRepository property.
func TestFileSystem_ConfigureMavenLocalRepository(t *testing.T) {
	dir := t.TempDir()
	cfg := buildConfig(t, map[string]string{"maven.localRepository": dir})

	verifySameDirs(t, cfg.FileSystem().MavenLocalRepository(), dir)
}

// TestFileSystem_ConfigureWorkspace verifies the orchestrator.workspaceDir
// property.
func TestFileSystem_ConfigureWorkspace(t *testing.T) {
	dir := t.TempDir()
	cfg := buildConfig(t, map[string]string{"orchestrator.workspaceDir": dir})

	verifySameDirs(t, cfg.FileSystem().Workspace(), dir)
}

// TestFileSystem_ConfigureOrchestratorHome verifies that SONAR_USER_HOME
// moves both the home and its derived install cache.
func TestFileSystem_ConfigureOrchestratorHome(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "installs"), 0o755))
	cfg := buildConfig(t, map[string]string{"SONAR_USER_HOME": dir})
	fs := cfg.FileSystem()

	verifySameDirs(t, fs.OrchestratorHome(), dir)
	verifySameDirs(t, fs.SonarQubeZipsDir(), filepath.Join(dir, "installs"))
}

// TestFileSystem_OrchestratorHomeFromEnvVariable verifies the SONAR_USER_HOME
// environment fallback.
func TestFileSystem_OrchestratorHomeFromEnvVariable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "installs"), 0o755))
	cfg := buildConfig(t, map[string]string{},
		WithEnvironment(map[string]string{"SONAR_USER_HOME": dir}))
	fs := cfg.FileSystem()

	verifySameDirs(t, fs.OrchestratorHome(), dir)
	verifySameDirs(t, fs.SonarQubeZipsDir(), filepath.Join(dir, "installs"))
}

// TestFileSystem_CanonicalEquality verifies that two different spellings of
// the same directory resolve to equal paths.
func TestFileSystem_CanonicalEquality(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	spelled := filepath.Join(dir, "sub", "..")

	cfg := buildConfig(t, map[string]string{"java.home": spelled})

	javaHome, ok := cfg.FileSystem().JavaHome()
	require.True(t, ok)
	verifySameDirs(t, javaHome, dir)
}

// TestFileSystem_SameInstanceReturned verifies that the configuration owns a
// single lazily-constructed resolver.
func TestFileSystem_SameInstanceReturned(t *testing.T) {
	cfg := buildConfig(t, map[string]string{})
	assert.Same(t, cfg.FileSystem(), cfg.FileSystem())
}
