package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseAmbientEnv_AllFields verifies that every named fallback variable
// is mapped onto its struct field.
func TestParseAmbientEnv_AllFields(t *testing.T) {
	environ := map[string]string{
		"SONAR_MAVEN_REPOSITORY": "/repo",
		"SONAR_IT_SOURCES":       "/its",
		"SONAR_USER_HOME":        "/home/.sonar",
		"JAVA_HOME":              "/opt/java",
		"ANT_HOME":               "/opt/ant",
		"MAVEN_HOME":             "/opt/maven",
	}

	ambient, err := parseAmbientEnv(environ)
	require.NoError(t, err)

	assert.Equal(t, "/repo", ambient.MavenRepository)
	assert.Equal(t, "/its", ambient.ItSources)
	assert.Equal(t, "/home/.sonar", ambient.UserHome)
	assert.Equal(t, "/opt/java", ambient.JavaHome)
	assert.Equal(t, "/opt/ant", ambient.AntHome)
	assert.Equal(t, "/opt/maven", ambient.MavenHome)
}

// TestParseAmbientEnv_EmptyEnvironment verifies that missing variables leave
// zero values without error.
func TestParseAmbientEnv_EmptyEnvironment(t *testing.T) {
	ambient, err := parseAmbientEnv(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, ambientEnv{}, ambient)
}

// TestEnvironToMap verifies conversion of os.Environ-style entries, values
// containing "=", and skipping of malformed entries.
func TestEnvironToMap(t *testing.T) {
	m := environToMap([]string{"A=1", "B=x=y", "MALFORMED"})

	assert.Equal(t, map[string]string{"A": "1", "B": "x=y"}, m)
}
