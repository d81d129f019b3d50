// Command orchestrator resolves the effective configuration of a test run
// and prints the resolved properties and derived directories. It is a
// debugging aid for understanding which source a value came from.
package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/sonar-contrib/orchestrator/internal/config"
	"github.com/sonar-contrib/orchestrator/internal/logger"
)

var (
	buildVersion string
	buildDate    string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("orchestrator")

	overrides := keyValueFlag{}
	sysProps := keyValueFlag{}
	var configURL string
	var noEnv bool
	flag.Var(overrides, "set", "Explicit property override key=value (repeatable)")
	flag.Var(sysProps, "D", "Ambient system property key=value (repeatable)")
	flag.StringVar(&configURL, "config-url", "", "URL of a properties file to load into absent keys")
	flag.BoolVar(&noEnv, "no-env", false, "Skip merging process environment variables")
	flag.Parse()

	builder := config.NewBuilder(config.WithSystemProperties(sysProps))
	if !noEnv {
		builder.AddEnvVariables()
	}
	builder.AddSystemProperties()
	if configURL != "" {
		builder.SetProperty("orchestrator.configUrl", configURL)
	}
	for key, value := range overrides {
		builder.SetProperty(key, value)
	}

	cfg, err := builder.Build()
	if err != nil {
		log.Fatal().Err(err).Msg("error building configuration")
	}

	printResolved(cfg)
}

func printResolved(cfg *config.Configuration) {
	resolved := cfg.AsMap()
	keys := make([]string, 0, len(resolved))
	for key := range resolved {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("%s=%s\n", key, resolved[key])
	}

	fs := cfg.FileSystem()
	fmt.Println()
	if dir, ok := fs.JavaHome(); ok {
		fmt.Printf("javaHome: %s\n", dir)
	}
	if dir, ok := fs.AntHome(); ok {
		fmt.Printf("antHome: %s\n", dir)
	}
	if dir, ok := fs.MavenHome(); ok {
		fmt.Printf("mavenHome: %s\n", dir)
	}
	fmt.Printf("mavenLocalRepository: %s\n", fs.MavenLocalRepository())
	fmt.Printf("workspace: %s\n", fs.Workspace())
	fmt.Printf("orchestratorHome: %s\n", fs.OrchestratorHome())
	fmt.Printf("sonarQubeZipsDir: %s\n", fs.SonarQubeZipsDir())
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
}
