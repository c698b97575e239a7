package config

import (
	"os"
	"path/filepath"

	"eclipse-sync/internal/logger"

	"gopkg.in/yaml.v3"
)

// Config is the top-level structure returned after loading the YAML
// configuration. It is assembled once at startup and handed to the importer;
// nothing in this package keeps process-wide mutable state.
type Config struct {
	// DefaultSource is the settings source used when --source is not given,
	// typically a shared team directory or an exported bundle archive.
	DefaultSource string `yaml:"default_source"`

	// SearchDirs are extra directories probed for Eclipse workspaces in
	// addition to the conventional per-user locations.
	SearchDirs []string `yaml:"search_dirs"`

	// ExpectedComponents is the checklist of plugin identifiers the validate
	// command checks for after an import.
	ExpectedComponents []string `yaml:"expected_components"`
}

// DefaultExpectedComponents is the checklist used when the config file does
// not name one: the plugins a typical team export covers.
var DefaultExpectedComponents = []string{
	"org.eclipse.jdt.core",
	"org.eclipse.jdt.ui",
	"org.eclipse.core.resources",
	"org.eclipse.core.runtime",
	"org.eclipse.ui.editors",
}

// Load reads the eclipse-sync config YAML from the given path.
// A missing file is not an error: the zero config with the default checklist
// is returned so the tool works out of the box with flags alone.
func Load(configFile string) Config {
	cfg := Config{ExpectedComponents: DefaultExpectedComponents}

	raw, err := os.ReadFile(configFile)
	if err != nil {
		logger.Debug("[DEBUG] No config file at %s, using defaults: %v\n", configFile, err)
		return cfg
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		logger.Error("[ERROR] Failed to unmarshal %s: %v\n", configFile, err)
		return Config{ExpectedComponents: DefaultExpectedComponents}
	}

	// An empty checklist in the file means "use the defaults", not "expect
	// nothing" — validate against zero components is never useful.
	if len(cfg.ExpectedComponents) == 0 {
		cfg.ExpectedComponents = DefaultExpectedComponents
	}

	logger.Debug("[DEBUG] Loaded config from %s: source=%s, %d search dirs, %d expected components\n",
		configFile, cfg.DefaultSource, len(cfg.SearchDirs), len(cfg.ExpectedComponents))
	return cfg
}

// DefaultPath returns the conventional location of the config file,
// ~/.config/eclipse-sync/config.yaml, falling back to a relative path when
// the home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "eclipse-sync", "config.yaml")
}
