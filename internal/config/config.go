// Package config provides configuration management for svcgen.
// It resolves the conventional Laravel project layout, optionally overridden
// by a .svcgen.yaml file in the project root and SVCGEN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the name of the optional per-project config file
	ConfigFileName = ".svcgen"

	// EnvPrefix is the prefix of environment variable overrides
	EnvPrefix = "SVCGEN"
)

// Paths holds the project-relative locations the generator reads and writes
type Paths struct {
	BaseInterface  string
	BaseRepository string
	Models         string
	Templates      string
	Interfaces     string
	Repositories   string
	Services       string
	Provider       string
}

// Namespaces holds the PHP namespace roots matching Paths
type Namespaces struct {
	// Root is the application namespace, e.g. App
	Root string

	// Provider is the namespace declared by the registration file
	Provider string
}

// Log holds the logger settings
type Log struct {
	Level  string
	Format string
}

// Config represents the resolved generator configuration for one project
type Config struct {
	// ProjectRoot is the directory all Paths are relative to
	ProjectRoot string

	Paths      Paths
	Namespaces Namespaces

	// Extension is the source file extension of generated artifacts, including the dot
	Extension string

	// BootSignature is the initialization method whose body receives the binding
	BootSignature string

	Log Log
}

// Path joins a project-relative path onto the project root
func (c *Config) Path(rel string) string {
	return filepath.Join(c.ProjectRoot, filepath.FromSlash(rel))
}

// ProviderAnchor returns the namespace line the use statements are inserted after
func (c *Config) ProviderAnchor() string {
	return fmt.Sprintf("namespace %s;", c.Namespaces.Provider)
}

// Manager handles configuration loading for a project
type Manager struct {
	projectRoot string
	configFile  string
}

// NewManager creates a new configuration manager.
// An empty configFile means the optional .svcgen.yaml in projectRoot.
func NewManager(projectRoot, configFile string) *Manager {
	return &Manager{
		projectRoot: projectRoot,
		configFile:  configFile,
	}
}

// Load resolves the configuration.
// A missing default config file is not an error; a missing explicit one is.
func (m *Manager) Load() (*Config, error) {
	root, err := filepath.Abs(m.projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if m.configFile != "" {
		v.SetConfigFile(m.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", m.configFile, err)
		}
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(root)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	return fromViper(v, root), nil
}

// Default returns the conventional layout rooted at projectRoot, without reading any file
func Default(projectRoot string) *Config {
	v := viper.New()
	setDefaults(v)
	return fromViper(v, projectRoot)
}

func fromViper(v *viper.Viper, root string) *Config {
	return &Config{
		ProjectRoot: root,
		Paths: Paths{
			BaseInterface:  v.GetString("paths.base_interface"),
			BaseRepository: v.GetString("paths.base_repository"),
			Models:         v.GetString("paths.models"),
			Templates:      v.GetString("paths.templates"),
			Interfaces:     v.GetString("paths.interfaces"),
			Repositories:   v.GetString("paths.repositories"),
			Services:       v.GetString("paths.services"),
			Provider:       v.GetString("paths.provider"),
		},
		Namespaces: Namespaces{
			Root:     strings.Trim(v.GetString("namespaces.root"), `\`),
			Provider: strings.Trim(v.GetString("namespaces.provider"), `\`),
		},
		Extension:     normalizeExtension(v.GetString("extension")),
		BootSignature: v.GetString("boot_signature"),
		Log: Log{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("paths.base_interface", "app/Interfaces/BaseInterface.php")
	v.SetDefault("paths.base_repository", "app/Repositories/Repository.php")
	v.SetDefault("paths.models", "app/Models")
	v.SetDefault("paths.templates", "stubs")
	v.SetDefault("paths.interfaces", "app/Interfaces")
	v.SetDefault("paths.repositories", "app/Repositories")
	v.SetDefault("paths.services", "app/Services")
	v.SetDefault("paths.provider", "app/Providers/RepositoryServiceProvider.php")
	v.SetDefault("namespaces.root", "App")
	v.SetDefault("namespaces.provider", `App\Providers`)
	v.SetDefault("extension", ".php")
	v.SetDefault("boot_signature", "public function boot(): void")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

func normalizeExtension(ext string) string {
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}
