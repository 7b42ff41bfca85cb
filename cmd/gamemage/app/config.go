package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/gamemage/pkg/constants"
	"github.com/agentstation/gamemage/pkg/errors"
)

// envPrefix namespaces every environment variable the CLI reads.
const envPrefix = "GAMEMAGE"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Catalog configuration
	CatalogPath string
	MediaRoot   string
	Locking     bool

	// Logging configuration. LogLevel is the explicit --log-level flag,
	// EnvLogLevel comes from the environment or the config file.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (bound in the root command)
// 2. Environment variables (GAMEMAGE_*)
// 3. .env files
// 4. Config file (./.gamemage.yaml or ~/.gamemage.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	v := newViper()
	if err := readConfigFile(v, ""); err != nil {
		return nil, err
	}
	return configFrom(v), nil
}

// newViper creates a viper instance wired to the environment and defaults.
func newViper() *viper.Viper {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetConfigType("yaml")

	v.SetDefault("catalog_path", constants.DefaultCatalogPath)
	v.SetDefault("media_root", constants.DefaultMediaRoot)
	v.SetDefault("locking", true)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
	return v
}

// readConfigFile reads file, or searches the standard locations when file
// is empty. A missing config file in the standard locations is not an error.
func readConfigFile(v *viper.Viper, file string) error {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return errors.NewConfigError("config", "cannot read "+file+": "+err.Error(), err)
		}
		return nil
	}

	v.SetConfigName(constants.ConfigFileName)
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.NewConfigError("config", "cannot read config file: "+err.Error(), err)
	}
	return nil
}

// configFrom builds a Config from the resolved viper values.
func configFrom(v *viper.Viper) *Config {
	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		CatalogPath: v.GetString("catalog_path"),
		MediaRoot:   v.GetString("media_root"),
		Locking:     v.GetBool("locking"),

		EnvLogLevel: v.GetString("log_level"),
		LogFormat:   v.GetString("log_format"),
		LogOutput:   v.GetString("log_output"),
	}
}

// loadEnvFiles loads environment variables from .env files.
func loadEnvFiles() {
	// .env.local overrides .env; godotenv never overrides variables
	// that are already set, so load the local file first.
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
