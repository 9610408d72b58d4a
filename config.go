package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	c "git.cmcode.dev/cmcode/finance-calendar-tui/constants"
	m "git.cmcode.dev/cmcode/finance-calendar-tui/models"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Flags holds the command line flags. Empty values mean "not set", so that
// the environment and the config file can fill them in.
type Flags struct {
	ConfigFile string
	Theme      string
	Store      string
	StorePath  string
	LogLevel   string
	Month      string
	Ephemeral  bool
	Print      bool

	// If this flag is set to true, the application will only show the user
	// the keyboard keys that they press.
	KeyboardEchoMode bool
}

// EnvOverrides are read from the environment (and a .env file in the
// working directory, if present). They take precedence over the config file
// but not over flags.
type EnvOverrides struct {
	ConfigFile   string `env:"FINCAL_CONFIG"`
	Theme        string `env:"FINCAL_THEME"`
	StoreBackend string `env:"FINCAL_STORE_BACKEND"`
	StorePath    string `env:"FINCAL_STORE_PATH"`
	LogLevel     string `env:"FINCAL_LOG_LEVEL"`
}

// parseFlags parses the command line flags, using t as the translation map.
// Usage and parse errors are written to out.
func parseFlags(args []string, t map[string]string, out io.Writer) (Flags, error) {
	f := Flags{}

	set := flag.NewFlagSet(c.DefaultConfigParentDir, flag.ContinueOnError)
	set.SetOutput(out)
	set.StringVar(&f.ConfigFile, t["FlagConfigFileFlag"], "", t["FlagConfigFileDesc"])
	set.StringVar(&f.Theme, t["FlagThemeFlag"], "", t["FlagThemeDesc"])
	set.StringVar(&f.Store, t["FlagStoreFlag"], "", t["FlagStoreDesc"])
	set.StringVar(&f.StorePath, t["FlagStorePathFlag"], "", t["FlagStorePathDesc"])
	set.BoolVar(&f.Ephemeral, t["FlagEphemeralFlag"], false, t["FlagEphemeralDesc"])
	set.BoolVar(&f.Print, t["FlagPrintFlag"], false, t["FlagPrintDesc"])
	set.StringVar(&f.Month, t["FlagMonthFlag"], "", t["FlagMonthDesc"])
	set.StringVar(&f.LogLevel, t["FlagLogLevelFlag"], "", t["FlagLogLevelDesc"])
	set.BoolVar(&f.KeyboardEchoMode, t["FlagKeyboardEchoModeFlag"], false, t["FlagKeyboardEchoModeDesc"])

	err := set.Parse(args)
	if err != nil {
		return f, fmt.Errorf("failed to parse flags: %w", err)
	}

	return f, nil
}

// loadEnv loads a .env file if one exists and then parses the environment.
func loadEnv() (EnvOverrides, error) {
	e := EnvOverrides{}

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return e, fmt.Errorf("failed to load .env: %w", err)
	}

	err = env.Parse(&e)
	if err != nil {
		return e, fmt.Errorf("failed to parse environment: %w", err)
	}

	return e, nil
}

// Attempts to load from a specific location, if possible.
//
// The first return value is the populated config, if one was found and parsed.
// The second return value is a string that indicates the properly loaded path
// that successfully loaded the config (if it didn't succeed, it will be an
// empty string). The third return value is an error, if present.
//
// The "t" parameter is the map of translations.
func loadConfFrom(file string, t map[string]string) (m.Config, string, error) {
	conf := m.Config{}

	b, err := os.ReadFile(file)
	if err != nil {
		return conf, "", fmt.Errorf("%v %v: %w", t["ConfigFailedToLoadConfig"], file, err)
	}

	err = yaml.Unmarshal(b, &conf)
	if err != nil {
		return conf, "", fmt.Errorf("%v %v: %w", t["ConfigFailedToUnmarshalConfig"], file, err)
	}

	return conf, file, nil
}

func loadConfFromEmbed(file string, emb fs.FS, t map[string]string) (m.Config, string, error) {
	conf := m.Config{}

	b, err := fs.ReadFile(emb, file)
	if err != nil {
		return conf, "", fmt.Errorf("%v %v: %w", t["ConfigFailedToLoadEmbeddedConfig"], file, err)
	}

	err = yaml.Unmarshal(b, &conf)
	if err != nil {
		return conf, "", fmt.Errorf("%v %v: %w", t["ConfigFailedToUnmarshalEmbeddedConfig"], file, err)
	}

	return conf, file, nil
}

func fileExists(name string) (bool, error) {
	_, err := os.Stat(name)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	return false, err
}

// Attempts to load from the "file" path provided - if not successful,
// attempts to load from xdg config, then xdg home.
//
// The first return value is the populated config. The second return value is
// the path that the config was loaded from, or the xdg config path when the
// embedded example config had to be used. The third return value is an
// error, if present. The fourth is true if the embedded example was used.
//
// The "t" parameter is the map of translations.
func loadConfig(file string, t map[string]string, exampleConf fs.FS) (m.Config, string, bool, error) {
	var conf m.Config

	// create the XDG config dir for this application once upon startup
	xdgConfigDir := path.Join(xdg.ConfigHome, c.DefaultConfigParentDir)

	err := os.MkdirAll(xdgConfigDir, 0o755)
	if err != nil {
		return conf, file, false, fmt.Errorf("failed to make all directories %v: %w", xdgConfigDir, err)
	}

	candidates := []string{
		path.Join(xdgConfigDir, c.DefaultConfig),
		path.Join(xdg.Home, ".config", c.DefaultConfigParentDir, c.DefaultConfig),
	}

	if file != "" {
		candidates = append([]string{file}, candidates...)
	}

	for _, candidate := range candidates {
		exists, err := fileExists(candidate)
		if err != nil {
			return conf, candidate, false, fmt.Errorf("failed to check if file %v exists: %w", candidate, err)
		}

		if !exists {
			continue
		}

		conf, _, err = loadConfFrom(candidate, t)
		if err != nil {
			return conf, candidate, false, fmt.Errorf("failed to load config from existing config file %v: %w", candidate, err)
		}

		return conf, candidate, false, nil
	}

	// nothing exists yet; use the example config, and target the path the
	// user asked for (or the xdg config path) for writing it out
	target := candidates[0]

	conf, _, err = loadConfFromEmbed("example.yml", exampleConf, t)
	if err != nil {
		return conf, target, true, fmt.Errorf("failed to load config from template config: %w", err)
	}

	return conf, target, true, nil
}

// writeConfig saves conf as yaml to file.
func writeConfig(file string, conf m.Config) error {
	b, err := yaml.Marshal(conf)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.MkdirAll(path.Dir(file), 0o755)
	if err != nil {
		return fmt.Errorf("failed to make all directories for %v: %w", file, err)
	}

	//nolint:gosec
	err = os.WriteFile(file, b, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write config %v: %w", file, err)
	}

	return nil
}

// processConfig applies any post-load configuration parameters/logic to ensure
// that data is valid & consistent. Use it after loadConfig.
func processConfig(conf *m.Config) {
	if conf.Version == "" {
		conf.Version = c.ConfigVersion
	}

	if conf.Recurrences <= 0 {
		conf.Recurrences = c.DefaultRecurrences
	}

	if conf.Recurrences > c.MaxRecurrences {
		conf.Recurrences = c.MaxRecurrences
	}

	if conf.Store.Backend == "" {
		conf.Store.Backend = c.StoreBackendFile
	}

	if conf.LogLevel == "" {
		conf.LogLevel = "info"
	}

	if conf.Keybindings == nil {
		conf.Keybindings = make(map[string][]string)
	}

	conf.Store.Backend = strings.ToLower(strings.TrimSpace(conf.Store.Backend))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// applyOverrides layers the environment and then the flags on top of conf.
func applyOverrides(conf *m.Config, e EnvOverrides, f Flags) {
	conf.Theme = firstNonEmpty(f.Theme, e.Theme, conf.Theme)
	conf.Store.Backend = firstNonEmpty(f.Store, e.StoreBackend, conf.Store.Backend)
	conf.Store.Path = firstNonEmpty(f.StorePath, e.StorePath, conf.Store.Path)
	conf.LogLevel = firstNonEmpty(f.LogLevel, e.LogLevel, conf.LogLevel)

	if f.Ephemeral {
		conf.Store.Backend = c.StoreBackendMemory
	}
}
