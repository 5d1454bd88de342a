package configuration

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/spf13/cast"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = ierrors.New("unknown config file format")
)

// Configuration holds config parameters from several sources (file, env vars, flags).
type Configuration struct {
	config *koanf.Koanf
}

// New returns a new configuration.
func New() *Configuration {
	return &Configuration{
		config: koanf.New("."),
	}
}

// LoadFile loads parameters from a JSON or YAML file and merges them into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return ierrors.Wrapf(err, "unable to load config file %s", filePath)
	}

	parser, err := parserForFile(filePath)
	if err != nil {
		return err
	}

	return c.config.Load(file.Provider(filePath), parser)
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) including
// default values and merges them into the loaded config.
// Existing keys will only be overwritten, if they were set via command line.
// If not given via command line, default values will only be used if they did not exist beforehand.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(lowerPosflagProvider(flagSet, ".", c.config), nil)
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the loaded config.
// The prefix is used to filter the env vars.
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil)
}

// Int returns the int value of a given key path or 0 if the path does not exist or if the value is not a valid int.
func (c *Configuration) Int(key string) int {
	return cast.ToInt(c.config.Get(strings.ToLower(key)))
}

// Bool returns the bool value of a given key path or false if the path does not exist or if the value is not a valid bool.
func (c *Configuration) Bool(key string) bool {
	return cast.ToBool(c.config.Get(strings.ToLower(key)))
}

// String returns the string value of a given key path or "" if the path does not exist or if the value is not a valid string.
func (c *Configuration) String(key string) string {
	return cast.ToString(c.config.Get(strings.ToLower(key)))
}

// JSON returns the loaded settings encoded as indented JSON.
func (c *Configuration) JSON() (string, error) {
	cfg, err := json.MarshalIndent(c.config.Raw(), "", "  ")
	if err != nil {
		return "", ierrors.Wrap(err, "unable to marshal config")
	}

	return string(cfg), nil
}
