// Package config wires command-line flags and environment variables into
// a single viper-backed settings object for the tour CLI.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "knightour"

// Config holds all runtime settings. Flags win over environment variables
// (KNIGHTOUR_*), which win over defaults.
type Config struct {
	v *viper.Viper
}

func New() *Config {
	v := viper.New()
	v.SetDefault("size", 8)
	v.SetDefault("start-row", 0)
	v.SetDefault("start-col", 0)
	v.SetDefault("attempts", 100)
	v.SetDefault("verbose", false)
	v.SetDefault("no-logs", false)
	v.SetDefault("log-format", "json")
	v.SetDefault("log-dir", ".")
	v.SetDefault("backtrack-limit", 30)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &Config{v: v}
}

// Load parses args (normally os.Args[1:]) and binds them.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet(envPrefix, pflag.ContinueOnError)
	fs.Int("size", 8, "board dimension N for the N×N board")
	fs.Int("start-row", 0, "starting row, 0-based")
	fs.Int("start-col", 0, "starting column, 0-based")
	fs.Int("attempts", 100, "heuristic attempt budget")
	fs.Bool("verbose", false, "emit per-move diagnostics while solving")
	fs.Bool("no-logs", false, "skip writing the stats and transcript files")
	fs.String("log-format", "json", "attempt log format: json or yaml")
	fs.String("log-dir", ".", "directory for stats and transcript files")
	fs.Int("backtrack-limit", 30, "largest board size the exhaustive fallback will try")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.v.BindPFlags(fs)
}

func (c *Config) Size() int           { return c.v.GetInt("size") }
func (c *Config) StartRow() int       { return c.v.GetInt("start-row") }
func (c *Config) StartCol() int       { return c.v.GetInt("start-col") }
func (c *Config) Attempts() int       { return c.v.GetInt("attempts") }
func (c *Config) Verbose() bool       { return c.v.GetBool("verbose") }
func (c *Config) SaveLogs() bool      { return !c.v.GetBool("no-logs") }
func (c *Config) LogFormat() string   { return c.v.GetString("log-format") }
func (c *Config) LogDir() string      { return c.v.GetString("log-dir") }
func (c *Config) BacktrackLimit() int { return c.v.GetInt("backtrack-limit") }

// AllSettings exposes the merged settings map, mostly for startup logging.
func (c *Config) AllSettings() map[string]interface{} {
	return c.v.AllSettings()
}
