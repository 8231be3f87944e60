// Package config loads kernels settings from flags, environment and an
// optional config file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Bench BenchConfig `mapstructure:"bench"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BenchConfig drives the bench command. Shapes are comma separated extents.
type BenchConfig struct {
	Iterations int    `mapstructure:"iterations"`
	Workers    int    `mapstructure:"workers"`
	DType      string `mapstructure:"dtype"`
	OutDType   string `mapstructure:"out_dtype"`
	LHSShape   string `mapstructure:"lhs_shape"`
	RHSShape   string `mapstructure:"rhs_shape"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Bench: BenchConfig{
			Iterations: 1000,
			Workers:    1,
			DType:      "float32",
			OutDType:   "",
			LHSShape:   "256,256",
			RHSShape:   "256",
		},
	}
}

// flagKeys maps config keys to the flag names RegisterFlags declares.
var flagKeys = map[string]string{
	"log.level":        "log-level",
	"log.format":       "log-format",
	"bench.iterations": "bench-iterations",
	"bench.workers":    "bench-workers",
	"bench.dtype":      "bench-dtype",
	"bench.out_dtype":  "bench-out-dtype",
	"bench.lhs_shape":  "bench-lhs-shape",
	"bench.rhs_shape":  "bench-rhs-shape",
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.Log.Level, "Log level: debug|info|warn|error")
	fs.String("log-format", defaults.Log.Format, "Log format: text|json")
	fs.Int("bench-iterations", defaults.Bench.Iterations, "Multiplications per bench run")
	fs.Int("bench-workers", defaults.Bench.Workers, "Goroutines sharing the bench iterations")
	fs.String("bench-dtype", defaults.Bench.DType, "Operand dtype for bench")
	fs.String("bench-out-dtype", defaults.Bench.OutDType, "Output dtype for bench (default: operand dtype)")
	fs.String("bench-lhs-shape", defaults.Bench.LHSShape, "Left operand shape for bench, e.g. 256,256")
	fs.String("bench-rhs-shape", defaults.Bench.RHSShape, "Right operand shape for bench, e.g. 256")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("KERNELS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("kernels")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
	v.SetDefault("bench.iterations", c.Bench.Iterations)
	v.SetDefault("bench.workers", c.Bench.Workers)
	v.SetDefault("bench.dtype", c.Bench.DType)
	v.SetDefault("bench.out_dtype", c.Bench.OutDType)
	v.SetDefault("bench.lhs_shape", c.Bench.LHSShape)
	v.SetDefault("bench.rhs_shape", c.Bench.RHSShape)
}

// bindFlags binds every registered flag to its nested key. Flags only
// override file and env values when set on the command line.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// ParseLogLevel maps a level name to its slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}
