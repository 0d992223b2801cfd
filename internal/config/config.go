package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/atomicstack/passgen-popup/internal/app"
	"github.com/atomicstack/passgen-popup/internal/clipboard"
	"github.com/atomicstack/passgen-popup/internal/shell"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// minLength keeps room for one character of each enabled class.
const minLength = 4

const (
	envConfig     = "PASSGEN_POPUP_CONFIG"
	envLength     = "PASSGEN_POPUP_LENGTH"
	envClipboard  = "PASSGEN_POPUP_CLIPBOARD"
	envVerify     = "PASSGEN_POPUP_VERIFY"
	envTmuxBuffer = "PASSGEN_POPUP_TMUX_BUFFER"
	envBufferName = "PASSGEN_POPUP_BUFFER_NAME"
	envSocketPath = "PASSGEN_POPUP_SOCKET"
	envTrace      = "PASSGEN_POPUP_TRACE"
	envLogFile    = "PASSGEN_POPUP_LOG_FILE"
)

// fileConfig mirrors the optional TOML file. Pointers distinguish unset keys
// from zero values.
type fileConfig struct {
	Length     *int    `toml:"length"`
	Clipboard  *string `toml:"clipboard"`
	Verify     *string `toml:"verify"`
	TmuxBuffer *bool   `toml:"tmux_buffer"`
	BufferName *string `toml:"buffer_name"`
	Socket     *string `toml:"socket"`
	LogFile    *string `toml:"log_file"`
	Trace      *bool   `toml:"trace"`
}

// Load parses configuration from CLI arguments, environment variables and
// the optional config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// flag, then environment, then config file, then built-in default.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	path := flagValue(args, "config")
	if path == "" {
		path = env[envConfig]
	}
	file, err := readFile(path)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("passgen-popup", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", path, "path to a TOML config file")
	length := fs.Int("length", envOrInt(env, envLength, intOr(file.Length, 20)), "password length (at least 4)")
	cb := fs.String("clipboard", envOrDefault(env, envClipboard, stringOr(file.Clipboard, clipboard.KindSystem)), "clipboard backend: system or memory")
	verify := fs.String("verify", envOrDefault(env, envVerify, stringOr(file.Verify, "fatal")), "clipboard read-back mismatch handling: fatal or warn")
	tmuxBuffer := fs.Bool("tmux-buffer", envOrBool(env, envTmuxBuffer, boolOr(file.TmuxBuffer, false)), "also copy passwords into a tmux paste buffer")
	bufferName := fs.String("buffer-name", envOrDefault(env, envBufferName, stringOr(file.BufferName, "")), "tmux paste buffer name (default passgen)")
	socket := fs.String("socket", envOrDefault(env, envSocketPath, stringOr(file.Socket, "")), "path to the tmux socket (overrides environment detection)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, boolOr(file.Trace, false)), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, stringOr(file.LogFile, "")), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := Config{
		App: app.Config{
			Length:     *length,
			Clipboard:  strings.ToLower(strings.TrimSpace(*cb)),
			Verify:     strings.ToLower(strings.TrimSpace(*verify)),
			TmuxBuffer: *tmuxBuffer,
			SocketPath: *socket,
			BufferName: *bufferName,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: path,
		Flags: map[string]string{
			"config":     path,
			"length":     strconv.Itoa(*length),
			"clipboard":  *cb,
			"verify":     *verify,
			"tmuxBuffer": strconv.FormatBool(*tmuxBuffer),
			"bufferName": *bufferName,
			"socket":     *socket,
			"trace":      strconv.FormatBool(*trace),
			"logFile":    *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func readFile(path string) (fileConfig, error) {
	var fc fileConfig
	if strings.TrimSpace(path) == "" {
		return fc, nil
	}
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fileConfig{}, fmt.Errorf("read config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return fc, nil
}

// flagValue finds -name/--name in args without a full parse, so the config
// file can seed the defaults of the real flag set.
func flagValue(args []string, name string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return ""
		}
		trimmed := strings.TrimLeft(arg, "-")
		if trimmed == arg || len(arg)-len(trimmed) > 2 {
			continue
		}
		if trimmed == name && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(trimmed, name+"=") {
			return strings.TrimPrefix(trimmed, name+"=")
		}
	}
	return ""
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the configuration can start the window.
func Validate(cfg Config) error {
	var errs []error
	if cfg.App.Length < minLength {
		errs = append(errs, fmt.Errorf("length must be >= %d (got %d)", minLength, cfg.App.Length))
	}
	switch cfg.App.Clipboard {
	case clipboard.KindSystem, clipboard.KindMemory:
	default:
		errs = append(errs, fmt.Errorf("clipboard must be %s or %s (got %q)", clipboard.KindSystem, clipboard.KindMemory, cfg.App.Clipboard))
	}
	if _, err := shell.ParseVerifyMode(cfg.App.Verify); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
