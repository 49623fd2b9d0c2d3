// Package config resolves syntinct settings from defaults, the user file
// (~/.syntinct/config.yaml), the nearest project .syntinct/config.yaml,
// SYN_* environment variables and command-line overrides, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	appErrors "syntinct/internal/errors"
)

const (
	KeyTheme           = "theme"
	KeyOutputPath      = "output.path"
	KeyOutputDir       = "output.dir"
	KeyOutputClipboard = "output.clipboard"
	KeySupportPath     = "support.path"
	KeyDescribeFormat  = "describe.format"
	KeyExportFormat    = "export.format"
	KeyDebug           = "debug"
)

const (
	// DefaultOutputDir is where build writes one module per theme.
	DefaultOutputDir = "colors"
	envPrefix        = "SYN"
	configDirName    = ".syntinct"
)

type initSettings struct {
	workingDir        string
	projectConfigPath string
	userConfigPath    string
}

// Option configures Initialize.
type Option func(*initSettings)

// WithWorkingDir sets where the search for a project file starts.
func WithWorkingDir(dir string) Option {
	return func(cfg *initSettings) {
		cfg.workingDir = dir
	}
}

// WithProjectConfig skips discovery and merges path as the project file.
func WithProjectConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.projectConfigPath = path
	}
}

// WithUserConfig replaces ~/.syntinct/config.yaml.
func WithUserConfig(path string) Option {
	return func(cfg *initSettings) {
		cfg.userConfigPath = path
	}
}

var (
	configOnce sync.Once
	configMu   sync.RWMutex
	configInst *viper.Viper
	initErr    error

	// Files merged by the last Initialize. SaveTheme writes back to one.
	userFile    string
	projectFile string
)

// Initialize loads the configuration once per process.
func Initialize(opts ...Option) error {
	configOnce.Do(func() {
		settings := initSettings{}
		for _, opt := range opts {
			opt(&settings)
		}
		initErr = configure(&settings)
	})
	return initErr
}

// ApplyOverrides layers flag values above every other source.
func ApplyOverrides(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configInst == nil {
		return fmt.Errorf("configuration not initialized")
	}
	for k, v := range overrides {
		configInst.Set(k, v)
	}
	return nil
}

// GetString returns the resolved value of key, or "" if loading failed.
func GetString(key string) string {
	v, err := getViper()
	if err != nil {
		return ""
	}
	return v.GetString(key)
}

// GetBool returns the resolved value of key, or false if loading failed.
func GetBool(key string) bool {
	v, err := getViper()
	if err != nil {
		return false
	}
	return v.GetBool(key)
}

// Set overrides key for the rest of the process.
func Set(key string, value any) error {
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()
	if configInst == nil {
		return fmt.Errorf("configuration not initialized")
	}
	configInst.Set(key, value)
	return nil
}

func configure(settings *initSettings) error {
	workingDir := strings.TrimSpace(settings.workingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	userConfigPath := strings.TrimSpace(settings.userConfigPath)
	if userConfigPath == "" {
		path, err := defaultUserConfigPath()
		if err != nil {
			return err
		}
		userConfigPath = path
	}

	projectConfigPath := strings.TrimSpace(settings.projectConfigPath)
	if projectConfigPath == "" {
		path, err := findProjectConfig(workingDir)
		if err != nil {
			return err
		}
		projectConfigPath = path
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := mergeConfigFile(v, userConfigPath); err != nil {
		return appErrors.New(appErrors.CodeConfigurationError, "load user config", err)
	}
	if err := mergeConfigFile(v, projectConfigPath); err != nil {
		return appErrors.New(appErrors.CodeConfigurationError, "load project config", err)
	}

	configMu.Lock()
	defer configMu.Unlock()
	configInst = v
	userFile = userConfigPath
	projectFile = projectConfigPath
	return nil
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	//nolint:gosec // G304: only the resolved user and project files are read
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, configDirName, "config.yaml"), nil
}

func findProjectConfig(startDir string) (string, error) {
	if strings.TrimSpace(startDir) == "" {
		return "", nil
	}
	dir := startDir
	for {
		candidate := filepath.Join(dir, configDirName, "config.yaml")
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %s is a directory", candidate)
			}
			return candidate, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyTheme, "syntark")
	v.SetDefault(KeyOutputPath, "")
	v.SetDefault(KeyOutputDir, DefaultOutputDir)
	v.SetDefault(KeyOutputClipboard, false)
	v.SetDefault(KeySupportPath, "")
	v.SetDefault(KeyDescribeFormat, "rich")
	v.SetDefault(KeyExportFormat, "json")
	v.SetDefault(KeyDebug, false)
}

func getViper() (*viper.Viper, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	configMu.RLock()
	defer configMu.RUnlock()
	if configInst == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return configInst, nil
}

func reset() {
	configMu.Lock()
	defer configMu.Unlock()
	configInst = nil
	initErr = nil
	configOnce = sync.Once{}
	userFile = ""
	projectFile = ""
}

// ResetForTesting points the configuration at an empty temporary home and
// returns the cleanup that clears it again.
func ResetForTesting(t interface{ TempDir() string }) func() {
	reset()
	tmp := t.TempDir()
	_ = Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "config.yaml")))
	return reset
}

// SaveTheme makes name the default theme. The project file wins when one
// was found, otherwise the user file is written; other keys are kept.
func SaveTheme(name string) error {
	if err := Initialize(); err != nil {
		return err
	}
	configMu.Lock()
	defer configMu.Unlock()

	target := projectFile
	if target == "" {
		target = userFile
	}
	if target == "" {
		return appErrors.New(appErrors.CodeConfigurationError, "save theme", errors.New("no config file resolved"))
	}

	file := viper.New()
	file.SetConfigType("yaml")
	if err := mergeConfigFile(file, target); err != nil {
		return appErrors.New(appErrors.CodeConfigurationError, "save theme", err)
	}
	file.Set(KeyTheme, name)

	//nolint:gosec // G301: ~/.syntinct uses standard directory permissions
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return appErrors.New(appErrors.CodeConfigurationError, "save theme", err)
	}
	if err := file.WriteConfigAs(target); err != nil {
		return appErrors.New(appErrors.CodeConfigurationError, "save theme", err)
	}
	if configInst != nil {
		configInst.Set(KeyTheme, name)
	}
	return nil
}
