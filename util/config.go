package util

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/nasermirzaei89/env"
	"gopkg.in/yaml.v3"
)

const (
	Name           = "chatsview"
	ConfigFileName = "config.yaml"
	envPrefix      = "CHATSVIEW_"
)

type AppConfig struct {
	Conf struct {
		Host                  string  `yaml:"host"`
		SshPort               int     `yaml:"sshPort"`
		HttpPort              int     `yaml:"httpPort"`
		ApiBaseUrl            string  `yaml:"apiBaseUrl"`
		WebBaseUrl            string  `yaml:"webBaseUrl"`
		AccessToken           string  `yaml:"accessToken" json:"-"`
		RequestTimeoutSeconds int     `yaml:"requestTimeoutSeconds"`
		RequestsPerSecond     float64 `yaml:"requestsPerSecond"`
		DisplayOffsetHours    int     `yaml:"displayOffsetHours"`
		DefaultPostId         int64   `yaml:"defaultPostId"`
		WithJournald          bool    `yaml:"withJournald"`
		WithDevServer         bool    `yaml:"withDevServer"`
		DevServerDsn          string  `yaml:"devServerDsn"`
	} `yaml:"conf"`
}

// DefaultConf returns the configuration used when nothing else is set
func DefaultConf() *AppConfig {
	c := &AppConfig{}
	c.Conf.Host = "127.0.0.1"
	c.Conf.SshPort = 23235
	c.Conf.HttpPort = 9999
	c.Conf.ApiBaseUrl = "http://localhost:9999"
	c.Conf.WebBaseUrl = "http://localhost:3000"
	c.Conf.RequestTimeoutSeconds = 10
	c.Conf.RequestsPerSecond = 10
	c.Conf.DisplayOffsetHours = DefaultDisplayOffsetHours
	c.Conf.DefaultPostId = 1
	c.Conf.DevServerDsn = "file::memory:?cache=shared"
	return c
}

// ReadConf layers defaults, config.yaml, .env and the environment, in that order
func ReadConf() (*AppConfig, error) {
	c := DefaultConf()

	path := ResolveFilePath(ConfigFileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not load .env: %v", err)
	}

	if err := applyEnv(c); err != nil {
		return nil, err
	}

	return c, nil
}

func applyEnv(c *AppConfig) error {
	c.Conf.Host = env.GetString(envPrefix+"HOST", c.Conf.Host)
	// the forum web client reads its API host from this variable
	c.Conf.ApiBaseUrl = env.GetString("REACT_APP_DB_HOST", c.Conf.ApiBaseUrl)
	c.Conf.ApiBaseUrl = strings.TrimRight(env.GetString(envPrefix+"API_BASE_URL", c.Conf.ApiBaseUrl), "/")
	c.Conf.WebBaseUrl = strings.TrimRight(env.GetString(envPrefix+"WEB_BASE_URL", c.Conf.WebBaseUrl), "/")
	c.Conf.AccessToken = env.GetString(envPrefix+"ACCESS_TOKEN", c.Conf.AccessToken)
	c.Conf.DevServerDsn = env.GetString(envPrefix+"DEV_SERVER_DSN", c.Conf.DevServerDsn)
	c.Conf.WithJournald = env.GetBool(envPrefix+"WITH_JOURNALD", c.Conf.WithJournald)
	c.Conf.WithDevServer = env.GetBool(envPrefix+"WITH_DEV_SERVER", c.Conf.WithDevServer)

	ints := []struct {
		name string
		dst  *int
	}{
		{"SSH_PORT", &c.Conf.SshPort},
		{"HTTP_PORT", &c.Conf.HttpPort},
		{"REQUEST_TIMEOUT_SECONDS", &c.Conf.RequestTimeoutSeconds},
		{"DISPLAY_OFFSET_HOURS", &c.Conf.DisplayOffsetHours},
	}
	for _, i := range ints {
		raw := env.GetString(envPrefix+i.name, "")
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", envPrefix, i.name, err)
		}
		*i.dst = v
	}

	if raw := env.GetString(envPrefix+"REQUESTS_PER_SECOND", ""); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid %sREQUESTS_PER_SECOND: %w", envPrefix, err)
		}
		c.Conf.RequestsPerSecond = v
	}

	if raw := env.GetString(envPrefix+"DEFAULT_POST_ID", ""); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %sDEFAULT_POST_ID: %w", envPrefix, err)
		}
		c.Conf.DefaultPostId = v
	}

	return nil
}

// ResolveFilePath returns name in the working directory if it exists there,
// otherwise the same name under ~/.config/chatsview
func ResolveFilePath(name string) string {
	return ResolveFilePathWithSubdir("", name)
}

func ResolveFilePathWithSubdir(subdir, name string) string {
	local := filepath.Join(subdir, name)
	if _, err := os.Stat(local); err == nil {
		return local
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return local
	}
	return filepath.Join(home, ".config", Name, subdir, name)
}
