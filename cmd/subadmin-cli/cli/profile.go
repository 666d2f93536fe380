package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Profile keys, also readable from SUBADMIN_<KEY> environment variables.
const (
	keyBackendURL   = "backend_url"
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyEmail        = "email"
)

var errNotLoggedIn = errors.New(`not logged in: run "subadmin-cli login" first`)

// profile is the signed-in state kept between invocations.
type profile struct {
	BackendURL   string `yaml:"backend_url,omitempty"`
	Email        string `yaml:"email,omitempty"`
	AccessToken  string `yaml:"access_token,omitempty"`
	RefreshToken string `yaml:"refresh_token,omitempty"`
}

// profilePath resolves --config, falling back to ~/.subadmin.yaml.
func profilePath() string {
	if cfgFile != "" {
		return cfgFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".subadmin.yaml"
	}
	return filepath.Join(home, ".subadmin.yaml")
}

// currentProfile merges the profile file, the environment and --backend-url.
func currentProfile() profile {
	p := profile{
		BackendURL:   viper.GetString(keyBackendURL),
		Email:        viper.GetString(keyEmail),
		AccessToken:  viper.GetString(keyAccessToken),
		RefreshToken: viper.GetString(keyRefreshToken),
	}
	if backendURL != "" {
		p.BackendURL = backendURL
	}
	if p.BackendURL == "" {
		p.BackendURL = defaultBackendURL
	}
	return p
}

// saveProfile writes p to path readable only by the current user.
func saveProfile(path string, p profile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create profile directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}

// loadProfile reads the profile file at path. A missing file yields an empty profile.
func loadProfile(path string) (profile, error) {
	var p profile
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("decode profile %s: %w", path, err)
	}
	return p, nil
}

func (p profile) token() (string, error) {
	t := strings.TrimSpace(p.AccessToken)
	if t == "" {
		return "", errNotLoggedIn
	}
	return t, nil
}
