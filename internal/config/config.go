// Package config resolves the site root and the fixed paths inside it.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/cardctl/cardctl/internal/git"
)

// Paths inside the site repository. These are a convention of the site
// layout, not of this tool, and must match what the templates read.
const (
	CardsRelPath  = "_data/cards.yml"
	ImagesRelPath = "assets/img"
)

// DefaultPreviewCommand builds and serves the site locally.
const DefaultPreviewCommand = "bundle exec jekyll serve"

// Site holds the resolved site location and preview command. It is
// built once at startup and passed into the front ends explicitly so
// tests can point everything at a temporary directory.
type Site struct {
	Root           string
	PreviewCommand string
}

// userConfig is the optional per-user file at
// $XDG_CONFIG_HOME/cardctl/config.yaml.
type userConfig struct {
	SiteRoot       string `yaml:"site_root"`
	PreviewCommand string `yaml:"preview_command"`
}

// Resolve determines the site root, checking the explicit flag value
// first, then the CARDCTL_SITE_ROOT environment variable, then the user
// config file, then the git repository containing the working
// directory, and finally the working directory itself.
func Resolve(explicit string) Site {
	site := Site{PreviewCommand: DefaultPreviewCommand}

	user := loadUserConfig()
	if user.PreviewCommand != "" {
		site.PreviewCommand = user.PreviewCommand
	}

	switch {
	case explicit != "":
		site.Root = explicit
	case os.Getenv("CARDCTL_SITE_ROOT") != "":
		site.Root = os.Getenv("CARDCTL_SITE_ROOT")
	case user.SiteRoot != "":
		site.Root = user.SiteRoot
	default:
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}
		if root, ok := git.Toplevel(cwd); ok {
			site.Root = root
		} else {
			site.Root = cwd
		}
	}

	return site
}

// CardsFile returns the absolute path of the card file.
func (s Site) CardsFile() string {
	return filepath.Join(s.Root, filepath.FromSlash(CardsRelPath))
}

// ImagesDir returns the absolute path of the image assets directory.
func (s Site) ImagesDir() string {
	return filepath.Join(s.Root, filepath.FromSlash(ImagesRelPath))
}

// AssetsDir returns the absolute path of the site's assets directory.
func (s Site) AssetsDir() string {
	return filepath.Join(s.Root, "assets")
}

// UserConfigPath returns the per-user config file location.
func UserConfigPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, "cardctl", "config.yaml")
}

func loadUserConfig() userConfig {
	var cfg userConfig
	data, err := os.ReadFile(UserConfigPath())
	if err != nil {
		return cfg
	}
	// A malformed user config is ignored rather than fatal; the
	// resolution chain falls through to git detection.
	_ = yaml.Unmarshal(data, &cfg)
	return cfg
}
