package cli

import (
	"fmt"
	"os"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// themeFile is the on-disk manifest accepted by --theme-file:
//
//	name: acme
//	tokens:
//	  primary: "#2563eb"
//	assets:
//	  prefix: /static/acme
//	  files:
//	    html.stylesheet: theme.css
//	variants:
//	  dark:
//	    tokens:
//	      background: "#0b0b0b"
type themeFile struct {
	Name     string                  `yaml:"name"`
	Version  string                  `yaml:"version"`
	Tokens   map[string]string       `yaml:"tokens"`
	Assets   themeAssets             `yaml:"assets"`
	Variants map[string]themeVariant `yaml:"variants"`
}

type themeAssets struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

type themeVariant struct {
	Tokens map[string]string `yaml:"tokens"`
	Assets themeAssets       `yaml:"assets"`
}

func loadThemeFile(path string) (*theme.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme file: %w", err)
	}
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse theme file %s: %w", path, err)
	}
	if file.Name == "" {
		return nil, fmt.Errorf("theme file %s: name is required", path)
	}

	manifest := &theme.Manifest{
		Name:    file.Name,
		Version: file.Version,
		Tokens:  file.Tokens,
		Assets:  theme.Assets{Prefix: file.Assets.Prefix, Files: file.Assets.Files},
	}
	if len(file.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(file.Variants))
		for name, variant := range file.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens: variant.Tokens,
				Assets: theme.Assets{Prefix: variant.Assets.Prefix, Files: variant.Assets.Files},
			}
		}
	}
	return manifest, nil
}
