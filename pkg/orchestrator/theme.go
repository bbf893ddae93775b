package orchestrator

import (
	"errors"
	"fmt"
	"maps"
	"path"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ErrThemeNotFound is returned by the static selector for unknown names.
var ErrThemeNotFound = errors.New("orchestrator: theme not found")

// rendererConfig flattens a selection into renderer configuration. Variant
// tokens and asset files override the manifest defaults; every token is
// also exposed as a CSS custom property.
func rendererConfig(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil {
		return nil
	}

	tokens := map[string]string{}
	files := map[string]string{}
	prefix := ""
	if manifest := selection.Manifest; manifest != nil {
		maps.Copy(tokens, manifest.Tokens)
		maps.Copy(files, manifest.Assets.Files)
		prefix = manifest.Assets.Prefix
		if variant, ok := manifest.Variants[selection.Variant]; ok {
			maps.Copy(tokens, variant.Tokens)
			maps.Copy(files, variant.Assets.Files)
			if variant.Assets.Prefix != "" {
				prefix = variant.Assets.Prefix
			}
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+strings.TrimPrefix(key, "--")] = value
	}

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: assetResolver(prefix, files),
	}
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if prefix == "" || strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
			return file
		}
		return path.Join(prefix, file)
	}
}

// StaticTheme is a theme selector over a fixed set of manifests. An empty
// name selects the first manifest; an unknown variant is rejected when the
// manifest declares variants.
type StaticTheme struct {
	manifests []*theme.Manifest
}

var _ theme.ThemeSelector = (*StaticTheme)(nil)

// NewStaticTheme builds a selector over manifests, ignoring nil entries.
func NewStaticTheme(manifests ...*theme.Manifest) *StaticTheme {
	s := &StaticTheme{}
	for _, manifest := range manifests {
		if manifest != nil {
			s.manifests = append(s.manifests, manifest)
		}
	}
	return s
}

// Select implements theme.ThemeSelector.
func (s *StaticTheme) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if len(s.manifests) == 0 {
		return nil, fmt.Errorf("%w: no themes configured", ErrThemeNotFound)
	}
	manifest := s.manifests[0]
	if name != "" {
		manifest = nil
		for _, candidate := range s.manifests {
			if candidate.Name == name {
				manifest = candidate
				break
			}
		}
		if manifest == nil {
			return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
		}
	}
	if variant != "" && len(manifest.Variants) > 0 {
		if _, ok := manifest.Variants[variant]; !ok {
			known := make([]string, 0, len(manifest.Variants))
			for key := range manifest.Variants {
				known = append(known, key)
			}
			sort.Strings(known)
			return nil, fmt.Errorf("orchestrator: theme %q has no variant %q (known: %s)", manifest.Name, variant, strings.Join(known, ", "))
		}
	}
	return &theme.Selection{Theme: manifest.Name, Variant: variant, Manifest: manifest}, nil
}
