package i18n

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Bundle is the static per-language content table.
type Bundle struct {
	dict      map[string]map[string]string
	heroes    map[string]Hero
	fallback  string
	supported map[string]struct{}
}

// Hero is the structured hero section content for one language.
type Hero struct {
	Title HeroTitle
	Body  template.HTML
}

// HeroTitle splits the hero heading so the name can be emphasised without raw markup.
type HeroTitle struct {
	Before string `yaml:"before"`
	Name   string `yaml:"name"`
	After  string `yaml:"after"`
}

type localeFile struct {
	Strings map[string]string `yaml:"strings"`
	Hero    struct {
		Title HeroTitle `yaml:"title"`
		Body  string    `yaml:"body"`
	} `yaml:"hero"`
}

// Load reads <dir>/<lang>.yaml for every supported language. Only the
// fallback locale is required to exist.
func Load(dir string, fallback string, supported []string) (*Bundle, error) {
	b := &Bundle{
		dict:      map[string]map[string]string{},
		heroes:    map[string]Hero{},
		fallback:  fallback,
		supported: map[string]struct{}{},
	}
	if len(supported) == 0 {
		supported = []string{"fa", "en"}
	}
	for _, l := range supported {
		b.supported[l] = struct{}{}
		path := filepath.Join(dir, l+".yaml")
		raw, err := os.ReadFile(path)
		if err != nil {
			// allow missing file for non-default locales
			if l == fallback {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		var f localeFile
		if err := yaml.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		body, err := renderBody(f.Hero.Body)
		if err != nil {
			return nil, fmt.Errorf("render hero body %s: %w", l, err)
		}
		if f.Strings == nil {
			f.Strings = map[string]string{}
		}
		b.dict[l] = f.Strings
		b.heroes[l] = Hero{Title: f.Hero.Title, Body: body}
	}
	if _, ok := b.dict[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}
	return b, nil
}

// Supported lists the configured language codes in sorted order.
func (b *Bundle) Supported() []string {
	out := make([]string, 0, len(b.supported))
	for k := range b.supported {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// T returns translation for key in lang, falling back to default and finally key.
func (b *Bundle) T(lang, key string) string {
	if lang != "" {
		if m, ok := b.dict[lang]; ok {
			if v, ok := m[key]; ok {
				return v
			}
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// Hero returns the hero content for lang, or the fallback locale's.
func (b *Bundle) Hero(lang string) Hero {
	if h, ok := b.heroes[lang]; ok {
		return h
	}
	return b.heroes[b.fallback]
}
