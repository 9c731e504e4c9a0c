// Package i18n holds the user-facing strings of the interactive dialogue.
package i18n

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"herald/internal/channel"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the string table for one language.
type Catalog struct {
	Tag              language.Tag      `yaml:"-"`
	Menu             string            `yaml:"menu"`
	Prompt           string            `yaml:"prompt"`
	InvalidSelection string            `yaml:"invalid_selection"`
	Sent             map[string]string `yaml:"sent"`
}

// SentLabel is the prefix a sender writes before the message.
func (c Catalog) SentLabel(ch channel.Channel) string {
	if label, ok := c.Sent[ch.Key()]; ok {
		return label
	}
	return "Sent via " + ch.String()
}

// Bundle is the set of catalogs embedded in the binary. The first supported
// tag is the fallback.
type Bundle struct {
	supported []language.Tag
	catalogs  []Catalog
	matcher   language.Matcher
}

var supportedOrder = []language.Tag{language.English, language.Russian}

// Load decodes the embedded catalogs.
func Load() (*Bundle, error) {
	return parse(catalogYAML)
}

func parse(raw []byte) (*Bundle, error) {
	var file map[string]Catalog
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse catalog failed: %w", err)
	}
	b := &Bundle{}
	for _, tag := range supportedOrder {
		cat, ok := file[tag.String()]
		if !ok {
			return nil, fmt.Errorf("catalog missing language %s", tag)
		}
		if err := cat.validate(); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", tag, err)
		}
		cat.Tag = tag
		b.supported = append(b.supported, tag)
		b.catalogs = append(b.catalogs, cat)
	}
	b.matcher = language.NewMatcher(b.supported)
	return b, nil
}

func (c Catalog) validate() error {
	if strings.TrimSpace(c.Menu) == "" {
		return fmt.Errorf("menu is empty")
	}
	if strings.TrimSpace(c.Prompt) == "" {
		return fmt.Errorf("prompt is empty")
	}
	if strings.TrimSpace(c.InvalidSelection) == "" {
		return fmt.Errorf("invalid_selection is empty")
	}
	for _, ch := range channel.All() {
		if strings.TrimSpace(c.Sent[ch.Key()]) == "" {
			return fmt.Errorf("sent.%s is empty", ch.Key())
		}
	}
	return nil
}

// Lookup returns the closest catalog for lang; unknown or malformed tags get
// English.
func (b *Bundle) Lookup(lang string) Catalog {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return b.catalogs[0]
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return b.catalogs[0]
	}
	_, idx, conf := b.matcher.Match(tag)
	if conf == language.No {
		return b.catalogs[0]
	}
	return b.catalogs[idx]
}
