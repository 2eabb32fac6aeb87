// Package messages resolves the default, localized message attached to an
// API envelope when the caller gives none.
package messages

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

var (
	ErrEmptyCatalog   = errors.New("message catalog has no locales")
	ErrInvalidLocale  = errors.New("invalid catalog locale")
	ErrUnknownDefault = errors.New("default locale is not in catalog")
)

type localeFile struct {
	HTTP map[int]string `yaml:"http"`
}

// Bundle is an immutable set of per-locale status messages.
type Bundle struct {
	tags    []language.Tag
	tables  []map[int]string
	matcher language.Matcher
}

// Default returns the built-in English/Italian catalog.
func Default(defaultLocale string) (*Bundle, error) {
	return Parse(defaultCatalog, defaultLocale)
}

// Load reads a YAML catalog from path.
func Load(path string, defaultLocale string) (*Bundle, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("message catalog path is empty")
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read message catalog: %w", err)
	}
	return Parse(data, defaultLocale)
}

// Parse decodes a YAML catalog:
//
//	en:
//	  http:
//	    404: "Resource not found"
func Parse(data []byte, defaultLocale string) (*Bundle, error) {
	var raw map[string]localeFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse message catalog: %w", err)
	}
	tables := make(map[string]map[int]string, len(raw))
	for locale, file := range raw {
		tables[locale] = file.HTTP
	}
	return NewBundle(tables, defaultLocale)
}

// NewBundle builds a bundle from per-locale tables. defaultLocale answers
// requests no other locale matches; empty means "en".
func NewBundle(tables map[string]map[int]string, defaultLocale string) (*Bundle, error) {
	if len(tables) == 0 {
		return nil, ErrEmptyCatalog
	}
	if strings.TrimSpace(defaultLocale) == "" {
		defaultLocale = "en"
	}
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, defaultLocale)
	}

	locales := make([]string, 0, len(tables))
	for locale := range tables {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	b := &Bundle{}
	fallbackIndex := -1
	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, locale)
		}
		if tag == fallback {
			fallbackIndex = len(b.tags)
		}
		table := make(map[int]string, len(tables[locale]))
		for code, message := range tables[locale] {
			table[code] = message
		}
		b.tags = append(b.tags, tag)
		b.tables = append(b.tables, table)
	}
	if fallbackIndex < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDefault, defaultLocale)
	}

	// The matcher answers with its first tag when nothing matches.
	b.tags[0], b.tags[fallbackIndex] = b.tags[fallbackIndex], b.tags[0]
	b.tables[0], b.tables[fallbackIndex] = b.tables[fallbackIndex], b.tables[0]
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

// Message returns the message for code in the locale best matching
// acceptLanguage (an Accept-Language value or a bare tag). It falls back to
// the default locale, then to "".
func (b *Bundle) Message(acceptLanguage string, code int) string {
	if b == nil || len(b.tables) == 0 {
		return ""
	}
	index := b.match(acceptLanguage)
	if message := b.tables[index][code]; message != "" {
		return message
	}
	return b.tables[0][code]
}

// Locales lists the catalog locales, default first.
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.tags))
	for _, tag := range b.tags {
		out = append(out, tag.String())
	}
	return out
}

func (b *Bundle) match(acceptLanguage string) int {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return 0
	}
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return 0
	}
	_, index, confidence := b.matcher.Match(desired...)
	if confidence == language.No {
		return 0
	}
	return index
}
