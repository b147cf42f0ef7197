package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// FallbackLocale is consulted when the requested locale lacks a key
const FallbackLocale = "en"

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// Catalog holds flattened messages per locale ("roles.admin" style keys)
type Catalog struct {
	locales  map[string]map[string]string
	tags     []language.Tag
	builder  *catalog.Builder
	matcher  language.Matcher
	fallback string
}

// LoadEmbedded loads the locale files shipped with the binary
func LoadEmbedded() (*Catalog, error) {
	return LoadFromFS(embeddedLocales, "locales")
}

// LoadFromFS loads every <locale>.yaml file found in dir
func LoadFromFS(fsys fs.FS, dir string) (*Catalog, error) {
	paths, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("glob locale files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found in %s", dir)
	}
	sort.Strings(paths)

	c := &Catalog{
		locales:  map[string]map[string]string{},
		builder:  catalog.NewBuilder(catalog.Fallback(language.English)),
		fallback: FallbackLocale,
	}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		locale := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if err := c.add(locale, data); err != nil {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
	}
	if _, ok := c.locales[c.fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %q is not defined", c.fallback)
	}
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

func (c *Catalog) add(locale string, data []byte) error {
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("parse locale tag %q: %w", locale, err)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}
	messages := map[string]string{}
	if err := flatten("", tree, messages); err != nil {
		return err
	}

	for key, value := range messages {
		if err := c.builder.SetString(tag, key, value); err != nil {
			return fmt.Errorf("register %q: %w", key, err)
		}
	}
	c.locales[tag.String()] = messages
	c.tags = append(c.tags, tag)
	return nil
}

func flatten(prefix string, node map[string]any, out map[string]string) error {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case string:
			out[key] = val
		case nil:
			return fmt.Errorf("key %q has no value", key)
		default:
			out[key] = fmt.Sprint(val)
		}
	}
	return nil
}

// Locales returns the loaded locale identifiers, sorted
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.locales))
	for l := range c.locales {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Has reports whether locale defines key, without fallback
func (c *Catalog) Has(locale, key string) bool {
	_, ok := c.locales[locale][key]
	return ok
}

// Match picks the closest supported tag for the requested ones
func (c *Catalog) Match(tags ...language.Tag) language.Tag {
	_, idx, _ := c.matcher.Match(tags...)
	return c.tags[idx]
}

// Translator returns a translator bound to locale. Unknown locales use the fallback.
func (c *Catalog) Translator(locale string) *Translator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(c.fallback)
	}
	tag = c.Match(tag)
	return &Translator{
		catalog: c,
		locale:  tag.String(),
		printer: message.NewPrinter(tag, message.Catalog(c.builder)),
	}
}

func (c *Catalog) lookup(locale, key string) (string, bool) {
	if v, ok := c.locales[locale][key]; ok {
		return v, true
	}
	if v, ok := c.locales[c.fallback][key]; ok {
		return v, true
	}
	return "", false
}

// Translator resolves keys for one locale, falling back to English
type Translator struct {
	catalog *Catalog
	locale  string
	printer *message.Printer
}

// Locale is the locale this translator resolves against
func (t *Translator) Locale() string { return t.locale }

// Translate returns the message for key, or defaultValue when no locale defines it
func (t *Translator) Translate(key, defaultValue string) string {
	if v, ok := t.catalog.lookup(t.locale, key); ok {
		return v
	}
	return defaultValue
}

// T is Translate with the key itself as default
func (t *Translator) T(key string) string {
	return t.Translate(key, key)
}

// Sprintf formats the message registered under key with args
func (t *Translator) Sprintf(key string, args ...any) string {
	if _, ok := t.catalog.lookup(t.locale, key); !ok {
		return key
	}
	return t.printer.Sprintf(key, args...)
}
