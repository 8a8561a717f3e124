// internal/i18n/i18n.go
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"
)

//go:embed locales/*.json
var bundled embed.FS

// I18n is read-only once built.
type I18n struct {
	translations map[string]map[string]string
	defaultLang  string
}

var instance *I18n
var once sync.Once

// Initialize loads the process-wide translations once. An empty localesPath uses the
// locale files compiled into the binary.
func Initialize(localesPath, defaultLang string) error {
	var err error
	once.Do(func() {
		var fsys fs.FS
		if localesPath == "" {
			fsys, err = fs.Sub(bundled, "locales")
			if err != nil {
				return
			}
		} else {
			fsys = os.DirFS(localesPath)
		}
		instance, err = New(fsys, defaultLang)
	})
	return err
}

// New reads every <lang>.json file at the root of fsys.
func New(fsys fs.FS, defaultLang string) (*I18n, error) {
	if defaultLang == "" {
		defaultLang = "en"
	}

	files, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, err
	}

	i := &I18n{
		translations: make(map[string]map[string]string, len(files)),
		defaultLang:  defaultLang,
	}
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var messages map[string]string
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("failed to unmarshal locale file %s: %w", file, err)
		}
		i.translations[strings.TrimSuffix(file, ".json")] = messages
	}

	if _, ok := i.translations[defaultLang]; !ok {
		return nil, fmt.Errorf("no locale file for default language %q", defaultLang)
	}
	return i, nil
}

// T translates key into lang, falling back to the default language and then to the key itself.
func (i *I18n) T(lang, key string, args ...interface{}) string {
	text, ok := i.translations[lang][key]
	if !ok {
		text, ok = i.translations[i.defaultLang][key]
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}

// Languages lists the loaded languages in sorted order.
func (i *I18n) Languages() []string {
	langs := make([]string, 0, len(i.translations))
	for lang := range i.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// MissingKeys returns, per language, the keys the default language has and it lacks.
func (i *I18n) MissingKeys() map[string][]string {
	missing := make(map[string][]string)
	for lang, messages := range i.translations {
		if lang == i.defaultLang {
			continue
		}
		for key := range i.translations[i.defaultLang] {
			if _, ok := messages[key]; !ok {
				missing[lang] = append(missing[lang], key)
			}
		}
		sort.Strings(missing[lang])
	}
	return missing
}

// Global functions
func T(lang, key string, args ...interface{}) string {
	if instance != nil {
		return instance.T(lang, key, args...)
	}
	return key
}

func GetSupportedLanguages() []string {
	if instance == nil {
		return []string{"en"}
	}
	return instance.Languages()
}
