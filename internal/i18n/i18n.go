// Copyright (c) 2025 ToeiRei
// pwstrength - password strength checker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n provides translations for the user-facing text of pwstrength.
// It uses the go-i18n library to load embedded YAML message files. Only UI
// chrome and requirement descriptions are translated; the character classes
// checked by the scorer never depend on the active language.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
)

// Init initializes the bundle and sets up the localizer for lang.
// Unknown languages fall back to English.
func Init(lang string) {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile(path.Join("locales", f.Name()))
		if err != nil {
			continue
		}
		_, _ = b.ParseMessageFileBytes(data, f.Name())
	}

	if lang == "" {
		lang = "en"
	}

	mu.Lock()
	bundle = b
	localizer = i18n.NewLocalizer(b, lang)
	current = lang
	mu.Unlock()
}

// GetLang returns the language passed to the last Init call.
func GetLang() string {
	ensure()
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func ensure() {
	mu.RLock()
	ready := localizer != nil
	mu.RUnlock()
	if !ready {
		Init("en")
	}
}

// T translates messageID. A single map argument is passed as template data;
// any other arguments are applied with fmt.Sprintf to the translated text.
// If the message ID is unknown, the ID itself is returned.
func T(messageID string, args ...any) string {
	msg, ok := localize(messageID, args...)
	if !ok {
		return messageID
	}
	return msg
}

// TOr is like T but returns fallback, unformatted, when messageID has no
// translation.
func TOr(messageID, fallback string, args ...any) string {
	msg, ok := localize(messageID, args...)
	if !ok {
		return fallback
	}
	return msg
}

func localize(messageID string, args ...any) (string, bool) {
	ensure()
	mu.RLock()
	l := localizer
	mu.RUnlock()

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}
	msg, err := l.Localize(cfg)
	if err != nil {
		return "", false
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return msg, true
}

// GetAvailableLocales returns the embedded locales keyed by language tag,
// with each language's self-describing display name as value.
func GetAvailableLocales() map[string]string {
	out := map[string]string{}
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		name := strings.TrimSuffix(f.Name(), path.Ext(f.Name()))
		tag, err := language.Parse(name)
		if err != nil {
			out[name] = name
			continue
		}
		out[name] = display.Self.Name(tag)
	}
	return out
}

// IsAvailable reports whether lang names one of the embedded locales.
func IsAvailable(lang string) bool {
	_, ok := GetAvailableLocales()[lang]
	return ok
}

// LocaleTags returns the sorted tags of the embedded locales.
func LocaleTags() []string {
	av := GetAvailableLocales()
	tags := make([]string, 0, len(av))
	for k := range av {
		tags = append(tags, k)
	}
	sort.Strings(tags)
	return tags
}
