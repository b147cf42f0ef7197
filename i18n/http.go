package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// LangParam selects a language for one request and persists it
	LangParam = "lang"
	// LangCookieName stores the language preference
	LangCookieName = "pos_lang"
)

// ResolveLocale picks the request locale from the lang query param, then the
// cookie, then Accept-Language, then defaultLocale. The bool reports whether the
// choice came from the query param and should be persisted.
func (c *Catalog) ResolveLocale(r *http.Request, defaultLocale string) (string, bool) {
	if r == nil {
		return c.Translator(defaultLocale).Locale(), false
	}

	if v := strings.TrimSpace(r.URL.Query().Get(LangParam)); v != "" {
		if tag, err := language.Parse(v); err == nil {
			return c.Match(tag).String(), true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, err := language.Parse(cookie.Value); err == nil {
			return c.Match(tag).String(), false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			return c.Match(tags...).String(), false
		}
	}

	return c.Translator(defaultLocale).Locale(), false
}

// SetLanguageCookie persists locale on the response
func SetLanguageCookie(w http.ResponseWriter, locale string) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    locale,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
