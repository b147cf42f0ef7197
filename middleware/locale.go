package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"

	"restaurant-pos/i18n"
)

const translatorKey = "translator"

// Locale resolves the request language and stores a translator for handlers
func Locale(catalog *i18n.Catalog, defaultLocale string) gin.HandlerFunc {
	fallback := catalog.Translator(defaultLocale)
	return func(c *gin.Context) {
		locale, persist := catalog.ResolveLocale(c.Request, defaultLocale)
		if persist {
			i18n.SetLanguageCookie(c.Writer, locale)
		}
		tr := fallback
		if locale != fallback.Locale() {
			tr = catalog.Translator(locale)
		}
		c.Set(translatorKey, tr)
		c.Header("Content-Language", tr.Locale())
		c.Next()
	}
}

// Translator returns the request translator set by Locale
func Translator(c *gin.Context) *i18n.Translator {
	if v, ok := c.Get(translatorKey); ok {
		if tr, ok := v.(*i18n.Translator); ok {
			return tr
		}
	}
	return defaultTranslator()
}

var defaultTranslator = sync.OnceValue(func() *i18n.Translator {
	catalog, err := i18n.LoadEmbedded()
	if err != nil {
		panic("load embedded locales: " + err.Error())
	}
	return catalog.Translator(i18n.FallbackLocale)
})
