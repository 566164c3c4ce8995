package i18n

import (
	"encoding/json"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	mu     sync.RWMutex
	bundle *goi18n.Bundle
)

// Init sets up the translation bundle with English as the fallback language.
// Call once at startup before Load.
func Init() {
	mu.Lock()
	defer mu.Unlock()
	bundle = goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
}

// Load reads one locale message file (active.<lang>.json) into the bundle.
func Load(path string) error {
	mu.Lock()
	defer mu.Unlock()
	_, err := bundle.LoadMessageFile(path)
	return err
}

// Localize renders messageID for the given language tags (usually the parsed
// Accept-Language header). Falls back to the message ID itself when the
// bundle has no translation, so a missing key never breaks the response.
func Localize(messageID string, data map[string]interface{}, langs ...string) string {
	mu.RLock()
	b := bundle
	mu.RUnlock()
	if b == nil {
		return messageID
	}

	localizer := goi18n.NewLocalizer(b, langs...)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return msg
}
