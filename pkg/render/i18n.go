package render

import (
	"errors"
	"fmt"
	"strings"
)

// Message keys for the strings renderers draw around the parameters.
const (
	MessageTitle       = "paramedit.title"
	MessageSubmit      = "paramedit.submit"
	MessageUnsupported = "paramedit.unsupported"
	MessageReview      = "paramedit.review"
)

// DefaultTitle is the built-in title. Only this title is looked up under
// MessageTitle; any other title is the host's own text and shown as given.
const DefaultTitle = "Parameter editor"

// ErrMissingTranslator is passed to the missing-translation handler when no
// Translator is configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for a locale. Args are message
// parameters (for MessageUnsupported, the parameter type).
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides what to show when a key cannot be
// translated. fallback is the built-in English text.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

// Translate resolves key using the options' translator, falling back to the
// supplied English text. Translation never fails a render.
func (o RenderOptions) Translate(key, fallback string, args ...any) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}
	onMissing := o.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	if o.Translator == nil {
		return onMissing(o.Locale, key, fallback, ErrMissingTranslator)
	}
	msg, err := o.Translator.Translate(o.Locale, key, args...)
	if err != nil || strings.TrimSpace(msg) == "" {
		return onMissing(o.Locale, key, fallback, err)
	}
	return msg
}

// TitleText returns the title to show, or "" when no title is set. The
// default title is translated; a custom one is returned unchanged.
func (o RenderOptions) TitleText() string {
	title := strings.TrimSpace(o.Title)
	if title != DefaultTitle {
		return title
	}
	return o.Translate(MessageTitle, title)
}

// UnsupportedText returns the placeholder shown for a field without a widget.
func (o RenderOptions) UnsupportedText(field BoundField) string {
	return o.Translate(MessageUnsupported, field.Fallback, string(field.Param.Type))
}

func missingTranslationDefault(_ string, key, fallback string, _ error) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

// MapTranslator is a Translator backed by locale → key → format string. The
// format is applied to the message args with fmt.Sprintf.
type MapTranslator map[string]map[string]string

// Translate implements Translator.
func (m MapTranslator) Translate(locale, key string, args ...any) (string, error) {
	messages, ok := m[locale]
	if !ok {
		return "", fmt.Errorf("render: locale %q not found", locale)
	}
	format, ok := messages[key]
	if !ok {
		return "", fmt.Errorf("render: key %q not found for locale %q", key, locale)
	}
	if len(args) == 0 {
		return format, nil
	}
	return fmt.Sprintf(format, args...), nil
}
