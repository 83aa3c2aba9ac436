package render

// RenderOptions describe per-request data renderers can use to customise
// their output without touching editor state.
type RenderOptions struct {
	// Title is shown above the parameter list when set. DefaultTitle is
	// translated through MessageTitle; other titles are shown as given.
	Title string
	// Locale selects the translation passed to Translator.
	Locale string
	// Translator localizes renderer chrome (title, submit label, unsupported
	// placeholder). Parameter names come from the schema and are not
	// translated.
	Translator Translator
	// OnMissing overrides the text used when a translation is missing.
	OnMissing MissingTranslationHandler
}
