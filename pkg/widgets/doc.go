// Package widgets maps parameter type tags to the widget a renderer should
// draw. The table is closed by default (only string parameters resolve) and
// open for extension through Register; anything left unmatched degrades to
// the Unsupported placeholder instead of failing the editor.
package widgets
