package html

import (
	"net/url"

	"github.com/goliatone/go-paramedit/pkg/render"
	"github.com/goliatone/go-paramedit/pkg/widgets"
)

// ApplySubmission replays a posted form into the session. Every rendered
// input whose posted value differs from the current one becomes one edit, in
// schema order. Inputs missing from the submission and parameters without a
// widget are left alone. It returns the number of edits applied.
func ApplySubmission(session render.Session, form url.Values, registry *widgets.Registry) int {
	if session == nil || len(form) == 0 {
		return 0
	}
	applied := 0
	for _, field := range render.Bind(session, registry) {
		if !field.Supported() {
			continue
		}
		posted, ok := form[InputName(field.Param.ID)]
		if !ok || len(posted) == 0 {
			continue
		}
		value := posted[len(posted)-1]
		if value == field.Value {
			continue
		}
		field.OnChange(field.Param.ID, value)
		applied++
	}
	return applied
}
