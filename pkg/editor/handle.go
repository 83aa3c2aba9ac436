package editor

import "github.com/goliatone/go-paramedit/pkg/param"

// Handle is the capability set a host keeps after handing the editor to a
// rendering collaborator: read the model, submit an edit. Nothing else of the
// editor is reachable through it.
type Handle struct {
	get    func() param.Model
	submit func(id int, value string)
}

// Handle returns an accessor bound to e.
func (e *Editor) Handle() Handle {
	return Handle{
		get:    e.GetModel,
		submit: e.HandleEdit,
	}
}

// GetModel returns the editor's current model. A zero Handle returns an empty
// model.
func (h Handle) GetModel() param.Model {
	if h.get == nil {
		var e *Editor
		return e.GetModel()
	}
	return h.get()
}

// Submit forwards an edit. A zero Handle drops it.
func (h Handle) Submit(id int, value string) {
	if h.submit == nil {
		return
	}
	h.submit(id, value)
}
