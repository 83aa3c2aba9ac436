package widgets

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-paramedit/pkg/param"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetTextInput = "text-input"
)

// Matcher decides whether a widget should handle the supplied parameter.
type Matcher func(p param.Parameter) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for parameters based on registered matchers.
// Higher priority wins; ties fall back to registration order. A parameter no
// rule matches resolves to nothing and renderers show the Unsupported
// placeholder for it.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in widget matchers
// registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a parameter.
func (r *Registry) Resolve(p param.Parameter) (string, bool) {
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(p) {
			return entry.name, true
		}
	}
	return "", false
}

// Names lists the registered widget names in resolution order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	names := make([]string, 0, len(rules))
	for _, entry := range rules {
		names = append(names, entry.name)
	}
	return names
}

// Unsupported returns the placeholder text shown in place of an input for a
// type no widget handles.
func Unsupported(t param.Type) string {
	return fmt.Sprintf("Unsupported param type: %s", t)
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetTextInput, 50, func(p param.Parameter) bool {
		return p.Type == param.TypeString
	})
}
