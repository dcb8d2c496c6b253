package variables

import "strings"

// Registry is an insertion-ordered variable set that keeps sample or
// user-entered values stable while the author edits. It is used from the
// single editing goroutine and is not safe for concurrent use.
type Registry struct {
	values map[string]string
	sample func(name string) string
	names  []string
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithSampleFunc overrides how default sample values are derived for
// variables that have no user-entered value yet.
func WithSampleFunc(fn func(name string) string) RegistryOption {
	return func(r *Registry) {
		if fn != nil {
			r.sample = fn
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		values: make(map[string]string),
		sample: defaultSample,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Sync replaces the registry's name set with names, preserving order.
// Values for surviving variables are kept, values for removed variables are
// dropped, and new variables receive a default sample value.
func (r *Registry) Sync(names []string) {
	next := make(map[string]string, len(names))
	for _, name := range names {
		if v, ok := r.values[name]; ok {
			next[name] = v
		} else {
			next[name] = r.sample(name)
		}
	}
	r.names = append(r.names[:0:0], names...)
	r.values = next
}

// Set assigns a user-entered value. Unknown names are ignored so stale edit
// events cannot resurrect removed variables.
func (r *Registry) Set(name, value string) {
	if _, ok := r.values[name]; !ok {
		return
	}
	r.values[name] = value
}

// Get returns the current value for name.
func (r *Registry) Get(name string) (string, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Names returns the variable names in first-occurrence order.
func (r *Registry) Names() []string {
	return append(r.names[:0:0], r.names...)
}

// Values returns a copy of the name-value map for substitution.
func (r *Registry) Values() map[string]string {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// defaultSample derives a readable placeholder from a variable name:
// "user_name" becomes "User name".
func defaultSample(name string) string {
	s := strings.ReplaceAll(name, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
