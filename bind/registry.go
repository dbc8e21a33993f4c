package bind

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/lualink/luabind"
	"github.com/lualink/luabind/errors"
)

// Module is the interface for struct-based function modules. All exported
// methods (except Namespace) are wrapped and registered as callable
// functions.
type Module interface {
	// Namespace returns the name the module's functions are grouped under,
	// e.g. "vec" for vec.add, vec.scale. Empty means top level.
	Namespace() string
}

// ExplicitRegistrar lets a module provide exact callable names when the
// automatic snake_case conversion doesn't apply.
type ExplicitRegistrar interface {
	Register() map[string]luabind.GoFunc
}

// Registry accumulates trampolines under namespace/name pairs and binds them
// to a runtime in one pass. Safe for concurrent registration.
type Registry struct {
	funcs map[string]map[string]luabind.GoFunc
	mu    sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		funcs: make(map[string]map[string]luabind.GoFunc),
	}
}

// RegisterFunc records an already-built trampoline under namespace/name.
// The namespace may be empty for top-level functions.
func (r *Registry) RegisterFunc(namespace, name string, fn luabind.GoFunc) error {
	if name == "" {
		return errors.InvalidInput(errors.PhaseRegister, "function name cannot be empty")
	}
	if fn == nil {
		return errors.InvalidInput(errors.PhaseRegister, "function cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.funcs[namespace] == nil {
		r.funcs[namespace] = make(map[string]luabind.GoFunc)
	}
	r.funcs[namespace][name] = fn
	return nil
}

// RegisterGo wraps a plain Go function (see Wrap) and records it.
func (r *Registry) RegisterGo(namespace, name string, fn any) error {
	wrapped, err := Wrap(fn)
	if err != nil {
		return errors.Registration(namespace, name, err)
	}
	return r.RegisterFunc(namespace, name, wrapped)
}

// RegisterModule wraps every exported method of m and records it under the
// module's namespace. Method names become snake_case callable names
// (ScaleBy -> scale_by). Modules implementing ExplicitRegistrar supply their
// own name-to-trampoline map instead.
func (r *Registry) RegisterModule(m Module) error {
	ns := m.Namespace()

	if er, ok := m.(ExplicitRegistrar); ok {
		for name, fn := range er.Register() {
			if err := r.RegisterFunc(ns, name, fn); err != nil {
				return err
			}
		}
		return nil
	}

	rv := reflect.ValueOf(m)
	rt := rv.Type()

	for i := 0; i < rt.NumMethod(); i++ {
		method := rt.Method(i)
		if !method.IsExported() || method.Name == "Namespace" {
			continue
		}

		wrapped, err := Wrap(rv.Method(i).Interface())
		if err != nil {
			return errors.Registration(ns, method.Name, err)
		}
		if err := r.RegisterFunc(ns, toSnakeCase(method.Name), wrapped); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the trampoline recorded under namespace/name.
func (r *Registry) Lookup(namespace, name string) (luabind.GoFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[namespace][name]
	return fn, ok
}

// Bind registers every recorded trampoline with the runtime's registration
// mechanism. Namespaced functions are exposed as "namespace.name".
func (r *Registry) Bind(reg luabind.Registrar) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for namespace, funcs := range r.funcs {
		for name, fn := range funcs {
			qualified := name
			if namespace != "" {
				qualified = namespace + "." + name
			}
			if err := reg.Register(qualified, fn); err != nil {
				return errors.Registration(namespace, name, err)
			}
		}
	}
	return nil
}

// toSnakeCase converts PascalCase to snake_case.
// Handles acronyms: GetHTTPURL -> get_http_url
func toSnakeCase(s string) string {
	if len(s) == 0 {
		return ""
	}

	runes := []rune(s)
	var result strings.Builder

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if unicode.IsUpper(r) {
			acronymEnd := i + 1
			for acronymEnd < len(runes) && unicode.IsUpper(runes[acronymEnd]) {
				acronymEnd++
			}

			if acronymEnd > i+1 {
				// Last uppercase before lowercase starts next word, not part of acronym
				if acronymEnd < len(runes) && unicode.IsLower(runes[acronymEnd]) {
					acronymEnd--
				}
			}

			if i > 0 {
				result.WriteByte('_')
			}

			for j := i; j < acronymEnd; j++ {
				result.WriteRune(unicode.ToLower(runes[j]))
			}
			i = acronymEnd - 1 // -1 because loop will increment
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
