// Package script runs tengo interaction scripts for interactive objects.
//
// A script defines a function
//
//	interact := func(engine, state) { ... }
//
// called once per interaction. state is a map that persists between calls.
// engine exposes log, variant, set_variant, change_map and open_menu.
package script

import (
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/thegame/object"
	"github.com/pkg/errors"
)

var ErrNoInteractFunc = errors.New("script: interact function not defined")

const interactDispatch = `
if __run {
	interact(__engine, __state)
}
`

// MapChanger and MenuOpener are optional context capabilities used by the
// change_map and open_menu script functions.
type MapChanger interface {
	ChangeMap(name string) error
}

type MenuOpener interface {
	OpenMenu(name string) error
}

// Runtime holds one compiled script and its persistent state.
type Runtime struct {
	name     string
	src      []byte
	compiled *tengo.Compiled
	state    *tengo.Map
}

func New(name string, src []byte) *Runtime {
	return &Runtime{
		name:  name,
		src:   append([]byte(nil), src...),
		state: &tengo.Map{Value: map[string]tengo.Object{}},
	}
}

func (r *Runtime) Name() string {
	return r.name
}

// Compile compiles the script if needed and checks that it defines interact.
func (r *Runtime) Compile() error {
	if r.compiled != nil {
		return nil
	}
	if err := r.checkInteract(); err != nil {
		return err
	}

	s := r.script(append(append([]byte(nil), r.src...), interactDispatch...))
	_ = s.Add("__run", false)
	_ = s.Add("__engine", map[string]any{})
	_ = s.Add("__state", map[string]any{})

	compiled, err := s.Compile()
	if err != nil {
		return errors.Wrapf(err, "script: compile %s", r.name)
	}
	if err := compiled.Run(); err != nil {
		return errors.Wrapf(err, "script: init %s", r.name)
	}
	r.compiled = compiled
	return nil
}

// checkInteract runs the bare source once. The dispatch block cannot be
// compiled until interact resolves.
func (r *Runtime) checkInteract() error {
	compiled, err := r.script(r.src).Compile()
	if err != nil {
		return errors.Wrapf(err, "script: compile %s", r.name)
	}
	if err := compiled.Run(); err != nil {
		return errors.Wrapf(err, "script: init %s", r.name)
	}
	if !compiled.IsDefined("interact") {
		return errors.Wrapf(ErrNoInteractFunc, "%s", r.name)
	}
	return nil
}

func (r *Runtime) script(src []byte) *tengo.Script {
	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	return s
}

// Interact runs the script's interact function for self.
func (r *Runtime) Interact(self *object.GameObject, ctx object.Context) error {
	if err := r.Compile(); err != nil {
		return err
	}
	if err := r.compiled.Set("__run", true); err != nil {
		return err
	}
	if err := r.compiled.Set("__engine", r.engine(self, ctx)); err != nil {
		return err
	}
	if err := r.compiled.Set("__state", r.state); err != nil {
		return err
	}
	if err := r.compiled.Run(); err != nil {
		return errors.Wrapf(err, "script: run %s", r.name)
	}
	return nil
}

// State returns a value the script stored in its state map.
func (r *Runtime) State(key string) (any, bool) {
	v, ok := r.state.Value[key]
	if !ok {
		return nil, false
	}
	return objectToAny(v), true
}

func (r *Runtime) engine(self *object.GameObject, ctx object.Context) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		ctx.Logger().Info("script", "script", r.name, "object", self.String(), "msg", strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	values["variant"] = &tengo.UserFunction{Name: "variant", Value: func(args ...tengo.Object) (tengo.Object, error) {
		v, ok := self.ActiveVariant()
		if !ok {
			return tengo.UndefinedValue, nil
		}
		return &tengo.String{Value: v}, nil
	}}

	values["set_variant"] = &tengo.UserFunction{Name: "set_variant", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		if err := self.SetActiveVariant(objectAsString(args[0])); err != nil {
			return nil, err
		}
		return tengo.TrueValue, nil
	}}

	values["change_map"] = &tengo.UserFunction{Name: "change_map", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		mc, ok := ctx.(MapChanger)
		if !ok {
			return tengo.FalseValue, nil
		}
		if err := mc.ChangeMap(objectAsString(args[0])); err != nil {
			return nil, err
		}
		return tengo.TrueValue, nil
	}}

	values["open_menu"] = &tengo.UserFunction{Name: "open_menu", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		mo, ok := ctx.(MenuOpener)
		if !ok {
			return tengo.FalseValue, nil
		}
		if err := mo.OpenMenu(objectAsString(args[0])); err != nil {
			return nil, err
		}
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func objectToAny(obj tengo.Object) any {
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	case *tengo.Int:
		return int(v.Value)
	case *tengo.Bool:
		return !v.IsFalsy()
	case *tengo.Undefined:
		return nil
	default:
		return tengo.ToInterface(v)
	}
}
