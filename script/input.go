package script

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/runandgun/obj"
	"github.com/milk9111/runandgun/prefabs"
	"go.uber.org/zap"
)

// dispatch is appended to every input script. The script must define
// update(pad, tick).
const dispatch = `
update(__pad, __tick)
`

// Frame is the input one script tick produced.
type Frame struct {
	Input    obj.Input
	Commands []obj.Command
	// Done is set once the script called pad.stop().
	Done bool
}

// InputScript drives a character from a tengo script, one call per tick.
type InputScript struct {
	name     string
	compiled *tengo.Compiled
	pad      *tengo.ImmutableMap
	frame    Frame
	log      *zap.Logger
}

// Load compiles a script from the prefab scripts directory.
func Load(name string, log *zap.Logger) (*InputScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return Compile(name, src, log)
}

func Compile(name string, src []byte, log *zap.Logger) (*InputScript, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &InputScript{name: name, log: log}
	s.pad = s.buildPad()

	sc := tengo.NewScript([]byte(string(src) + "\n" + dispatch))
	_ = sc.Add("__pad", s.pad)
	_ = sc.Add("__tick", 0)
	sc.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := sc.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	s.compiled = compiled
	return s, nil
}

func (s *InputScript) Name() string {
	return s.name
}

// Step runs the script for one tick. Held input does not carry over between
// ticks; the script restates it every call.
func (s *InputScript) Step(tick int) (Frame, error) {
	done := s.frame.Done
	s.frame = Frame{Done: done}
	if done {
		return s.frame, nil
	}

	if err := s.compiled.Set("__tick", tick); err != nil {
		return Frame{}, fmt.Errorf("script: %s: %w", s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return Frame{}, fmt.Errorf("script: %s tick %d: %w", s.name, tick, err)
	}
	return s.frame, nil
}

func (s *InputScript) buildPad() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["move"] = &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		x, ok := tengo.ToFloat64(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "x", Expected: "float", Found: args[0].TypeName()}
		}
		s.frame.Input.MoveX = x
		return tengo.UndefinedValue, nil
	}}

	values["hold"] = &tengo.UserFunction{Name: "hold", Value: func(args ...tengo.Object) (tengo.Object, error) {
		for _, arg := range args {
			name, _ := tengo.ToString(arg)
			switch strings.ToLower(strings.TrimSpace(name)) {
			case "fire":
				s.frame.Input.Fire = true
			case "up":
				s.frame.Input.AimUp = true
			case "down":
				s.frame.Input.AimDown = true
			default:
				return nil, fmt.Errorf("hold: unknown button %q", name)
			}
		}
		return tengo.UndefinedValue, nil
	}}

	values["press"] = &tengo.UserFunction{Name: "press", Value: func(args ...tengo.Object) (tengo.Object, error) {
		for _, arg := range args {
			name, _ := tengo.ToString(arg)
			cmd, err := obj.ParseCommand(name)
			if err != nil {
				return nil, err
			}
			s.frame.Commands = append(s.frame.Commands, cmd)
		}
		return tengo.UndefinedValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			str, _ := tengo.ToString(arg)
			parts = append(parts, str)
		}
		s.log.Debug("script", zap.String("script", s.name), zap.String("msg", strings.Join(parts, " ")))
		return tengo.UndefinedValue, nil
	}}

	values["stop"] = &tengo.UserFunction{Name: "stop", Value: func(args ...tengo.Object) (tengo.Object, error) {
		s.frame.Done = true
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
