// Package registry is the runtime flag backend: an explicit, append-only
// registry of resolved flags built on pflag. Generated code and direct
// library consumers both target its surface; the registry answers, per
// flag, whether it was supplied on the command line and what value it
// parsed. The registry's lifetime is owned by the caller — there is no
// process-wide instance.
package registry

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/flaggen/flaggen/internal/resolve"
)

// Registry wraps a pflag.FlagSet with append-only registration and
// duplicate-name detection. Name collisions across structs registered into
// the same Registry surface here, at registration time, not at parse time.
type Registry struct {
	fs    *pflag.FlagSet
	names []string
}

// New returns an empty registry. name is used in pflag's error output.
func New(name string) *Registry {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	return &Registry{fs: fs}
}

// Register adds one resolved flag. It fails on a duplicate name or on a
// default literal that does not convert to the flag's type.
func (r *Registry) Register(f resolve.ResolvedFlag) error {
	if r.fs.Lookup(f.Name) != nil {
		return fmt.Errorf("registry: flag %q already registered", f.Name)
	}

	usage := f.Help
	if f.Placeholder != "" {
		if usage != "" {
			usage += " "
		}
		usage += "`" + f.Placeholder + "`"
	}

	if err := r.define(f, usage); err != nil {
		return fmt.Errorf("registry: flag %q: %w", f.Name, err)
	}
	r.names = append(r.names, f.Name)
	return nil
}

func (r *Registry) define(f resolve.ResolvedFlag, usage string) error {
	switch f.Type.Name {
	case "bool":
		v, err := f.Default.BoolValue()
		if err != nil {
			return err
		}
		r.fs.Bool(f.Name, v, usage)
	case "int", "int8", "int16", "int32", "int64":
		v, err := f.Default.IntValue()
		if err != nil {
			return err
		}
		switch f.Type.Name {
		case "int":
			r.fs.Int(f.Name, int(v), usage)
		case "int8":
			r.fs.Int8(f.Name, int8(v), usage)
		case "int16":
			r.fs.Int16(f.Name, int16(v), usage)
		case "int32":
			r.fs.Int32(f.Name, int32(v), usage)
		default:
			r.fs.Int64(f.Name, v, usage)
		}
	case "uint", "uint8", "uint16", "uint32", "uint64":
		v, err := f.Default.UintValue()
		if err != nil {
			return err
		}
		switch f.Type.Name {
		case "uint":
			r.fs.Uint(f.Name, uint(v), usage)
		case "uint8":
			r.fs.Uint8(f.Name, uint8(v), usage)
		case "uint16":
			r.fs.Uint16(f.Name, uint16(v), usage)
		case "uint32":
			r.fs.Uint32(f.Name, uint32(v), usage)
		default:
			r.fs.Uint64(f.Name, v, usage)
		}
	case "float32", "float64":
		v, err := f.Default.FloatValue()
		if err != nil {
			return err
		}
		if f.Type.Name == "float32" {
			r.fs.Float32(f.Name, float32(v), usage)
		} else {
			r.fs.Float64(f.Name, v, usage)
		}
	default:
		// Types outside the scalar vocabulary take string values; the
		// consumer parses them.
		v, err := f.Default.StringValue()
		if err != nil {
			return err
		}
		r.fs.String(f.Name, v, usage)
	}
	return nil
}

// RegisterAll registers every flag of a resolved schema, in order.
func (r *Registry) RegisterAll(res *resolve.Result) error {
	for _, f := range res.Flags {
		if err := r.Register(f); err != nil {
			return err
		}
	}
	return nil
}

// Parse parses command-line arguments against the registered flags.
func (r *Registry) Parse(args []string) error {
	return r.fs.Parse(args)
}

// Present reports whether the named flag was supplied on the command line.
func (r *Registry) Present(name string) bool {
	return r.fs.Changed(name)
}

// Value returns the string form of the named flag's current value.
func (r *Registry) Value(name string) (string, error) {
	flag := r.fs.Lookup(name)
	if flag == nil {
		return "", fmt.Errorf("registry: unknown flag %q", name)
	}
	return flag.Value.String(), nil
}

// Names returns the registered flag names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// FlagSet exposes the underlying flag set for typed getters
// (GetString, GetUint32, ...) and integration with cobra commands.
func (r *Registry) FlagSet() *pflag.FlagSet {
	return r.fs
}
