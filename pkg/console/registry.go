package console

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

type cmdFunc func(ctx context.Context, in *Interpreter, args []string) error

type command struct {
	Name    string
	Aliases []string
	Usage   string
	Desc    string
	MinArgs int
	MaxArgs int // negative means unbounded
	Run     cmdFunc
}

func (c command) acceptsArgs(n int) bool {
	return n >= c.MinArgs && (c.MaxArgs < 0 || n <= c.MaxArgs)
}

type registry struct {
	primary map[string]command
	lookup  map[string]string
}

func newRegistry() *registry {
	return &registry{
		primary: make(map[string]command),
		lookup:  make(map[string]string),
	}
}

func (r *registry) register(cmd command) error {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if cmd.Name == "" {
		return fmt.Errorf("console registry: empty command name")
	}
	if cmd.Run == nil {
		return fmt.Errorf("console registry: %q has no handler", cmd.Name)
	}
	if _, ok := r.lookup[cmd.Name]; ok {
		return fmt.Errorf("console registry: duplicate command %q", cmd.Name)
	}

	r.primary[cmd.Name] = cmd
	r.lookup[cmd.Name] = cmd.Name

	for _, alias := range cmd.Aliases {
		alias = strings.TrimSpace(alias)
		if alias == "" {
			continue
		}
		if _, ok := r.lookup[alias]; ok {
			return fmt.Errorf("console registry: duplicate alias %q", alias)
		}
		r.lookup[alias] = cmd.Name
	}
	return nil
}

func (r *registry) resolve(name string) (command, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return command{}, false
	}
	if primary, ok := r.lookup[name]; ok {
		cmd, ok := r.primary[primary]
		return cmd, ok
	}
	return command{}, false
}

func (r *registry) names() []string {
	out := make([]string, 0, len(r.primary))
	for name := range r.primary {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
