package opts

import "fmt"

// Root is the name of the default command scope, always present.
const Root = ""

// OptionSpec declares one option within a command scope.
type OptionSpec struct {
	// Long is the option's long name, unique within its command.
	Long string
	// Short optionally maps a single character to Long. Must be exactly one
	// character when set.
	Short string
	// Help is the description shown on the help screen.
	Help string
	// ArgLabel names the option's argument on the help screen. A non-empty
	// label means the option requires a value.
	ArgLabel string
}

// TakesArg reports whether the option requires a value.
func (o *OptionSpec) TakesArg() bool {
	return o.ArgLabel != ""
}

// ArgSpec declares one positional argument. Callers are responsible for
// declaring all required arguments before any optional one; a required
// argument after an optional one is accepted but never counted by
// Result.CheckArguments.
type ArgSpec struct {
	Name     string
	Help     string
	Required bool
}

// CommandSpec holds one command's option and positional-argument tables.
type CommandSpec struct {
	Name string
	Help string

	options     map[string]*OptionSpec
	shortToLong map[string]string
	optionOrder []string
	args        []ArgSpec
}

// Option returns the named option spec, or nil.
func (c *CommandSpec) Option(long string) *OptionSpec {
	return c.options[long]
}

// Options returns the command's options in registration order.
func (c *CommandSpec) Options() []*OptionSpec {
	out := make([]*OptionSpec, 0, len(c.optionOrder))
	for _, name := range c.optionOrder {
		out = append(out, c.options[name])
	}
	return out
}

// Arguments returns the command's positional arguments in declaration order.
func (c *CommandSpec) Arguments() []ArgSpec {
	return c.args
}

// Registry holds the full command/option/argument surface of a program.
// Entries are registered during setup and must not change once parsing
// begins.
type Registry struct {
	commands     map[string]*CommandSpec
	commandOrder []string
}

// NewRegistry returns a Registry with the root command already present.
func NewRegistry() *Registry {
	r := &Registry{commands: map[string]*CommandSpec{}}
	r.commands[Root] = newCommand(Root, "")
	return r
}

func newCommand(name, help string) *CommandSpec {
	return &CommandSpec{
		Name:        name,
		Help:        help,
		options:     map[string]*OptionSpec{},
		shortToLong: map[string]string{},
	}
}

// RegisterCommand adds a sub-command. Registering a name twice (including
// the root name) is a ConfigError.
func (r *Registry) RegisterCommand(name, help string) error {
	if _, exists := r.commands[name]; exists {
		return &ConfigError{Message: fmt.Sprintf("command %q already registered", name)}
	}
	r.commands[name] = newCommand(name, help)
	r.commandOrder = append(r.commandOrder, name)
	return nil
}

// RegisterOption attaches an option to a command scope (Root for the
// default scope). The command must exist and a short name, when given, must
// be exactly one character. Command scopes are independent: a command does
// not see root options.
func (r *Registry) RegisterOption(command string, opt OptionSpec) error {
	cmd, ok := r.commands[command]
	if !ok {
		return &ConfigError{Message: fmt.Sprintf("option %q registered for unknown command %q", opt.Long, command)}
	}
	if opt.Short != "" && len([]rune(opt.Short)) != 1 {
		return &ShortDeclError{Option: opt.Long, Short: opt.Short}
	}
	if _, exists := cmd.options[opt.Long]; !exists {
		cmd.optionOrder = append(cmd.optionOrder, opt.Long)
	}
	stored := opt
	cmd.options[opt.Long] = &stored
	if opt.Short != "" {
		cmd.shortToLong[opt.Short] = opt.Long
	}
	return nil
}

// RegisterArgument appends a positional argument to a command's list. The
// command must exist.
func (r *Registry) RegisterArgument(command string, arg ArgSpec) error {
	cmd, ok := r.commands[command]
	if !ok {
		return &ConfigError{Message: fmt.Sprintf("argument %q registered for unknown command %q", arg.Name, command)}
	}
	cmd.args = append(cmd.args, arg)
	return nil
}

// Command returns the named command spec, or nil.
func (r *Registry) Command(name string) *CommandSpec {
	return r.commands[name]
}

// Commands returns the registered sub-commands in registration order. The
// root command is not included.
func (r *Registry) Commands() []*CommandSpec {
	out := make([]*CommandSpec, 0, len(r.commandOrder))
	for _, name := range r.commandOrder {
		out = append(out, r.commands[name])
	}
	return out
}
