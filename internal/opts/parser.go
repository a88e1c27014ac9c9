package opts

import (
	"os"
	"regexp"
	"strings"
)

// optionLike matches tokens that would be swallowed by mistake if consumed
// as an option argument: one or two dashes followed by a word character.
var optionLike = regexp.MustCompile(`^--?\w`)

// Result is the outcome of one parse: the selected command, the resolved
// options of every scope that was scanned, and the leftover positional
// arguments. It is read-only after Parse returns.
type Result struct {
	reg     *Registry
	command string
	options map[string]Value
	args    []string
}

// ParseArgv reads the process argument vector (program name excluded) and
// parses it against reg. An empty argv means the environment could not
// supply arguments; that is an ArgvError and not recoverable.
func ParseArgv(reg *Registry) (*Result, error) {
	if len(os.Args) == 0 {
		return nil, &ArgvError{Reason: "empty argument vector"}
	}
	return Parse(reg, os.Args[1:])
}

// Parse makes a single left-to-right pass over tokens under the root scope.
// If the first leftover token names a registered command, that token is
// consumed and the remaining tokens are re-scanned once under the command's
// scope; each scan runs against its own option table and contributes a
// disjoint set of resolved options to the result.
func Parse(reg *Registry, tokens []string) (*Result, error) {
	res := &Result{reg: reg, options: map[string]Value{}}
	current := Root
	for {
		scoped, rest, err := scan(reg.Command(current), tokens)
		if err != nil {
			return nil, err
		}
		for name, val := range scoped {
			res.options[name] = val
		}

		if current == Root && len(rest) > 0 {
			if cmd := reg.Command(rest[0]); cmd != nil && rest[0] != Root {
				current = rest[0]
				res.command = current
				tokens = rest[1:]
				continue
			}
		}

		res.args = rest
		return res, nil
	}
}

// scan consumes tokens under a single command scope. It returns that scope's
// resolved options and the tokens left over as positionals.
func scan(cmd *CommandSpec, tokens []string) (map[string]Value, []string, error) {
	resolved := map[string]Value{}
	var rest []string

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case tok == "--":
			// Everything after the terminator is positional, verbatim.
			rest = append(rest, tokens[i+1:]...)
			return resolved, rest, nil

		case tok == "-":
			// Bare dash is a stdin marker, not an option; it and the rest
			// are positional.
			rest = append(rest, tokens[i:]...)
			return resolved, rest, nil

		case !strings.HasPrefix(tok, "-"):
			// First non-option token ends option recognition for the whole
			// remainder.
			rest = append(rest, tokens[i:]...)
			return resolved, rest, nil

		case strings.HasPrefix(tok, "--"):
			name, inline, hasInline := strings.Cut(tok[2:], "=")
			opt := cmd.Option(name)
			if opt == nil {
				return nil, nil, &UnknownOptionError{Option: "--" + name, Command: cmd.Name}
			}
			if !opt.TakesArg() {
				resolved[opt.Long] = Flag{}
				continue
			}
			if hasInline {
				resolved[opt.Long] = StringValue{Val: inline}
				continue
			}
			consumed, err := takeArg(opt, tokens, i)
			if err != nil {
				return nil, nil, err
			}
			resolved[opt.Long] = StringValue{Val: consumed}
			i++

		default:
			short := tok[1:]
			long, ok := cmd.shortToLong[short]
			if !ok {
				return nil, nil, &UnknownOptionError{Option: "-" + short, Command: cmd.Name}
			}
			opt := cmd.Option(long)
			if !opt.TakesArg() {
				resolved[opt.Long] = Flag{}
				continue
			}
			consumed, err := takeArg(opt, tokens, i)
			if err != nil {
				return nil, nil, err
			}
			resolved[opt.Long] = StringValue{Val: consumed}
			i++
		}
	}
	return resolved, rest, nil
}

// takeArg consumes the token after position i as the option's argument. A
// token that itself looks like an option is never swallowed.
func takeArg(opt *OptionSpec, tokens []string, i int) (string, error) {
	if i+1 < len(tokens) && !optionLike.MatchString(tokens[i+1]) {
		return tokens[i+1], nil
	}
	return "", &MissingArgError{Option: "--" + opt.Long, Label: opt.ArgLabel}
}

// Command returns the selected sub-command name, or the empty string when
// parsing stayed in the root scope.
func (r *Result) Command() string {
	return r.command
}

// Args returns the leftover positional arguments.
func (r *Result) Args() []string {
	return r.args
}

// Opt returns the resolved value for the named option.
func (r *Result) Opt(name string) (Value, bool) {
	v, ok := r.options[name]
	return v, ok
}

// Opts returns the full resolved-option map.
func (r *Result) Opts() map[string]Value {
	return r.options
}

// Bool reports whether the named option was present at all.
func (r *Result) Bool(name string) bool {
	_, ok := r.options[name]
	return ok
}

// String returns the argument given to the named option. The second return
// is false when the option is absent or was a bare flag.
func (r *Result) String(name string) (string, bool) {
	if sv, ok := r.options[name].(StringValue); ok {
		return sv.Val, true
	}
	return "", false
}

// CheckArguments verifies that enough positional arguments were supplied for
// the selected command. Only the leading run of required arguments counts;
// the walk stops at the first optional one, so a required argument declared
// after an optional argument is never enforced. Content is not validated.
func (r *Result) CheckArguments() error {
	cmd := r.reg.Command(r.command)
	if cmd == nil {
		return nil
	}
	required := 0
	for _, a := range cmd.Arguments() {
		if !a.Required {
			break
		}
		required++
	}
	if required > len(r.args) {
		return &ArgCountError{Command: r.command, Required: required, Given: len(r.args)}
	}
	return nil
}
