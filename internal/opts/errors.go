package opts

import "fmt"

// ConfigError reports a registration mistake: a duplicate command or an
// option or argument attached to an unknown command. It is a setup-time
// programmer error and aborts setup; there is no recovery at parse time.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Message
}

// ShortDeclError reports a short-option declaration that is not exactly one
// character.
type ShortDeclError struct {
	Option string
	Short  string
}

func (e *ShortDeclError) Error() string {
	return fmt.Sprintf("option %q: short name %q must be exactly one character", e.Option, e.Short)
}

// UnknownOptionError reports an option token that is not registered in the
// scope it was seen in.
type UnknownOptionError struct {
	Option  string
	Command string
}

func (e *UnknownOptionError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("unknown option %q", e.Option)
	}
	return fmt.Sprintf("unknown option %q for command %q", e.Option, e.Command)
}

// MissingArgError reports an option that requires an argument but was given
// none.
type MissingArgError struct {
	Option string
	Label  string
}

func (e *MissingArgError) Error() string {
	return fmt.Sprintf("option %q requires an argument <%s>", e.Option, e.Label)
}

// ArgCountError reports fewer positional arguments than the command's
// required prefix.
type ArgCountError struct {
	Command  string
	Required int
	Given    int
}

func (e *ArgCountError) Error() string {
	return fmt.Sprintf("expected at least %d positional argument(s), got %d", e.Required, e.Given)
}

// ArgvError reports that the process argument vector could not be read at
// all. Fatal; nothing downstream can run without an argv.
type ArgvError struct {
	Reason string
}

func (e *ArgvError) Error() string {
	return "cannot read process arguments: " + e.Reason
}
