// Package opts parses process argument vectors into typed options, a
// sub-command, and leftover positional arguments.
//
// A Registry declares the surface: commands, long/short options, and
// positional arguments, each with help text. Parse then makes a single
// left-to-right pass over the tokens. The first token that is not an option
// ends option recognition for the whole remainder; if it names a registered
// command, scanning resumes once under that command's own option table.
// Command option tables do not inherit root options; the two scopes are
// deliberately disjoint.
//
// Option values are tagged: a bare flag resolves to Flag, an option with an
// argument resolves to StringValue. Registration mistakes are programmer
// errors (ConfigError, ShortDeclError); parse failures are user errors
// carrying enough context for a usage message and an exit code.
package opts
