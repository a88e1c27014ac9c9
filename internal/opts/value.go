package opts

// Value is a resolved option value. It is either a Flag (the option was
// present without an argument) or a StringValue (the option was given an
// argument), never anything untyped in between.
type Value interface {
	isValue()
}

// Flag records that a boolean option was present on the command line.
type Flag struct{}

func (Flag) isValue() {}

// StringValue holds the argument supplied to an option, either inline
// (--name=value) or as the following token.
type StringValue struct {
	Val string
}

func (StringValue) isValue() {}
