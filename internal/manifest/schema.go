package manifest

import (
	"github.com/zclconf/go-cty/cty"
)

// fileSchema is the top-level structure of a manifest file. Root-level
// option and argument blocks attach to the default command scope.
type fileSchema struct {
	Help      string           `hcl:"help,optional"`
	Options   []*optionBlock   `hcl:"option,block"`
	Arguments []*argumentBlock `hcl:"argument,block"`
	Commands  []*commandBlock  `hcl:"command,block"`
}

// commandBlock declares one sub-command and its scoped surface.
type commandBlock struct {
	Name      string           `hcl:"name,label"`
	Help      string           `hcl:"help,optional"`
	Options   []*optionBlock   `hcl:"option,block"`
	Arguments []*argumentBlock `hcl:"argument,block"`
}

// optionBlock declares one option. A non-empty arg label means the option
// takes a value; default, when present, pre-resolves the option as if it had
// been given on the command line.
type optionBlock struct {
	Name    string     `hcl:"name,label"`
	Help    string     `hcl:"help,optional"`
	Short   string     `hcl:"short,optional"`
	Arg     string     `hcl:"arg,optional"`
	Default *cty.Value `hcl:"default,optional"`
}

// argumentBlock declares one positional argument. Required defaults to true,
// matching programmatic registration.
type argumentBlock struct {
	Name     string `hcl:"name,label"`
	Help     string `hcl:"help,optional"`
	Required *bool  `hcl:"required,optional"`
}
