package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/argrid/internal/opts"
)

// Manifest is a loaded command-line surface: a populated registry plus the
// option defaults declared in the file.
type Manifest struct {
	// Registry holds every command, option, and argument the file declared.
	Registry *opts.Registry
	// Defaults maps option long names to their declared default values.
	// Defaults are scope-blind: a command option and a root option with the
	// same long name share one entry, last declaration winning.
	Defaults map[string]opts.Value
	// Help is the file-level help text for the root screen.
	Help string
}

// Load reads and builds a manifest from a file on disk.
func Load(path string) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, diags)
	}

	var schema fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &schema); diags.HasErrors() {
		return nil, fmt.Errorf("decoding manifest %s: %w", path, diags)
	}
	return build(&schema)
}

// Parse builds a manifest from in-memory HCL source. filename only labels
// diagnostics.
func Parse(src []byte, filename string) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing manifest %s: %w", filename, diags)
	}

	var schema fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &schema); diags.HasErrors() {
		return nil, fmt.Errorf("decoding manifest %s: %w", filename, diags)
	}
	return build(&schema)
}

// build registers the decoded declarations through the normal registry
// entry points, so a manifest hits the same validation as code.
func build(schema *fileSchema) (*Manifest, error) {
	m := &Manifest{
		Registry: opts.NewRegistry(),
		Defaults: map[string]opts.Value{},
		Help:     schema.Help,
	}
	m.Registry.Command(opts.Root).Help = schema.Help

	if err := registerScope(m, opts.Root, schema.Options, schema.Arguments); err != nil {
		return nil, err
	}
	for _, cmd := range schema.Commands {
		if err := m.Registry.RegisterCommand(cmd.Name, cmd.Help); err != nil {
			return nil, err
		}
		if err := registerScope(m, cmd.Name, cmd.Options, cmd.Arguments); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func registerScope(m *Manifest, command string, options []*optionBlock, arguments []*argumentBlock) error {
	for _, o := range options {
		spec := opts.OptionSpec{
			Long:     o.Name,
			Short:    o.Short,
			Help:     o.Help,
			ArgLabel: o.Arg,
		}
		if err := m.Registry.RegisterOption(command, spec); err != nil {
			return err
		}
		if o.Default != nil {
			val, err := defaultValue(o.Name, *o.Default)
			if err != nil {
				return err
			}
			if val != nil {
				m.Defaults[o.Name] = val
			}
		}
	}
	for _, a := range arguments {
		required := true
		if a.Required != nil {
			required = *a.Required
		}
		spec := opts.ArgSpec{Name: a.Name, Help: a.Help, Required: required}
		if err := m.Registry.RegisterArgument(command, spec); err != nil {
			return err
		}
	}
	return nil
}

// defaultValue converts a declared default into a tagged option value. A
// true bool becomes a bare flag, a false bool or null means "no default",
// and anything else must convert to a string.
func defaultValue(option string, val cty.Value) (opts.Value, error) {
	if val.IsNull() {
		return nil, nil
	}
	if val.Type() == cty.Bool {
		if val.True() {
			return opts.Flag{}, nil
		}
		return nil, nil
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return nil, fmt.Errorf("option %q: unsupported default value: %w", option, err)
	}
	return opts.StringValue{Val: str.AsString()}, nil
}
