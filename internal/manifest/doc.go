// Package manifest loads a program's command-line surface from a declarative
// HCL file. A manifest declares sub-commands, options, and positional
// arguments with their help text:
//
//	help = "example tool"
//
//	option "plugins" {
//	  short = "p"
//	  help  = "enable plugins"
//	}
//
//	command "status" {
//	  help = "show working tree status"
//	  option "long" {
//	    short = "l"
//	    help  = "long listing"
//	  }
//	  argument "path" {
//	    help     = "path to inspect"
//	    required = false
//	  }
//	}
//
// Loading populates an opts.Registry and collects option defaults, so code
// and manifest declarations go through the exact same registration checks.
package manifest
