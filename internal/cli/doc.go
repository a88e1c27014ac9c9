// Package cli parses the driver's own command-line options, resolves the
// terminal width, and maps parse failures to process exit codes. It
// translates driver flags into the application's internal configuration and
// is itself a consumer of the opts parser it fronts.
package cli
