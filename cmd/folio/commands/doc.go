// Package commands defines the folio visitor CLI.
//
// Commands
//
//   - locale   Resolve the display locale (preference, detector, geo)
//   - toggle   Flip the locale and persist it as the explicit preference
//   - send     Submit a contact message to a folio server
//
// The root command opens the preference store for the selected profile before
// any subcommand runs: a JSON file under the user config directory, or a
// Redis key when --redis is set.
package commands
