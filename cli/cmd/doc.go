// Package cmd implements the pyscribe subcommands.
//
// Each command assembles a [py.Program] from its inputs and either prints,
// saves, or runs it. Command failures are reported with [Error], which
// carries structured attributes for the logger.
package cmd
