// Package cli provides the interactive Mimamsa command-line client.
//
// App renders the state held by controller.Controller and turns typed
// commands into controller calls. The command set follows the state:
// signed-out users get login, register and the password reset, signed-in
// users browse books and poems, and administrators additionally manage
// the catalog.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and the screens table for details.
package cli
