// Package cli provides the interactive noclaf command-line client.
//
// It drives the session layer through services.AuthService and
// services.ResourceService: on start a stored session is revalidated, the
// user is asked to log in when no session survives, and a REPL accepts
// commands until exit.
//
// Commands:
//   - login / logout
//   - profile, feed, home (profile and feed fetched concurrently)
//   - status, help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
