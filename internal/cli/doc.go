// Package cli implements the interactive depot console.
//
// The console opens with a login prompt. After a successful login it shows
// the user menu or the administrator menu, depending on the role stored
// for the account, and dispatches each choice to the depot service.
// Logging out returns to the login prompt; end of input ends the program.
//
// Domain errors (unknown route, duplicate username, bad time format) are
// printed and the menu is shown again. Only input errors end the loop.
package cli
