package cli

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/busdepot/internal/common"
	"github.com/dmitrijs2005/busdepot/internal/models"
	"github.com/fatih/color"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	failColor    = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
)

func (a *App) header(title string) {
	headerColor.Fprintf(a.out, "\n=== %s ===\n", title)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) success(msg string) {
	successColor.Fprintln(a.out, msg)
}

func (a *App) fail(msg string) {
	failColor.Fprintln(a.out, msg)
}

// done reports the outcome of a mutation. A persistence failure still
// counts as done: the change is live for this session but was not saved.
func (a *App) done(err error, msg string) {
	switch {
	case err == nil:
		a.success(msg)
	case errors.Is(err, common.ErrPersistenceFailure):
		a.success(msg)
		warnColor.Fprintf(a.out, "Warning: the change could not be saved and will be lost on exit (%v).\n", err)
	default:
		a.fail(err.Error())
	}
}

func (a *App) printRoutes(title string, routes []models.Route) {
	a.println(title)
	for _, r := range routes {
		a.println(r)
	}
}
