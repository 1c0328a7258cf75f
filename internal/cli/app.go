package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"

	"github.com/dmitrijs2005/busdepot/internal/models"
	"github.com/dmitrijs2005/busdepot/internal/timex"
	"golang.org/x/term"
)

// Service is the depot surface the console drives.
type Service interface {
	Login(ctx context.Context, username, password string) (models.AccountView, error)
	Logout(ctx context.Context)
	Current() (models.AccountView, bool)

	GetRoute(ctx context.Context, number string) (models.Route, error)
	FindRoutes(ctx context.Context, field models.RouteField, value string) ([]models.Route, error)
	SortRoutes(ctx context.Context, field models.RouteField) ([]models.Route, error)
	RoutesArrivingWithin(ctx context.Context, limit timex.Clock) ([]models.Route, error)
	AddRoute(ctx context.Context, r models.Route) error
	UpdateRoute(ctx context.Context, number string, patch models.RoutePatch) (models.Route, error)
	DeleteRoute(ctx context.Context, number string) error

	GetAccount(ctx context.Context, username string) (models.AccountView, error)
	AddAccount(ctx context.Context, a models.UserAccount) error
	UpdateAccount(ctx context.Context, username string, patch models.AccountPatch) (models.AccountView, error)
	DeleteAccount(ctx context.Context, username string) error
	ListAccounts(ctx context.Context) ([]models.AccountView, error)
}

type App struct {
	svc    Service
	reader *bufio.Reader
	out    io.Writer

	// passwordFd is the terminal passwords are read from without echo,
	// or -1 when input is not a terminal.
	passwordFd int
}

// NewApp wires the console to in and out. Passwords are read without echo
// when in is a terminal.
func NewApp(svc Service, in io.Reader, out io.Writer) *App {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &App{svc: svc, reader: bufio.NewReader(in), out: out, passwordFd: fd}
}

// Run shows the login prompt and the menus until input ends.
func (a *App) Run(ctx context.Context) error {
	a.header("Welcome to the bus depot database")
	for {
		if err := a.login(ctx); err != nil {
			return endOfInput(err)
		}
		if err := a.menuLoop(ctx); err != nil {
			return endOfInput(err)
		}
	}
}

// endOfInput turns EOF into a clean exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
