package cli

import (
	"context"
	"fmt"
)

type menuItem struct {
	key    string
	label  string
	action func(ctx context.Context) error
}

func (a *App) userMenu() []menuItem {
	return []menuItem{
		{"1", "Search route", a.searchRoutes},
		{"2", "Sort routes", a.sortRoutes},
		{"3", "Show routes that arrive at least 12 hours before a time", a.arrivingWithin},
	}
}

func (a *App) adminMenu() []menuItem {
	return append(a.userMenu(),
		menuItem{"4", "Add route", a.addRoute},
		menuItem{"5", "Edit route", a.editRoute},
		menuItem{"6", "Delete route", a.deleteRoute},
		menuItem{"7", "Manage accounts", a.manageAccounts},
	)
}

// menuLoop shows the menu for the current role until the user logs out.
// The role is looked up on every pass, so an admin who removes their own
// admin flag drops to the user menu straight away.
func (a *App) menuLoop(ctx context.Context) error {
	for {
		v, ok := a.svc.Current()
		if !ok {
			return nil
		}

		title, items := "User menu", a.userMenu()
		if v.IsAdmin {
			title, items = "Administrator menu", a.adminMenu()
		}

		quit, err := a.choose(ctx, title, items, "Log out")
		if err != nil {
			return err
		}
		if quit {
			a.println("Logging out...")
			a.svc.Logout(ctx)
			return nil
		}
	}
}

// choose shows one menu, reads a choice and runs it. quit is true when the
// user picked 0.
func (a *App) choose(ctx context.Context, title string, items []menuItem, exitLabel string) (quit bool, err error) {
	a.header(title)
	for _, it := range items {
		a.println(fmt.Sprintf("%s. %s", it.key, it.label))
	}
	a.println("0. " + exitLabel)

	choice, err := a.text("Your choice: ")
	if err != nil {
		return false, err
	}
	if choice == "0" {
		return true, nil
	}
	for _, it := range items {
		if it.key == choice {
			return false, it.action(ctx)
		}
	}
	a.fail("Incorrect choice. Try again.")
	return false, nil
}
