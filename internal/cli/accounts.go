package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/busdepot/internal/common"
	"github.com/dmitrijs2005/busdepot/internal/models"
)

func (a *App) accountMenu() []menuItem {
	return []menuItem{
		{"1", "Add account", a.addAccount},
		{"2", "Edit account", a.editAccount},
		{"3", "Delete account", a.deleteAccount},
		{"4", "Show all users", a.listAccounts},
	}
}

// manageAccounts runs the account submenu until 0 is chosen or the acting
// user is no longer an admin.
func (a *App) manageAccounts(ctx context.Context) error {
	for {
		if v, ok := a.svc.Current(); !ok || !v.IsAdmin {
			return nil
		}
		back, err := a.choose(ctx, "Account manage menu", a.accountMenu(), "Return")
		if err != nil || back {
			return err
		}
	}
}

func (a *App) addAccount(ctx context.Context) error {
	a.header("Adding user")
	username, err := a.text("Enter username: ")
	if err != nil {
		return err
	}
	if _, err := a.svc.GetAccount(ctx, username); err == nil {
		a.fail("User with this username already exists.")
		return nil
	}

	password, err := a.password("Enter password: ")
	if err != nil {
		return err
	}
	answer, err := a.text("Give this user admin rights? (y/n): ")
	if err != nil {
		return err
	}

	acc := models.UserAccount{Username: username, Password: password, IsAdmin: strings.EqualFold(answer, "y")}
	err = a.svc.AddAccount(ctx, acc)
	if errors.Is(err, common.ErrAlreadyExists) {
		a.fail("User with this username already exists.")
		return nil
	}
	a.done(err, "User added successfully.")
	return nil
}

func (a *App) editAccount(ctx context.Context) error {
	a.header("Editing user")
	username, err := a.text("Enter username of user to edit: ")
	if err != nil {
		return err
	}
	if _, err := a.svc.GetAccount(ctx, username); err != nil {
		a.fail("User not found.")
		return nil
	}

	var patch models.AccountPatch
	password, err := a.password("Enter new password (leave blank to skip): ")
	if err != nil {
		return err
	}
	if password != "" {
		patch.Password = &password
	}
	answer, err := a.text("New admin rights (y/n/skip): ")
	if err != nil {
		return err
	}
	switch strings.ToLower(answer) {
	case "y":
		yes := true
		patch.IsAdmin = &yes
	case "n":
		no := false
		patch.IsAdmin = &no
	}

	_, err = a.svc.UpdateAccount(ctx, username, patch)
	a.done(err, "Account updated successfully.")
	return nil
}

func (a *App) deleteAccount(ctx context.Context) error {
	a.header("Deleting user")
	username, err := a.text("Enter username of user to delete: ")
	if err != nil {
		return err
	}

	err = a.svc.DeleteAccount(ctx, username)
	switch {
	case errors.Is(err, common.ErrSelfDeleteForbidden):
		a.fail("You cannot delete yourself.")
	case errors.Is(err, common.ErrorNotFound):
		a.fail("User not found.")
	default:
		a.done(err, "User deleted successfully.")
	}
	return nil
}

func (a *App) listAccounts(ctx context.Context) error {
	views, err := a.svc.ListAccounts(ctx)
	if err != nil {
		a.fail(err.Error())
		return nil
	}
	a.println()
	a.println("User list:")
	for _, v := range views {
		a.println(v)
	}
	return nil
}
