package cli

import (
	"context"
	"fmt"
)

// login prompts until a username and password match. There is no retry
// limit.
func (a *App) login(ctx context.Context) error {
	for {
		username, err := a.text("Enter username: ")
		if err != nil {
			return err
		}
		password, err := a.password("Enter password: ")
		if err != nil {
			return err
		}

		v, err := a.svc.Login(ctx, username, password)
		if err != nil {
			a.fail("Username or password is incorrect. Try again.")
			continue
		}
		a.success(fmt.Sprintf("Logged in. Hello, %s!", v.Username))
		return nil
	}
}
