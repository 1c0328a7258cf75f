package models

import "fmt"

// UserAccount is a login identity. The password is kept and compared as
// plain text.
type UserAccount struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// View drops the password.
func (a UserAccount) View() AccountView {
	return AccountView{Username: a.Username, IsAdmin: a.IsAdmin}
}

// AccountPatch is a partial account update. Nil fields are carried over.
type AccountPatch struct {
	Password *string
	IsAdmin  *bool
}

// Apply builds a new account from a, keeping the username.
func (p AccountPatch) Apply(a UserAccount) UserAccount {
	updated := UserAccount{Username: a.Username, Password: a.Password, IsAdmin: a.IsAdmin}
	if p.Password != nil {
		updated.Password = *p.Password
	}
	if p.IsAdmin != nil {
		updated.IsAdmin = *p.IsAdmin
	}
	return updated
}

// AccountView is the read-only projection returned by account listings.
type AccountView struct {
	Username string
	IsAdmin  bool
}

func (v AccountView) String() string {
	admin := "No"
	if v.IsAdmin {
		admin = "Yes"
	}
	return fmt.Sprintf("%s (Admin: %s)", v.Username, admin)
}
