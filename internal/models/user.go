package models

// User row from the users table. The password column holds a bcrypt hash.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Role         string `json:"role"`
}

// UserView is the shape returned by the API, never the hash.
type UserView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u User) View() UserView {
	return UserView{ID: u.ID, Email: u.Email, Role: u.Role}
}
