package model

// User is the package owner's profile from Account/user.json. Every field is
// optional; a missing entry leaves the zero value.
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name"`
	CreatedAt  string `json:"created_at"`
}

// DisplayName falls back global name, then username, then a generic label.
func (u *User) DisplayName() string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	if u.Username != "" {
		return u.Username
	}
	return "User"
}
