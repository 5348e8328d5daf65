package models

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleAttendant UserRole = "attendant"
)

// User is the session identity: a display name plus a role. There are no
// stored accounts; admins and attendants authenticate against shared secrets.
type User struct {
	Name string   `json:"name"`
	Role UserRole `json:"role"`
}

type Credentials struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Admin    bool   `json:"admin"`
}
