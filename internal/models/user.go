package models

// UserRole represents user roles in the system
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleBuyer  UserRole = "buyer"
	UserRoleSeller UserRole = "seller"
)

// UserStatusActive is the status assigned to every managed account
const UserStatusActive = "Active"

// User represents a marketplace account. Passwords are stored in plain
// text, mirroring the legacy data files this service reads and writes.
type User struct {
	Username string   `json:"username"`
	Password string   `json:"password,omitempty"`
	Role     UserRole `json:"role"`
	Status   string   `json:"status,omitempty"`
	JoinDate string   `json:"joinDate"`
}

// UserCreation represents the payload for adding a user
type UserCreation struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
}

// LoginRequest represents the payload for authentication
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// MainUsers returns the three built-in demo accounts. They are not
// persisted to the user file and can never be deleted.
func MainUsers() []User {
	return []User{
		{Username: "mritunjay", Password: "mritunjay123", Role: UserRoleAdmin, JoinDate: "2024-01-15"},
		{Username: "mriby", Password: "123", Role: UserRoleBuyer, JoinDate: "2024-02-01"},
		{Username: "mrisell", Password: "123", Role: UserRoleSeller, JoinDate: "2024-01-20"},
	}
}

// IsDemoUser reports whether a username belongs to a built-in account
func IsDemoUser(username string) bool {
	for _, u := range MainUsers() {
		if u.Username == username {
			return true
		}
	}
	return false
}
