// ================== internal/features/users/model.go ==================
package users

// Role names stored on accounts
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// RoleSet is the set of roles held by a user, stored as a JSON text column
// so roles always load with the user row.
type RoleSet []string

// Has reports whether the set contains role.
func (s RoleSet) Has(role string) bool {
	for _, r := range s {
		if r == role {
			return true
		}
	}
	return false
}

// User represents an account that can authenticate and be a member of
// calendars. The password column holds a bcrypt hash and never serializes
// into responses.
type User struct {
	ID       int64   `gorm:"primaryKey" json:"id" example:"1"`
	Username string  `gorm:"column:username;type:text;uniqueIndex;not null" json:"username" example:"alice"`
	Password string  `gorm:"column:password;type:text;not null" json:"-"`
	Roles    RoleSet `gorm:"column:roles;type:text;serializer:json;not null" json:"roles"`
}

func (User) TableName() string { return "users" }

// UserRequest represents user creation and full-update data
type UserRequest struct {
	Username string   `json:"username" binding:"required" example:"alice"`
	Password string   `json:"password" binding:"required"`
	Roles    []string `json:"roles" example:"USER"`
}

// Entity builds the persistent record from the request. Accounts always
// end up with at least the USER role.
func (r *UserRequest) Entity() *User {
	roles := RoleSet(r.Roles)
	if len(roles) == 0 {
		roles = RoleSet{RoleUser}
	}

	return &User{
		Username: r.Username,
		Password: r.Password,
		Roles:    roles,
	}
}
