package paperless

import "time"

// User is a server account.
type User struct {
	ID                   int64      `json:"id"                    yaml:"id"`
	Username             string     `json:"username"              yaml:"username"`
	Email                string     `json:"email"                 yaml:"email"`
	FirstName            string     `json:"first_name"            yaml:"first_name"`
	LastName             string     `json:"last_name"             yaml:"last_name"`
	DateJoined           *time.Time `json:"date_joined"           yaml:"date_joined"`
	IsStaff              bool       `json:"is_staff"              yaml:"is_staff"`
	IsActive             bool       `json:"is_active"             yaml:"is_active"`
	IsSuperuser          bool       `json:"is_superuser"          yaml:"is_superuser"`
	Groups               []int64    `json:"groups"                yaml:"groups"`
	UserPermissions      []string   `json:"user_permissions"      yaml:"user_permissions"`
	InheritedPermissions []string   `json:"inherited_permissions" yaml:"inherited_permissions"`
}

// UsersClient accesses the users resource. The API exposes it read-only.
type UsersClient interface {
	Getter[User]
	Lister[User]
}
