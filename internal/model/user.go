package model

const (
	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
)

type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Country string `json:"country"`
	Image   string `json:"image"`
	Status  string `json:"status"`
}

const (
	AdminRoleSuperAdmin = "Super Admin"
	AdminRoleAdmin      = "Admin"
)

type AdminUser struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	LastLogin string `json:"last_login"`
	Status    string `json:"status"`
}
