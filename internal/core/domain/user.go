package domain

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleCustomer UserRole = "CUSTOMER"
)

type User struct {
	ID        uint64
	Name      string
	Email     string
	Password  string
	Phone     string
	Address   string
	Role      UserRole
	CreatedAt time.Time
}
