package dto

import "eshop/internal/models"

// UserEntry is the inbound shape for creating or updating a user.
type UserEntry struct {
	Username  string  `json:"username" validate:"required,min=3,max=100"`
	Password  string  `json:"password" validate:"omitempty,min=6"`
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"required,max=100"`
	Address   string  `json:"address" validate:"required,max=255"`
	Phone     string  `json:"phone" validate:"required,max=30"`
	Role      string  `json:"role" validate:"omitempty,oneof=user admin"`
	Balance   float64 `json:"balance" validate:"gte=0"`
}

// UserInfo is the outbound shape for a user. It never carries the password.
type UserInfo struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	Role      string  `json:"role"`
	Balance   float64 `json:"balance"`
}

// FromUserEntry maps an entry DTO onto a fresh entity, field by field.
func FromUserEntry(e UserEntry) *models.User {
	return &models.User{
		Username:  e.Username,
		Password:  e.Password,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Address:   e.Address,
		Phone:     e.Phone,
		Role:      e.Role,
		Balance:   e.Balance,
	}
}

// ToUserInfo maps a user entity to its outbound shape.
func ToUserInfo(u *models.User) UserInfo {
	return UserInfo{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Address:   u.Address,
		Phone:     u.Phone,
		Role:      u.Role,
		Balance:   u.Balance,
	}
}

// ToUserInfos maps a slice of user entities.
func ToUserInfos(users []models.User) []UserInfo {
	infos := make([]UserInfo, 0, len(users))
	for i := range users {
		infos = append(infos, ToUserInfo(&users[i]))
	}
	return infos
}
