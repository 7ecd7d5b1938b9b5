package dto

import "time"

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse representación pública de un usuario (sin hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse respuesta de login: token + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RolesResponse roles del usuario autenticado más las capacidades derivadas.
type RolesResponse struct {
	Roles         []string `json:"roles"`
	IsAdmin       bool     `json:"is_admin"`
	IsMember      bool     `json:"is_member"`
	IsHost        bool     `json:"is_host"`
	CanEditFridge bool     `json:"can_edit_fridge"`
	CanViewFridge bool     `json:"can_view_fridge"`
}

// AssignRoleRequest body para POST /api/admin/roles.
type AssignRoleRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}
