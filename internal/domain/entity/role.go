package entity

import "time"

// Roles válidos. Un usuario puede tener cero o más a la vez
// (admin, member y host no son excluyentes).
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
	RoleHost   = "host"
)

// UserRole representa la asignación de un rol a un usuario.
type UserRole struct {
	ID        int64
	UserID    string
	Role      string // ver constantes Role*
	CreatedAt time.Time
}

// ValidRole indica si r es uno de los roles enumerados.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleMember, RoleHost:
		return true
	}
	return false
}

// RoleSet es el conjunto de roles de un usuario. Un set vacío (identidad
// ausente o usuario sin asignaciones) produce todas las capacidades en false.
type RoleSet []string

// Has indica si el set contiene el rol dado.
func (s RoleSet) Has(role string) bool {
	for _, r := range s {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin, IsMember, IsHost: flags directos sobre el set.
func (s RoleSet) IsAdmin() bool  { return s.Has(RoleAdmin) }
func (s RoleSet) IsMember() bool { return s.Has(RoleMember) }
func (s RoleSet) IsHost() bool   { return s.Has(RoleHost) }

// CanEditFridge: admin o member pueden modificar el inventario.
func (s RoleSet) CanEditFridge() bool {
	return s.IsAdmin() || s.IsMember()
}

// CanViewFridge: cualquier rol asignado permite ver el inventario.
func (s RoleSet) CanViewFridge() bool {
	return s.IsAdmin() || s.IsMember() || s.IsHost()
}
