package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/homer-api/internal/domain/entity"
)

func TestRoleSet_VacioTodasLasCapacidadesEnFalse(t *testing.T) {
	var set entity.RoleSet

	assert.False(t, set.IsAdmin())
	assert.False(t, set.IsMember())
	assert.False(t, set.IsHost())
	assert.False(t, set.CanEditFridge())
	assert.False(t, set.CanViewFridge())
}

func TestRoleSet_AdminPuedeVerYEditar(t *testing.T) {
	set := entity.RoleSet{entity.RoleAdmin}

	assert.True(t, set.CanEditFridge())
	assert.True(t, set.CanViewFridge())
}

func TestRoleSet_MemberPuedeVerYEditar(t *testing.T) {
	set := entity.RoleSet{entity.RoleMember}

	assert.True(t, set.CanEditFridge())
	assert.True(t, set.CanViewFridge())
}

func TestRoleSet_HostSoloVe(t *testing.T) {
	set := entity.RoleSet{entity.RoleHost}

	assert.False(t, set.CanEditFridge())
	assert.True(t, set.CanViewFridge())
}

func TestRoleSet_RolesNoExcluyentes(t *testing.T) {
	// admin y host a la vez: las capacidades se acumulan.
	set := entity.RoleSet{entity.RoleAdmin, entity.RoleHost}

	assert.True(t, set.IsAdmin())
	assert.True(t, set.IsHost())
	assert.True(t, set.CanEditFridge())
	assert.True(t, set.CanViewFridge())
}

func TestValidRole(t *testing.T) {
	assert.True(t, entity.ValidRole(entity.RoleAdmin))
	assert.True(t, entity.ValidRole(entity.RoleMember))
	assert.True(t, entity.ValidRole(entity.RoleHost))
	assert.False(t, entity.ValidRole("owner"))
	assert.False(t, entity.ValidRole(""))
}
