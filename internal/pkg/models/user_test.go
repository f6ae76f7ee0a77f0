package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, (&User{IsAdmin: true, IsGroupAdmin: true}).Role())
	assert.Equal(t, RoleGroupAdmin, (&User{IsGroupAdmin: true}).Role())
	assert.Equal(t, RoleMember, (&User{}).Role())
}

func TestCapabilitiesForRole(t *testing.T) {
	admin := CapabilitiesForRole(RoleAdmin)
	assert.True(t, admin.ManageUsers)
	assert.True(t, admin.DeleteAnyReceipt)
	assert.True(t, admin.EditAnyTrip)

	groupAdmin := CapabilitiesForRole(RoleGroupAdmin)
	assert.True(t, groupAdmin.ManageGroup)
	assert.True(t, groupAdmin.ManageInvites)
	assert.False(t, groupAdmin.ManageUsers)
	assert.False(t, groupAdmin.EditSettings)

	member := CapabilitiesForRole(RoleMember)
	assert.Equal(t, Capabilities{}, member)
}

func TestSessionSameGroup(t *testing.T) {
	groupID := uuid.New()

	with := &Session{GroupID: &groupID}
	assert.True(t, with.SameGroup(groupID))
	assert.False(t, with.SameGroup(uuid.New()))

	without := &Session{}
	assert.False(t, without.SameGroup(groupID))
}

func TestUserDisplayName(t *testing.T) {
	assert.Equal(t, "Anna Huber", (&User{FirstName: "Anna", LastName: "Huber"}).DisplayName())
	assert.Equal(t, "Huber", (&User{LastName: "Huber"}).DisplayName())
}
