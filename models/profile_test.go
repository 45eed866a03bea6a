package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserProfileRoundTrip(t *testing.T) {
	u := &User{Role: RoleCitizen}
	require.NoError(t, u.SetProfile(CitizenProfile{Address: "Baneshwor", Ward: "10"}))

	p, err := u.Profile()
	require.NoError(t, err)
	assert.Equal(t, CitizenProfile{Address: "Baneshwor", Ward: "10"}, p)
}

func TestSetProfileRejectsWrongVariant(t *testing.T) {
	u := &User{Role: RoleCitizen}
	assert.ErrorIs(t, u.SetProfile(SponsorProfile{BusinessName: "Shop"}), ErrProfileRoleMismatch)

	admin := &User{Role: RoleSystemAdmin}
	assert.ErrorIs(t, admin.SetProfile(SystemAccess{Level: FullControl}), ErrProfileNotStored)
}

func TestSystemAdminProfileIsStatic(t *testing.T) {
	p, err := (&User{Role: RoleSystemAdmin}).Profile()
	require.NoError(t, err)
	assert.Equal(t, SystemAccess{Level: FullControl}, p)
}

func TestIdentityJSONCarriesProfileKey(t *testing.T) {
	municipalityID := primitive.NewObjectID()
	staff := &User{ID: primitive.NewObjectID(), Role: RoleFieldStaff, MunicipalityID: &municipalityID, Status: UserActive}
	require.NoError(t, staff.SetProfile(FieldStaffProfile{EmployeeID: "EMP-1", Department: "drainage"}))

	identity, err := NewIdentity(staff)
	require.NoError(t, err)
	raw, err := json.Marshal(identity)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "field_staff", out["role"])
	profile, ok := out["staffProfile"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "EMP-1", profile["employeeId"])
	assert.NotContains(t, out, "Profile")

	admin, err := NewUserDetail(&User{Role: RoleSystemAdmin})
	require.NoError(t, err)
	raw, err = json.Marshal(admin)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"systemAccess":"full_control"`)
}

func TestPasswordHashing(t *testing.T) {
	u := &User{Password: "secret123"}
	require.NoError(t, u.HashPassword(bcrypt.MinCost))

	cost, err := bcrypt.Cost([]byte(u.Password))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.NotEqual(t, "secret123", u.Password)
	assert.True(t, u.ComparePassword("secret123"))
	assert.False(t, u.ComparePassword("secret124"))
}

func TestIdentityHelpers(t *testing.T) {
	id := primitive.NewObjectID()
	identity := &Identity{Role: RoleMunicipalityAdmin, MunicipalityID: &id}

	assert.True(t, identity.HasRole(RoleSystemAdmin, RoleMunicipalityAdmin))
	assert.False(t, identity.HasRole(RoleCitizen))
	assert.True(t, identity.InMunicipality(id))
	assert.False(t, (&Identity{}).InMunicipality(id))
	assert.True(t, RoleFieldStaff.IsStaffRole())
	assert.False(t, RoleSponsor.IsStaffRole())
}
