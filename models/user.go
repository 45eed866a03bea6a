package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleCitizen           Role = "citizen"
	RoleMunicipalityAdmin Role = "municipality_admin"
	RoleFieldStaff        Role = "field_staff"
	RoleSponsor           Role = "sponsor"
	RoleSystemAdmin       Role = "system_admin"
)

// UserStatus enum
type UserStatus string

const (
	UserPending   UserStatus = "pending"
	UserActive    UserStatus = "active"
	UserInactive  UserStatus = "inactive"
	UserSuspended UserStatus = "suspended"
)

var (
	ErrProfileRoleMismatch = errors.New("profile does not match user role")
	ErrProfileNotStored    = errors.New("system admin profile is not stored")
)

type User struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name            string              `bson:"name" json:"name"`
	Email           string              `bson:"email" json:"email"`
	Password        string              `bson:"password,omitempty" json:"-"`
	Phone           string              `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfileImage    string              `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Role            Role                `bson:"role" json:"role"`
	Status          UserStatus          `bson:"status" json:"status"`
	MunicipalityID  *primitive.ObjectID `bson:"municipalityId,omitempty" json:"municipalityId,omitempty"`
	Points          int                 `bson:"points" json:"points"`
	ActivationToken string              `bson:"activationToken,omitempty" json:"-"`
	ResetToken      string              `bson:"resetToken,omitempty" json:"-"`
	TokenExpiry     *time.Time          `bson:"tokenExpiry,omitempty" json:"-"`
	LastLogin       *time.Time          `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	// RawProfile holds the role-specific profile. Use Profile and SetProfile.
	RawProfile bson.Raw  `bson:"profile,omitempty" json:"-"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HashPassword replaces the plain password with its bcrypt hash.
func (u *User) HashPassword(cost int) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), cost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate))
	return err == nil
}

// HashPassword hashes a plain password with the given bcrypt cost.
func HashPassword(plain string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Profile decodes the role profile. System admins always get the static
// full-control marker; other roles may return nil when nothing is stored.
func (u *User) Profile() (RoleProfile, error) {
	if u.Role == RoleSystemAdmin {
		return SystemAccess{Level: FullControl}, nil
	}
	if len(u.RawProfile) == 0 {
		return nil, nil
	}

	switch u.Role {
	case RoleCitizen:
		var p CitizenProfile
		if err := bson.Unmarshal(u.RawProfile, &p); err != nil {
			return nil, err
		}
		return p, nil
	case RoleMunicipalityAdmin:
		var p MunicipalityAdminProfile
		if err := bson.Unmarshal(u.RawProfile, &p); err != nil {
			return nil, err
		}
		return p, nil
	case RoleFieldStaff:
		var p FieldStaffProfile
		if err := bson.Unmarshal(u.RawProfile, &p); err != nil {
			return nil, err
		}
		return p, nil
	case RoleSponsor:
		var p SponsorProfile
		if err := bson.Unmarshal(u.RawProfile, &p); err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, ErrProfileRoleMismatch
}

// SetProfile stores p, which must be the variant for the user's role.
func (u *User) SetProfile(p RoleProfile) error {
	if p == nil {
		u.RawProfile = nil
		return nil
	}
	if p.ProfileRole() != u.Role {
		return ErrProfileRoleMismatch
	}
	if u.Role == RoleSystemAdmin {
		return ErrProfileNotStored
	}
	raw, err := bson.Marshal(p)
	if err != nil {
		return err
	}
	u.RawProfile = raw
	return nil
}

// IsStaffRole reports whether the role can be assigned reports.
func (r Role) IsStaffRole() bool {
	return r == RoleMunicipalityAdmin || r == RoleFieldStaff
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleCitizen, RoleMunicipalityAdmin, RoleFieldStaff, RoleSponsor, RoleSystemAdmin:
		return true
	}
	return false
}
