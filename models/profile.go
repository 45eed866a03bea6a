package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FullControl is the static access level of system admins.
const FullControl = "full_control"

// RoleProfile is the role-keyed variant embedded in a user. Exactly one
// variant exists per role.
type RoleProfile interface {
	ProfileRole() Role
	// ProfileKey is the JSON key the variant is rendered under.
	ProfileKey() string
}

type CitizenProfile struct {
	Address  string       `bson:"address,omitempty" json:"address,omitempty"`
	Ward     string       `bson:"ward,omitempty" json:"ward,omitempty"`
	Location *Coordinates `bson:"location,omitempty" json:"location,omitempty"`
}

func (CitizenProfile) ProfileRole() Role  { return RoleCitizen }
func (CitizenProfile) ProfileKey() string { return "citizenProfile" }

type MunicipalityAdminProfile struct {
	Office      string `bson:"office,omitempty" json:"office,omitempty"`
	Designation string `bson:"designation,omitempty" json:"designation,omitempty"`
}

func (MunicipalityAdminProfile) ProfileRole() Role  { return RoleMunicipalityAdmin }
func (MunicipalityAdminProfile) ProfileKey() string { return "municipalityProfile" }

// FieldStaffProfile links a field staff user to its staffs document.
type FieldStaffProfile struct {
	StaffID     primitive.ObjectID `bson:"staffId" json:"staffId"`
	EmployeeID  string             `bson:"employeeId" json:"employeeId"`
	Department  string             `bson:"department" json:"department"`
	Designation string             `bson:"designation" json:"designation"`
}

func (FieldStaffProfile) ProfileRole() Role  { return RoleFieldStaff }
func (FieldStaffProfile) ProfileKey() string { return "staffProfile" }

type SponsorProfile struct {
	BusinessName string `bson:"businessName,omitempty" json:"businessName,omitempty"`
	Website      string `bson:"website,omitempty" json:"website,omitempty"`
	Address      string `bson:"address,omitempty" json:"address,omitempty"`
	BannerImage  string `bson:"bannerImage,omitempty" json:"bannerImage,omitempty"`
}

func (SponsorProfile) ProfileRole() Role  { return RoleSponsor }
func (SponsorProfile) ProfileKey() string { return "sponsorProfile" }

// SystemAccess is never persisted; it marks system admins.
type SystemAccess struct {
	Level string `json:"level"`
}

func (SystemAccess) ProfileRole() Role  { return RoleSystemAdmin }
func (SystemAccess) ProfileKey() string { return "systemAccess" }

// Identity is the normalized requester attached by the auth middleware.
type Identity struct {
	ID             primitive.ObjectID  `json:"id"`
	Name           string              `json:"name"`
	Email          string              `json:"email"`
	Phone          string              `json:"phone,omitempty"`
	Role           Role                `json:"role"`
	ProfileImage   string              `json:"profileImage,omitempty"`
	Status         UserStatus          `json:"status"`
	MunicipalityID *primitive.ObjectID `json:"municipalityId,omitempty"`
	Profile        RoleProfile         `json:"-"`
}

// NewIdentity projects a user into an identity with its role profile.
func NewIdentity(u *User) (*Identity, error) {
	profile, err := u.Profile()
	if err != nil {
		return nil, err
	}
	return &Identity{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		Role:           u.Role,
		ProfileImage:   u.ProfileImage,
		Status:         u.Status,
		MunicipalityID: u.MunicipalityID,
		Profile:        profile,
	}, nil
}

// HasRole reports whether the identity holds any of roles.
func (i *Identity) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

// InMunicipality reports whether the identity belongs to the given tenant.
func (i *Identity) InMunicipality(id primitive.ObjectID) bool {
	return i.MunicipalityID != nil && *i.MunicipalityID == id
}

func (i Identity) MarshalJSON() ([]byte, error) {
	type plain Identity
	return marshalWithProfile(plain(i), i.Profile)
}

// UserDetail is the role-filtered projection returned by login and profile reads.
type UserDetail struct {
	ID             primitive.ObjectID  `json:"id"`
	Name           string              `json:"name"`
	Email          string              `json:"email"`
	Role           Role                `json:"role"`
	Phone          string              `json:"phone,omitempty"`
	ProfileImage   string              `json:"profileImage,omitempty"`
	MunicipalityID *primitive.ObjectID `json:"municipalityId,omitempty"`
	Points         int                 `json:"points"`
	Status         UserStatus          `json:"status"`
	LastLogin      interface{}         `json:"lastLogin"`
	Profile        RoleProfile         `json:"-"`
}

func NewUserDetail(u *User) (*UserDetail, error) {
	profile, err := u.Profile()
	if err != nil {
		return nil, err
	}
	d := &UserDetail{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		Phone:          u.Phone,
		ProfileImage:   u.ProfileImage,
		MunicipalityID: u.MunicipalityID,
		Points:         u.Points,
		Status:         u.Status,
		Profile:        profile,
	}
	if u.LastLogin != nil {
		d.LastLogin = *u.LastLogin
	}
	return d, nil
}

func (d UserDetail) MarshalJSON() ([]byte, error) {
	type plain UserDetail
	return marshalWithProfile(plain(d), d.Profile)
}

func marshalWithProfile(base interface{}, profile RoleProfile) ([]byte, error) {
	raw, err := json.Marshal(base)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return raw, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	var value interface{} = profile
	if access, ok := profile.(SystemAccess); ok {
		value = access.Level
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	fields[profile.ProfileKey()] = encoded
	return json.Marshal(fields)
}
