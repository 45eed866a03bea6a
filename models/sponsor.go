package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var SponsorTypes = []string{
	"local_business", "corporate", "ngo", "community_event", "music_program",
	"party_event", "csr_campaign", "government_scheme", "public_awareness",
}

// SponsorScope enum
type SponsorScope string

const (
	ScopeGlobal       SponsorScope = "global"
	ScopeMunicipality SponsorScope = "municipality"
)

// SponsorStatus enum
type SponsorStatus string

const (
	SponsorPending  SponsorStatus = "pending"
	SponsorActive   SponsorStatus = "active"
	SponsorInactive SponsorStatus = "inactive"
)

type Sponsor struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name           string              `bson:"name" json:"name"`
	ContactEmail   string              `bson:"contactEmail" json:"contactEmail"`
	ContactPhone   string              `bson:"contactPhone" json:"contactPhone"`
	SponsorType    string              `bson:"sponsorType" json:"sponsorType"`
	Title          string              `bson:"title" json:"title"`
	Description    string              `bson:"description,omitempty" json:"description,omitempty"`
	BannerImage    string              `bson:"bannerImage,omitempty" json:"bannerImage,omitempty"`
	Website        string              `bson:"website,omitempty" json:"website,omitempty"`
	Scope          SponsorScope        `bson:"scope" json:"scope"`
	MunicipalityID *primitive.ObjectID `bson:"municipalityId,omitempty" json:"municipalityId,omitempty"`
	StartDate      time.Time           `bson:"startDate" json:"startDate"`
	EndDate        time.Time           `bson:"endDate" json:"endDate"`
	Status         SponsorStatus       `bson:"status" json:"status"`
	CreatedBy      primitive.ObjectID  `bson:"createdBy" json:"createdBy"`
	CreatedAt      time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// IsVisible reports whether the sponsor is active and inside its campaign window.
func (s *Sponsor) IsVisible(now time.Time) bool {
	return s.Status == SponsorActive && !now.Before(s.StartDate) && !now.After(s.EndDate)
}

type SponsorFilter struct {
	SponsorType string
	Scope       SponsorScope
	Status      SponsorStatus
}
