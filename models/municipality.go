package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MunicipalityLocation struct {
	City        string       `bson:"city" json:"city"`
	Province    string       `bson:"province" json:"province"`
	Coordinates *Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
}

type MunicipalitySettings struct {
	AutoAssignReports bool `bson:"autoAssignReports" json:"autoAssignReports"`
	CitizenRewards    bool `bson:"citizenRewards" json:"citizenRewards"`
	PointValue        int  `bson:"pointValue" json:"pointValue"`
}

// DefaultMunicipalitySettings rewards citizens at one point per point awarded.
func DefaultMunicipalitySettings() MunicipalitySettings {
	return MunicipalitySettings{AutoAssignReports: false, CitizenRewards: true, PointValue: 1}
}

// Municipality is a tenant with a rectangular jurisdiction
type Municipality struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name             string               `bson:"name" json:"name"`
	Location         MunicipalityLocation `bson:"location" json:"location"`
	BoundaryBox      *BoundaryBox         `bson:"boundaryBox,omitempty" json:"boundaryBox,omitempty"`
	AdminID          primitive.ObjectID   `bson:"adminId" json:"adminId"`
	ContactEmail     string               `bson:"contactEmail" json:"contactEmail"`
	ContactPhone     string               `bson:"contactPhone" json:"contactPhone"`
	Settings         MunicipalitySettings `bson:"settings" json:"settings"`
	ReportCategories []ReportCategory     `bson:"reportCategories" json:"reportCategories"`
	IsActive         bool                 `bson:"isActive" json:"isActive"`
	CreatedAt        time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// AcceptsCategory reports whether reports of category c may be filed here.
func (m *Municipality) AcceptsCategory(c ReportCategory) bool {
	for _, accepted := range m.ReportCategories {
		if accepted == c {
			return true
		}
	}
	return false
}

// MunicipalitySummary is the cached public listing entry.
type MunicipalitySummary struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Name     string             `bson:"name" json:"name"`
	City     string             `bson:"city" json:"city"`
	Province string             `bson:"province" json:"province"`
}

type MunicipalityFilter struct {
	City     string
	Province string
	Search   string
}

// CountByKey is one row of a $group aggregation.
type CountByKey struct {
	Key   string `bson:"_id" json:"key"`
	Count int64  `bson:"count" json:"count"`
}
