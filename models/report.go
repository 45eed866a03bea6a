package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportCategory enum
type ReportCategory string

const (
	CategoryRoad            ReportCategory = "road"
	CategoryElectricity     ReportCategory = "electricity"
	CategoryWater           ReportCategory = "water"
	CategorySanitation      ReportCategory = "sanitation"
	CategorySafety          ReportCategory = "safety"
	CategoryEmergency       ReportCategory = "emergency"
	CategoryIllegalActivity ReportCategory = "illegal_activity"
)

// AllReportCategories is also the default category list of a new municipality.
var AllReportCategories = []ReportCategory{
	CategoryRoad, CategoryElectricity, CategoryWater, CategorySanitation,
	CategorySafety, CategoryEmergency, CategoryIllegalActivity,
}

// Severity enum
type Severity string

const (
	SeverityLow       Severity = "low"
	SeverityMedium    Severity = "medium"
	SeverityHigh      Severity = "high"
	SeverityEmergency Severity = "emergency"
)

// Priority enum
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type ReportLocation struct {
	Address     string       `bson:"address,omitempty" json:"address,omitempty"`
	Coordinates *Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
	Ward        string       `bson:"ward,omitempty" json:"ward,omitempty"`
	// Geo mirrors Coordinates for the 2dsphere index.
	Geo *GeoPoint `bson:"geo,omitempty" json:"-"`
}

// ImageValidation summarises the photo GPS classification of a submission.
type ImageValidation struct {
	TotalImages       int  `bson:"totalImages" json:"totalImages"`
	ImagesWithGPS     int  `bson:"imagesWithGPS" json:"imagesWithGPS"`
	ImagesNoGPS       int  `bson:"imagesNoGPS" json:"imagesNoGPS"`
	AllWithinBoundary bool `bson:"allWithinBoundary" json:"allWithinBoundary"`
}

type ValidationInfo struct {
	LocationValidated bool            `bson:"locationValidated" json:"locationValidated"`
	BoundaryBox       *BoundaryBox    `bson:"boundaryBox,omitempty" json:"boundaryBox,omitempty"`
	ImageValidation   ImageValidation `bson:"imageValidation" json:"imageValidation"`
}

// Report is a civic complaint filed by a citizen against a municipality
type Report struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title           string              `bson:"title" json:"title"`
	Description     string              `bson:"description" json:"description"`
	Category        ReportCategory      `bson:"category" json:"category"`
	Severity        Severity            `bson:"severity" json:"severity"`
	Priority        Priority            `bson:"priority" json:"priority"`
	Location        ReportLocation      `bson:"location" json:"location"`
	Photos          []string            `bson:"photos" json:"photos"`
	Videos          []string            `bson:"videos" json:"videos"`
	Status          ReportStatus        `bson:"status" json:"status"`
	CitizenID       primitive.ObjectID  `bson:"citizenId" json:"citizenId"`
	MunicipalityID  primitive.ObjectID  `bson:"municipalityId" json:"municipalityId"`
	AssignedStaffID *primitive.ObjectID `bson:"assignedStaffId,omitempty" json:"assignedStaffId,omitempty"`
	DueDate         *time.Time          `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	AssignmentNotes string              `bson:"assignmentNotes,omitempty" json:"assignmentNotes,omitempty"`
	AssignedAt      *time.Time          `bson:"assignedAt,omitempty" json:"assignedAt,omitempty"`
	InProgressAt    *time.Time          `bson:"inProgressAt,omitempty" json:"inProgressAt,omitempty"`
	ResolvedAt      *time.Time          `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
	PointsAwarded   int                 `bson:"pointsAwarded" json:"pointsAwarded"`
	ValidationInfo  *ValidationInfo     `bson:"validationInfo,omitempty" json:"validationInfo,omitempty"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// ReportFilter narrows report listings. Zero values are ignored.
type ReportFilter struct {
	MunicipalityID  *primitive.ObjectID
	CitizenID       *primitive.ObjectID
	AssignedStaffID *primitive.ObjectID
	Category        ReportCategory
	Status          ReportStatus
	Severity        Severity
	Priority        Priority
	From            *time.Time
	To              *time.Time
	Search          string
	// Sort is newest (default), oldest, priority or dueDate.
	Sort string
}
