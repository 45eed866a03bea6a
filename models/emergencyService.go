package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var EmergencyServiceNames = []string{
	"Police", "Ambulance", "Fire Brigade", "Women Helpline",
	"Child Helpline", "Disaster Management", "Traffic Police",
}

var EmergencyCategories = []string{"police", "medical", "fire", "helpline", "traffic", "disaster"}

type ServiceLocation struct {
	Address string   `bson:"address,omitempty" json:"address,omitempty"`
	City    string   `bson:"city,omitempty" json:"city,omitempty"`
	Lat     *float64 `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng     *float64 `bson:"lng,omitempty" json:"lng,omitempty"`
}

// EmergencyService is a directory entry. A nil MunicipalityID means nationwide.
type EmergencyService struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name            string              `bson:"name" json:"name"`
	Phone           string              `bson:"phone" json:"phone"`
	AltPhone        string              `bson:"altPhone,omitempty" json:"altPhone,omitempty"`
	Whatsapp        string              `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
	Email           string              `bson:"email,omitempty" json:"email,omitempty"`
	Logo            string              `bson:"logo,omitempty" json:"logo,omitempty"`
	Description     string              `bson:"description,omitempty" json:"description,omitempty"`
	Location        ServiceLocation     `bson:"location" json:"location"`
	MunicipalityID  *primitive.ObjectID `bson:"municipalityId,omitempty" json:"municipalityId,omitempty"`
	Category        string              `bson:"category" json:"category"`
	IsActive        bool                `bson:"isActive" json:"isActive"`
	Is24x7          bool                `bson:"is24x7" json:"is24x7"`
	TotalCalls      int                 `bson:"totalCalls" json:"totalCalls"`
	AvgResponseTime *float64            `bson:"avgResponseTime,omitempty" json:"avgResponseTime,omitempty"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type EmergencyServiceFilter struct {
	MunicipalityID *primitive.ObjectID
	Category       string
	IsActive       *bool
	Search         string
}
