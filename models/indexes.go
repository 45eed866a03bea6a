package models

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	UsersCollection             = "users"
	MunicipalitiesCollection    = "municipalities"
	ReportsCollection           = "reports"
	StaffsCollection            = "staffs"
	SponsorsCollection          = "sponsors"
	EmergencyServicesCollection = "emergency_services"
)

func asc(key string) bson.D  { return bson.D{{Key: key, Value: 1}} }
func desc(key string) bson.D { return bson.D{{Key: key, Value: -1}} }

var collectionIndexes = map[string][]mongo.IndexModel{
	UsersCollection: {
		{Keys: asc("email"), Options: options.Index().SetUnique(true)},
		{Keys: asc("role")},
		{Keys: asc("status")},
		{Keys: asc("municipalityId")},
		{Keys: desc("points")},
	},
	MunicipalitiesCollection: {
		{Keys: asc("location.city")},
		{Keys: asc("adminId")},
		{Keys: asc("isActive")},
		{
			Keys:    bson.D{{Key: "name", Value: 1}, {Key: "location.city", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	},
	ReportsCollection: {
		{Keys: bson.D{{Key: "municipalityId", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: asc("citizenId")},
		{Keys: asc("assignedStaffId")},
		{Keys: desc("createdAt")},
		{Keys: bson.D{{Key: "location.geo", Value: "2dsphere"}}},
	},
	StaffsCollection: {
		{Keys: asc("userId"), Options: options.Index().SetUnique(true)},
		{Keys: asc("employeeId"), Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "municipalityId", Value: 1}, {Key: "department", Value: 1}}},
		{Keys: asc("availability")},
		{Keys: asc("supervisorId")},
		{Keys: bson.D{{Key: "currentLocation", Value: "2dsphere"}}},
	},
	SponsorsCollection: {
		{Keys: bson.D{{Key: "scope", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: asc("municipalityId")},
		{Keys: asc("sponsorType")},
	},
	EmergencyServicesCollection: {
		{Keys: asc("municipalityId")},
		{Keys: asc("category")},
		{Keys: asc("isActive")},
	},
}

// EnsureIndexes creates every collection's indexes. Existing identical
// indexes are left alone by the server.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for name, indexes := range collectionIndexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("creating indexes on %s: %w", name, err)
		}
	}
	return nil
}
