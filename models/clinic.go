package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Clinic is an immutable record imported from the location dataset. Clinics
// are read-only at request time; the index built over them is never mutated
// concurrently with reads.
type Clinic struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Address     string             `bson:"address" json:"address"`
	City        string             `bson:"city" json:"city"`
	Area        string             `bson:"area" json:"area"`
	LocationKey string             `bson:"location_key" json:"location_key"`
	Timing      string             `bson:"timing,omitempty" json:"timing,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Specialties []string           `bson:"specialties,omitempty" json:"specialties,omitempty"`
	Fees        string             `bson:"fees,omitempty" json:"fees,omitempty"`
	Pincode     string             `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Latitude    float64            `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude   float64            `bson:"longitude,omitempty" json:"longitude,omitempty"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt   time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// ParseLocationKey splits a canonical "City_Area_SubArea" token into its city
// and human-readable area, e.g. "Lucknow_Gomti_Nagar" -> ("Lucknow", "Gomti Nagar").
func ParseLocationKey(key string) (city, area string) {
	parts := strings.Split(key, "_")
	if len(parts) == 0 {
		return "", ""
	}
	city = parts[0]
	if len(parts) > 1 {
		area = strings.Join(parts[1:], " ")
	}
	return city, area
}

// QueryKind classifies how a location query should be looked up.
type QueryKind string

const (
	QueryPincode     QueryKind = "pincode"
	QueryLocationKey QueryKind = "location_key"
	QueryArea        QueryKind = "area"
)

// LocationQuery is the classified form of free-form location text.
type LocationQuery struct {
	Kind   QueryKind
	Value  string
	Tokens []string
}
