package models

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// NewGeoPoint builds a GeoJSON point from a longitude/latitude pair.
func NewGeoPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Role is the closed set of user roles.
type Role string

const (
	RoleCustomer      Role = "customer"
	RoleBusinessOwner Role = "businessOwner"
	RoleAdmin         Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleBusinessOwner, RoleAdmin:
		return true
	}
	return false
}

// Caller is the identity resolved by the auth middleware. A nil *Caller is an anonymous request.
type Caller struct {
	ID   string
	Role Role
}

// IsAdmin is nil-safe.
func (c *Caller) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

// Page is an optional window over a list; zero Limit means unbounded.
type Page struct {
	Page  int
	Limit int
}
