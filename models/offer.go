package models

import "time"

// Offer is a time-bounded promotion attached to a business.
type Offer struct {
	ID              string    `bson:"id" json:"id"`
	BusinessID      string    `bson:"businessId" json:"businessId"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	DiscountPercent float64   `bson:"discountPercent" json:"discountPercent"`
	ValidFrom       time.Time `bson:"validFrom" json:"validFrom"`
	ValidTo         time.Time `bson:"validTo" json:"validTo"`
	IsActive        bool      `bson:"isActive" json:"isActive"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// ActiveAt reports whether the offer is switched on and t falls inside its validity window.
func (o *Offer) ActiveAt(t time.Time) bool {
	return o.IsActive && !t.Before(o.ValidFrom) && !t.After(o.ValidTo)
}

// OfferView is an offer joined with a minimal business projection.
type OfferView struct {
	Offer
	Business *OfferBusiness `json:"business,omitempty"`
}

// OfferBusiness is the business projection embedded in offer listings.
type OfferBusiness struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Images   []string `json:"images"`
}

// OfferInput is the body of POST /api/offer/:businessId.
type OfferInput struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DiscountPercent float64   `json:"discountPercent"`
	ValidFrom       time.Time `json:"validFrom"`
	ValidTo         time.Time `json:"validTo"`
	IsActive        *bool     `json:"isActive"`
}

// OfferPatch is the body of PUT /api/offer/:id.
type OfferPatch struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	DiscountPercent *float64   `json:"discountPercent"`
	ValidFrom       *time.Time `json:"validFrom"`
	ValidTo         *time.Time `json:"validTo"`
	IsActive        *bool      `json:"isActive"`
}
