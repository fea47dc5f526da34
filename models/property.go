package models

import (
	"fmt"
	"strings"
)

// Address is the property address submitted by the quote form.
type Address struct {
	Street string `json:"street" binding:"required"`
	City   string `json:"city" binding:"required"`
	State  string `json:"state" binding:"required"`
	Zip    string `json:"zip" binding:"required"`
}

// FullAddress renders the address the way listing sites expect it.
func (a Address) FullAddress() string {
	return fmt.Sprintf("%s, %s, %s %s", a.Street, a.City, a.State, a.Zip)
}

// CacheKey is a case and whitespace insensitive form of the address.
func (a Address) CacheKey() string {
	return strings.Join(strings.Fields(strings.ToLower(a.FullAddress())), " ")
}

// PropertyDetails is what the quote flow needs to price a cleaning.
type PropertyDetails struct {
	SquareFootage int     `json:"squareFootage"`
	Bedrooms      float64 `json:"bedrooms,omitempty"`
	Bathrooms     float64 `json:"bathrooms,omitempty"`
	Source        string  `json:"-"`
}
