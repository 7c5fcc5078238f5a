package models

// Address is a single address candidate as returned by the geocoding provider.
// Every field is optional; Latitude and Longitude are pointers so that a missing
// coordinate can be told apart from the equator or the prime meridian.
type Address struct {
	AddressLabel     string   `json:"addressLabel,omitempty"`
	Number           string   `json:"number,omitempty"`
	Street           string   `json:"street,omitempty"`
	City             string   `json:"city,omitempty"`
	County           string   `json:"county,omitempty"`
	State            string   `json:"state,omitempty"`
	StateCode        string   `json:"stateCode,omitempty"`
	PostalCode       string   `json:"postalCode,omitempty"`
	Country          string   `json:"country,omitempty"`
	CountryCode      string   `json:"countryCode,omitempty"`
	FormattedAddress string   `json:"formattedAddress,omitempty"`
	Layer            string   `json:"layer,omitempty"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
}

// CacheEntry is one persisted row of the geocode cache. Lat and Lon hold the
// normalized query coordinate that produced Address, not the address's own
// position.
type CacheEntry struct {
	Lat     string  `json:"lat"`
	Lon     string  `json:"lon"`
	Address Address `json:"address"`
}

// ResolvedAddress is the response record: the normalized query coordinate, the
// address and its distance in meters from the query coordinate.
type ResolvedAddress struct {
	Lat      string  `json:"lat"`
	Lon      string  `json:"lon"`
	Distance float64 `json:"distance"`
	Address  Address `json:"address"`
}

// BulkReverseRequest is a single item of a bulk reverse geocoding request
type BulkReverseRequest struct {
	Lat string `json:"lat" binding:"required"`
	Lon string `json:"lon" binding:"required"`
}
