package models

type Address struct {
	ID          string `json:"id"`
	Street      string `json:"street,omitempty"`
	ZipCode     string `json:"zipcode,omitempty"`
	City        string `json:"city,omitempty"`
	CountryISO  string `json:"countryIso,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type Customer struct {
	ID                    string   `json:"id"`
	FirstName             string   `json:"firstName"`
	LastName              string   `json:"lastName"`
	Email                 string   `json:"email"`
	FirstLogin            bool     `json:"firstLogin"`
	DefaultBillingAddress *Address `json:"defaultBillingAddress,omitempty"`
}

// CustomerProfile is the customer section of the widget payload.
//
// Country carries the session currency ISO code, not a country. The widget
// service has always received it that way.
type CustomerProfile struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Country     string `json:"country"`
	SignedUp    bool   `json:"signedUp"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}
