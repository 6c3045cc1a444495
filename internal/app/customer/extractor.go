package customer

import "belco/shopware-widget/internal/models"

// Extract returns the profile of the customer logged into salesContext, or
// nil for guests.
func Extract(salesContext *models.SalesChannelContext) *models.CustomerProfile {
	if salesContext == nil || salesContext.Customer == nil {
		return nil
	}

	customer := salesContext.Customer
	profile := &models.CustomerProfile{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
		Country:   salesContext.CurrencyISO,
		SignedUp:  customer.FirstLogin,
	}

	if address := customer.DefaultBillingAddress; address != nil && address.PhoneNumber != "" {
		profile.PhoneNumber = address.PhoneNumber
	}

	return profile
}
