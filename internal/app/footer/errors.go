package footer

import (
	"errors"
	"strings"

	"belco/shopware-widget/internal/models"
)

var ErrConfigIncomplete = errors.New("widget configuration incomplete")

var requiredKeys = []string{
	models.ConfigKeyShopID,
	models.ConfigKeyAPISecret,
	models.ConfigKeyDomainName,
}

type MissingConfigError struct {
	SalesChannelID string
	Missing        []string
}

func (e *MissingConfigError) Error() string {
	return "The following configuration items are missing: " + strings.Join(e.Missing, ", ")
}

func (e *MissingConfigError) Unwrap() error {
	return ErrConfigIncomplete
}

// Validate reports every required key the channel config lacks.
func Validate(salesChannelID string, config models.ChannelConfig) error {
	var missing []string
	for _, key := range requiredKeys {
		if _, ok := config.Lookup(key); !ok {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return &MissingConfigError{SalesChannelID: salesChannelID, Missing: missing}
	}

	return nil
}
