package models

// Channel config keys as stored per sales channel.
const (
	ConfigKeyShopID     = "shopId"
	ConfigKeyAPISecret  = "apiSecret"
	ConfigKeyDomainName = "domainName"
)

// ChannelConfig is the raw key/value settings stored for one sales channel.
// A nil or empty map means nothing is configured.
type ChannelConfig map[string]string

// Lookup reports whether key is set to a non-empty value.
func (c ChannelConfig) Lookup(key string) (string, bool) {
	value, ok := c[key]
	if !ok || value == "" {
		return "", false
	}

	return value, true
}

func (c ChannelConfig) ShopID() string {
	return c[ConfigKeyShopID]
}

func (c ChannelConfig) APISecret() string {
	return c[ConfigKeyAPISecret]
}

func (c ChannelConfig) DomainName() string {
	return c[ConfigKeyDomainName]
}
