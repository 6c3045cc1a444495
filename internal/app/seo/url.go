package seo

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/valyala/fasthttp"
)

const ProductDetailRoute = "frontend.detail.page"

// URLBuilder generates storefront page URLs and rewrites them onto the
// domain configured for a sales channel.
type URLBuilder struct {
	baseURL string
}

func NewURLBuilder(baseURL string) *URLBuilder {
	return &URLBuilder{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (b *URLBuilder) Generate(route string, params map[string]string) (string, error) {
	switch route {
	case ProductDetailRoute:
		productID, ok := params["productId"]
		if !ok || productID == "" {
			return "", fmt.Errorf("route %s requires a productId", route)
		}

		return b.baseURL + "/detail/" + url.PathEscape(productID), nil
	}

	return "", fmt.Errorf("unknown route %s", route)
}

// Replace moves rawURL onto domainName. An empty domainName leaves rawURL
// untouched.
func (b *URLBuilder) Replace(rawURL, domainName string) (string, error) {
	if domainName == "" {
		return rawURL, nil
	}

	uri := fasthttp.AcquireURI()
	defer fasthttp.ReleaseURI(uri)

	if err := uri.Parse(nil, []byte(rawURL)); err != nil {
		return "", fmt.Errorf("failed to parse url %s: %w", rawURL, err)
	}

	scheme, host := splitDomain(domainName)
	uri.SetScheme(scheme)
	uri.SetHost(host)

	return uri.String(), nil
}

// ProductURL is the canonical detail page URL of productID on domainName.
func (b *URLBuilder) ProductURL(productID, domainName string) (string, error) {
	generated, err := b.Generate(ProductDetailRoute, map[string]string{"productId": productID})
	if err != nil {
		return "", err
	}

	return b.Replace(generated, domainName)
}

func splitDomain(domainName string) (string, string) {
	scheme := "https"
	host := domainName

	if rest, ok := strings.CutPrefix(host, "https://"); ok {
		host = rest
	} else if rest, ok := strings.CutPrefix(host, "http://"); ok {
		scheme = "http"
		host = rest
	}

	return scheme, strings.TrimRight(host, "/")
}
