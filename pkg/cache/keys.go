package cache

import "strings"

// Key classes. The class is the first segment of every key.
const (
	ClassNonce     = "nonce"
	ClassAsset     = "asset"
	ClassAssets    = "assets"
	ClassRevoked   = "revoked"
	ClassRateLimit = "ratelimit"
)

// Fixed keys.
const (
	AllAssetsKey      = "assets:all"
	FeaturedAssetsKey = "assets:featured"
)

// NonceKey addresses the pending login nonce of a wallet.
func NonceKey(address string) string {
	return ClassNonce + ":" + strings.ToLower(address)
}

// AssetKey addresses a cached asset detail.
func AssetKey(address string) string {
	return ClassAsset + ":" + strings.ToLower(address)
}

// FilteredAssetsKey addresses a cached listing page; query must be canonical.
func FilteredAssetsKey(query string) string {
	return ClassAssets + ":filtered:" + query
}

// RevokedSessionKey marks a session token id as revoked.
func RevokedSessionKey(tokenID string) string {
	return ClassRevoked + ":" + tokenID
}

// RateLimitKey addresses the request counter of a client.
func RateLimitKey(client string) string {
	return ClassRateLimit + ":" + client
}

// KeyClass returns the class segment of key, used as a metrics label.
func KeyClass(key string) string {
	class, _, _ := strings.Cut(key, ":")
	return class
}
