// Package session holds the wire types of the wallet login flow.
package session

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// NonceBytes is the amount of randomness in a login nonce.
const NonceBytes = 32

var nonceInMessage = regexp.MustCompile(`Nonce: ([a-f0-9]+)`)

// LoginMessage is the text a wallet signs to prove ownership of an address.
func LoginMessage(nonce string, at time.Time) string {
	return fmt.Sprintf("Please sign this message to authenticate with RWA DEX.\n\nNonce: %s\nTimestamp: %s",
		nonce, at.UTC().Format(time.RFC3339))
}

// NonceFromMessage extracts the nonce embedded in a signed login message.
func NonceFromMessage(message string) (string, bool) {
	m := nonceInMessage.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// FormatExpiry renders a token lifetime the way clients configure it,
// whole days as "7d" and anything else as a Go duration.
func FormatExpiry(d time.Duration) string {
	const day = 24 * time.Hour
	if d >= day && d%day == 0 {
		return strconv.FormatInt(int64(d/day), 10) + "d"
	}
	return d.String()
}

// NonceResponse carries a fresh nonce and the message to sign.
type NonceResponse struct {
	Nonce   string `json:"nonce"`
	Message string `json:"message"`
}

// ConnectRequest proves control of Address by signing Message.
type ConnectRequest struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
	Message   string `json:"message"`
}

// ConnectResponse returns the session token.
type ConnectResponse struct {
	Token     string    `json:"token"`
	Address   string    `json:"address"`
	ExpiresIn string    `json:"expiresIn"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// VerifyResponse describes a live session token.
type VerifyResponse struct {
	Valid     bool      `json:"valid"`
	Address   string    `json:"address"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// DisconnectResponse acknowledges a logout.
type DisconnectResponse struct {
	Message string `json:"message"`
}
