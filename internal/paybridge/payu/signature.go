package payu

import (
	"crypto/hmac"
	"crypto/md5" //nolint:gosec // algorithm mandated by the OpenPayU protocol
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSignature = errors.New("invalid notification signature")
)

// SignatureVerifier checks the OpenPayU-Signature header against the raw
// notification body. The header is a semicolon-separated key=value list, e.g.
// "sender=checkout;signature=<hex>;algorithm=MD5;content=DOCUMENT", and the
// digest input is the body concatenated with the merchant's second key.
// With no second key configured every notification is accepted unverified.
type SignatureVerifier struct {
	secondKey string
}

func NewSignatureVerifier(secondKey string) *SignatureVerifier {
	return &SignatureVerifier{secondKey: secondKey}
}

func (v *SignatureVerifier) Verify(header string, body []byte) error {
	if v.secondKey == "" {
		return nil
	}
	signature, algorithm := parseSignatureHeader(header)
	if signature == "" {
		return fmt.Errorf("%w: missing signature header", ErrInvalidSignature)
	}
	signed := string(body) + v.secondKey
	var sum []byte
	switch strings.ToUpper(algorithm) {
	case "", "MD5":
		s := md5.Sum([]byte(signed)) //nolint:gosec // see above
		sum = s[:]
	case "SHA-256", "SHA256":
		s := sha256.Sum256([]byte(signed))
		sum = s[:]
	default:
		return fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidSignature, algorithm)
	}
	expected := hex.EncodeToString(sum)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(signature))) {
		return ErrInvalidSignature
	}
	return nil
}

func parseSignatureHeader(header string) (signature, algorithm string) {
	for _, part := range strings.Split(header, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch key {
		case "signature":
			signature = value
		case "algorithm":
			algorithm = value
		}
	}
	return signature, algorithm
}
