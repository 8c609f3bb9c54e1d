package payu

import (
	"crypto/md5" //nolint:gosec // matches the verifier
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

const secondKey = "second-key"

func TestVerifyMD5(t *testing.T) {
	body := []byte(`{"order":{"extOrderId":"ECW-1"}}`)
	sum := md5.Sum([]byte(string(body) + secondKey)) //nolint:gosec // matches the verifier
	header := fmt.Sprintf("sender=checkout;signature=%s;algorithm=MD5;content=DOCUMENT", hex.EncodeToString(sum[:]))

	verifier := NewSignatureVerifier(secondKey)
	assert.NoError(t, verifier.Verify(header, body))
}

func TestVerifySHA256(t *testing.T) {
	body := []byte(`{"order":{"extOrderId":"ECW-1"}}`)
	sum := sha256.Sum256([]byte(string(body) + secondKey))
	header := fmt.Sprintf("signature=%s;algorithm=SHA-256", hex.EncodeToString(sum[:]))

	verifier := NewSignatureVerifier(secondKey)
	assert.NoError(t, verifier.Verify(header, body))
}

func TestVerifyMismatch(t *testing.T) {
	verifier := NewSignatureVerifier(secondKey)
	err := verifier.Verify("signature=deadbeef;algorithm=MD5", []byte(`{}`))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyMissingHeader(t *testing.T) {
	verifier := NewSignatureVerifier(secondKey)
	err := verifier.Verify("", []byte(`{}`))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyUnsupportedAlgorithm(t *testing.T) {
	verifier := NewSignatureVerifier(secondKey)
	err := verifier.Verify("signature=deadbeef;algorithm=CRC32", []byte(`{}`))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifyDisabledWithoutKey(t *testing.T) {
	verifier := NewSignatureVerifier("")
	assert.NoError(t, verifier.Verify("", []byte(`{}`)))
}
