package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flipHexChar changes the first character of a hex string to a different
// valid hex digit.
func flipHexChar(s string) string {
	if s == "" {
		return s
	}
	replacement := byte('0')
	if s[0] == '0' {
		replacement = '1'
	}
	return string(replacement) + s[1:]
}

func TestGatewaySignatureIsDeterministic(t *testing.T) {
	first := gatewaySignature("order_ab12", "pay_cd34", "secret")
	second := gatewaySignature("order_ab12", "pay_cd34", "secret")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64, "hex-encoded SHA-256 output")
}

func TestVerifyGatewaySignatureAcceptsValid(t *testing.T) {
	sig := gatewaySignature("order_ab12", "pay_cd34", "secret")

	assert.True(t, verifyGatewaySignature("order_ab12", "pay_cd34", "secret", sig))
	assert.True(t, verifyGatewaySignature("order_ab12", "pay_cd34", "secret", "  "+sig+"\n"),
		"surrounding whitespace from the client is tolerated")
}

func TestVerifyGatewaySignatureRejectsTampering(t *testing.T) {
	sig := gatewaySignature("order_ab12", "pay_cd34", "secret")

	flipped := flipHexChar(sig)
	require.NotEqual(t, sig, flipped)
	assert.False(t, verifyGatewaySignature("order_ab12", "pay_cd34", "secret", flipped))

	assert.False(t, verifyGatewaySignature("order_other", "pay_cd34", "secret", sig))
	assert.False(t, verifyGatewaySignature("order_ab12", "pay_other", "secret", sig))
	assert.False(t, verifyGatewaySignature("order_ab12", "pay_cd34", "wrong-secret", sig))
	assert.False(t, verifyGatewaySignature("order_ab12", "pay_cd34", "secret", ""))
}

func TestVerifyGatewaySignatureFieldOrderMatters(t *testing.T) {
	// The payload is "{gateway_order_id}|{gateway_payment_id}"; swapping the
	// two must not produce the same MAC.
	forward := gatewaySignature("a", "b", "secret")
	swapped := gatewaySignature("b", "a", "secret")

	assert.NotEqual(t, forward, swapped)
}

func TestGenerateGatewayOrderID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		id := generateGatewayOrderID()
		require.True(t, strings.HasPrefix(id, "order_"), "id %q missing prefix", id)
		seen[id] = true
	}
	assert.Len(t, seen, 20, "ids should not collide")
}
