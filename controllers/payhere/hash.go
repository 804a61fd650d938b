package payhereControllers

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"github.com/shopspring/decimal"
)

// PayHere's hash contract: every field is concatenated in a fixed order and
// run through uppercased md5, with the merchant secret pre-hashed the same
// way. Field order, two-decimal amount formatting and casing are byte-exact
// parts of the contract; the gateway rejects anything else.

func md5Upper(s string) string {
	sum := md5.Sum([]byte(s))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// FormatAmount renders an amount with exactly two decimal places, as the
// gateway expects it inside the hash and the checkout form.
func FormatAmount(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// ComputeHash produces the outbound signature for initiating a checkout.
func ComputeHash(merchantID, orderID string, amount float64, currency, merchantSecret string) string {
	return md5Upper(merchantID + orderID + FormatAmount(amount) + currency + md5Upper(merchantSecret))
}

// NotifySignature recomputes the md5sig PayHere sends with a webhook. The
// amount and currency are used verbatim as received, not reformatted.
func NotifySignature(merchantID, orderID, amount, currency, statusCode, merchantSecret string) string {
	return md5Upper(merchantID + orderID + amount + currency + statusCode + md5Upper(merchantSecret))
}
