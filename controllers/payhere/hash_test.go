package payhereControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeHashDeterministic(t *testing.T) {
	first := ComputeHash("243630", "ORDER_abc", 2500, "LKR", "secret")

	assert.Len(t, first, 32)
	assert.Equal(t, "7E3B710C862F435E7DFAA8DFA75E44B2", first)

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeHash("243630", "ORDER_abc", 2500, "LKR", "secret"))
	}
}

func TestComputeHashSensitiveToFields(t *testing.T) {
	base := ComputeHash("243630", "ORDER_abc", 2500, "LKR", "secret")

	assert.NotEqual(t, base, ComputeHash("243631", "ORDER_abc", 2500, "LKR", "secret"))
	assert.NotEqual(t, base, ComputeHash("243630", "ORDER_abd", 2500, "LKR", "secret"))
	assert.NotEqual(t, base, ComputeHash("243630", "ORDER_abc", 2500.01, "LKR", "secret"))
	assert.NotEqual(t, base, ComputeHash("243630", "ORDER_abc", 2500, "USD", "secret"))
	assert.NotEqual(t, base, ComputeHash("243630", "ORDER_abc", 2500, "LKR", "secret2"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "2500.00", FormatAmount(2500))
	assert.Equal(t, "2500.50", FormatAmount(2500.5))
	assert.Equal(t, "0.99", FormatAmount(0.99))
	assert.Equal(t, "1999.90", FormatAmount(1999.9))
}

func TestNotifySignature(t *testing.T) {
	sig := NotifySignature("243630", "ORDER_abc", "2500.00", "LKR", "2", "secret")
	assert.Equal(t, "A1500C85B8AF90B78BD8564F93B5AF5F", sig)

	// The webhook signature uses the amount string verbatim.
	assert.NotEqual(t, sig, NotifySignature("243630", "ORDER_abc", "2500.0", "LKR", "2", "secret"))
}
