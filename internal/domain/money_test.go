package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "NT$0", FormatMoney(0))
	assert.Equal(t, "NT$999", FormatMoney(999))
	assert.Equal(t, "NT$1,234,567", FormatMoney(1234567))
	assert.Equal(t, "-NT$22,880", FormatMoney(-22880))
	assert.Equal(t, "900,000,000", FormatAmount(900000000))
}
