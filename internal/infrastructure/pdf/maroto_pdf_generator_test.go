package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0", formatMoney("0"))
	assert.Equal(t, "950", formatMoney("950"))
	assert.Equal(t, "25.000", formatMoney("25000"))
	assert.Equal(t, "1.000.000", formatMoney("1000000"))
	assert.Equal(t, "11.450.000", formatMoney("11450000"))
	assert.Equal(t, "-25.000", formatMoney("-25000"))
	assert.Equal(t, "-950", formatMoney("-950"))
}
