package flows

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthTitle(t *testing.T) {
	assert.Equal(t, "Resumen de Febrero 2024 (01.02 a 29.02)", MonthTitle(2024, time.February))
}
