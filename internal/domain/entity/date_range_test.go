package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aezakmi121/srilalita-pdf-generator/internal/domain/entity"
)

func TestDateRange_FinDeDiaInclusivo(t *testing.T) {
	r := entity.NewDateRange(
		time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
	)

	assert.True(t, r.Contains(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, time.June, 10, 23, 59, 59, 0, time.UTC)),
		"el último instante del día End está dentro del rango")
	assert.False(t, r.Contains(time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC)),
		"el día siguiente ya queda fuera")
	assert.False(t, r.Contains(time.Date(2024, time.May, 31, 23, 59, 59, 0, time.UTC)))
}

func TestDateRange_Formatos(t *testing.T) {
	r := entity.NewDateRange(
		time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
	)

	assert.Equal(t, "01-06-2024 to 30-06-2024", r.Label())
	assert.Equal(t, "01062024_to_30062024", r.Compact())
}
