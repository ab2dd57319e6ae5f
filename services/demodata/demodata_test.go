package demodata

import (
	"testing"

	"goroute/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorsPerMode(t *testing.T) {
	for _, m := range models.Modes {
		assert.Len(t, Operators(m), 3, "mode %s", m)
	}
	assert.Nil(t, Operators(models.Mode("Boat")))
}

func TestOperatorsReturnsCopy(t *testing.T) {
	roster := Operators(models.ModeFlight)
	roster[0] = "mutated"
	assert.Equal(t, "IndiGo", Operators(models.ModeFlight)[0])
}

func TestCityCode(t *testing.T) {
	code, ok := CityCode("  New Delhi ")
	require.True(t, ok)
	assert.Equal(t, "DEL", code)

	_, ok = CityCode("Ooty")
	assert.False(t, ok)
}

func TestHotelsFor(t *testing.T) {
	list := HotelsFor("lucknow")
	require.Len(t, list, 3)
	assert.Equal(t, "Taj Mahal Lucknow", list[0].Name)
	assert.Nil(t, HotelsFor("Ooty"))
	assert.Contains(t, HotelCities(), "Goa")
}
