package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaterPricePerPersonOrDefault(t *testing.T) {
	s := &HostelSettingModel{}
	assert.Equal(t, 100, s.WaterPricePerPersonOrDefault())

	s.HostelSettingWaterPricePerPerson = -5
	assert.Equal(t, 100, s.WaterPricePerPersonOrDefault())

	s.HostelSettingWaterPricePerPerson = 150
	assert.Equal(t, 150, s.WaterPricePerPersonOrDefault())
}
