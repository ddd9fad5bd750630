package building_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/org-directory/modules/building/domain/aggregates/building"
	"github.com/iota-uz/org-directory/pkg/serrors"
)

func TestCoordinatesFilter_Ok(t *testing.T) {
	ptr := func(v float64) *float64 { return &v }

	cases := []struct {
		name   string
		filter building.CoordinatesFilter
		fields []string
	}{
		{"valid box", building.NewCoordinatesFilter(50, 60, 30, 40), nil},
		{"zero bounds are present", building.NewCoordinatesFilter(0, 0, 0, 0), nil},
		{"missing bound", building.CoordinatesFilter{LatitudeGte: ptr(1), LatitudeLte: ptr(2), LongitudeGte: ptr(3)}, []string{"longitudeLte"}},
		{"latitude out of range", building.NewCoordinatesFilter(-91, 10, 0, 1), []string{"latitudeGte"}},
		{"longitude out of range", building.NewCoordinatesFilter(0, 1, 0, 181), []string{"longitudeLte"}},
		{"inverted box", building.NewCoordinatesFilter(10, 5, 20, 1), []string{"latitudeGte", "longitudeGte"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.filter.Ok()
			if tc.fields == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, serrors.UnprocessableEntity)
			var se *serrors.Error
			require.ErrorAs(t, err, &se)
			for _, field := range tc.fields {
				assert.Contains(t, se.Fields, field)
			}
		})
	}
}

func TestCoordinatesFilter_ContainsIsInclusive(t *testing.T) {
	f := building.NewCoordinatesFilter(55, 56, 37, 38)
	assert.True(t, f.Contains(building.New("edge", 55, 38)))
	assert.True(t, f.Contains(building.New("inside", 55.7558, 37.6173)))
	assert.False(t, f.Contains(building.New("north", 56.01, 37.5)))
}

func TestCreateDTO_Ok(t *testing.T) {
	dto := &building.CreateDTO{Address: "  г. Омск, ул. Ленина 5 ", Latitude: 54.9924, Longitude: 73.3686}
	require.NoError(t, dto.Ok())
	assert.Equal(t, "г. Омск, ул. Ленина 5", dto.Address)

	err := (&building.CreateDTO{Latitude: 100}).Ok()
	var se *serrors.Error
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Fields, "address")
	assert.Contains(t, se.Fields, "latitude")
}
