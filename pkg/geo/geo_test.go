package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	saoPaulo  = Point{Lat: -23.5505, Lng: -46.6333}
	rioJaneir = Point{Lat: -22.9068, Lng: -43.1729}
)

func TestPoint_Valid(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"origin", Point{0, 0}, true},
		{"poles", Point{90, 180}, true},
		{"negative bounds", Point{-90, -180}, true},
		{"lat too high", Point{90.1, 0}, false},
		{"lat too low", Point{-90.1, 0}, false},
		{"lng too high", Point{0, 180.1}, false},
		{"lng too low", Point{0, -180.1}, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Valid())
		})
	}
}

func TestDistance(t *testing.T) {
	t.Run("zero distance to itself", func(t *testing.T) {
		assert.Equal(t, 0.0, Distance(saoPaulo, saoPaulo))
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, Distance(saoPaulo, rioJaneir), Distance(rioJaneir, saoPaulo), 1e-9)
	})

	t.Run("sao paulo to rio", func(t *testing.T) {
		// Great-circle distance is about 357 km.
		d := Distance(saoPaulo, rioJaneir)
		assert.InDelta(t, 357.0, d, 5.0)
	})

	t.Run("antipodal points near half circumference", func(t *testing.T) {
		d := Distance(Point{0, 0}, Point{0, 180})
		assert.InDelta(t, EarthRadiusKM*3.141592653589793, d, 1.0)
	})
}

func TestWithinRadius(t *testing.T) {
	t.Run("zero radius matches the center", func(t *testing.T) {
		assert.True(t, WithinRadius(saoPaulo, saoPaulo, 0))
	})

	t.Run("inside", func(t *testing.T) {
		assert.True(t, WithinRadius(saoPaulo, rioJaneir, 400))
	})

	t.Run("outside", func(t *testing.T) {
		assert.False(t, WithinRadius(saoPaulo, rioJaneir, 300))
	})

	t.Run("boundary tolerance", func(t *testing.T) {
		d := Distance(saoPaulo, rioJaneir)
		assert.True(t, WithinRadius(saoPaulo, rioJaneir, d))
	})
}
