package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  int64
	}{
		{"whole dollars", 99, 9900},
		{"cents", 49.99, 4999},
		{"rounds half up", 10.005, 1001},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MinorUnits(tt.price))
		})
	}
}
