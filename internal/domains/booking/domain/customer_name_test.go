package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"consulta/internal/domains/booking/domain"
)

func TestNewCustomerName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr string
	}{
		{name: "plain", raw: "Max Mustermann", want: "Max Mustermann"},
		{name: "trims surrounding whitespace", raw: "  Max Mustermann  ", want: "Max Mustermann"},
		{name: "single character", raw: "M", want: "M"},
		{name: "exactly 255 characters", raw: strings.Repeat("a", 255), want: strings.Repeat("a", 255)},
		{name: "unicode counted in characters not bytes", raw: strings.Repeat("ü", 255), want: strings.Repeat("ü", 255)},
		{name: "empty", raw: "", wantErr: "Customer name cannot be empty"},
		{name: "whitespace only", raw: "   \t ", wantErr: "Customer name cannot be empty"},
		{name: "256 characters", raw: strings.Repeat("a", 256), wantErr: "Customer name cannot exceed 255 characters"},
		{name: "256 unicode characters", raw: strings.Repeat("ü", 256), wantErr: "Customer name cannot exceed 255 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, err := domain.NewCustomerName(tt.raw)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, name.String())
		})
	}
}

func TestNewCustomerName_TrimThenMeasure(t *testing.T) {
	// 255 characters plus surrounding whitespace is still valid after trimming
	raw := "  " + strings.Repeat("a", 255) + "  "

	name, err := domain.NewCustomerName(raw)

	assert.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 255), name.String())
}
