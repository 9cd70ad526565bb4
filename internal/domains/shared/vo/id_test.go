package vo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"consulta/internal/domains/shared/vo"
)

func TestNewBookingID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr string
	}{
		{
			name: "valid lowercase",
			raw:  "9d4e8c2a-1b3d-4f5e-9a8c-7b6e5d4c3a2b",
			want: "9d4e8c2a-1b3d-4f5e-9a8c-7b6e5d4c3a2b",
		},
		{
			name: "uppercase normalized to lowercase",
			raw:  "9D4E8C2A-1B3D-4F5E-9A8C-7B6E5D4C3A2B",
			want: "9d4e8c2a-1b3d-4f5e-9a8c-7b6e5d4c3a2b",
		},
		{
			name: "nil uuid is syntactically valid",
			raw:  "00000000-0000-0000-0000-000000000000",
			want: "00000000-0000-0000-0000-000000000000",
		},
		{
			name:    "not a uuid",
			raw:     "not-a-uuid",
			wantErr: "Invalid UUID format: not-a-uuid",
		},
		{
			name:    "missing hyphens",
			raw:     "9d4e8c2a1b3d4f5e9a8c7b6e5d4c3a2b",
			wantErr: "Invalid UUID format: 9d4e8c2a1b3d4f5e9a8c7b6e5d4c3a2b",
		},
		{
			name:    "non-hex characters",
			raw:     "zzzze8c2a-1b3d-4f5e-9a8c-7b6e5d4c3a",
			wantErr: "Invalid UUID format: zzzze8c2a-1b3d-4f5e-9a8c-7b6e5d4c3a",
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: "Invalid UUID format: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := vo.NewBookingID(tt.raw)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, id.String())
		})
	}
}

func TestGenerateBookingID(t *testing.T) {
	seen := map[string]bool{}

	for range 100 {
		id := vo.GenerateBookingID()

		// generated ids round-trip through validation
		parsed, err := vo.NewBookingID(id.String())
		assert.NoError(t, err)
		assert.True(t, id.Equals(parsed))

		assert.False(t, seen[id.String()], "generated a duplicate identity")
		seen[id.String()] = true
	}
}

func TestBookingID_Equals(t *testing.T) {
	a, err := vo.NewBookingID("9d4e8c2a-1b3d-4f5e-9a8c-7b6e5d4c3a2b")
	assert.NoError(t, err)

	b, err := vo.NewBookingID("9D4E8C2A-1B3D-4F5E-9A8C-7B6E5D4C3A2B")
	assert.NoError(t, err)

	// case differences vanish at construction
	assert.True(t, a.Equals(b))

	c := vo.GenerateBookingID()
	assert.False(t, a.Equals(c))
}

func TestNewConsultantID(t *testing.T) {
	id, err := vo.NewConsultantID("9d4e8c2a-1b3d-4f5e-9a8c-7b6e5d4c3a2b")
	assert.NoError(t, err)
	assert.Equal(t, "9d4e8c2a-1b3d-4f5e-9a8c-7b6e5d4c3a2b", id.String())

	_, err = vo.NewConsultantID("invalid")
	assert.EqualError(t, err, "Invalid UUID format: invalid")
}

func TestGenerateConsultantID(t *testing.T) {
	a := vo.GenerateConsultantID()
	b := vo.GenerateConsultantID()

	assert.False(t, a.Equals(b))

	_, err := vo.NewConsultantID(a.String())
	assert.NoError(t, err)
}
