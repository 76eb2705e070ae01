package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCNIC(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "dashed", in: "35202-1234567-1", want: "35202-1234567-1"},
		{name: "digits only", in: "3520212345671", want: "35202-1234567-1"},
		{name: "padded", in: "  3520212345671 ", want: "35202-1234567-1"},
		{name: "spaced groups", in: "35202 1234567 1", want: "35202-1234567-1"},
		{name: "too short", in: " 35202-123 ", want: "35202-123"},
		{name: "empty", in: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCNIC(tt.in))
		})
	}
}

func TestDepartment_Prefix(t *testing.T) {
	assert.Equal(t, "COM", DeptComputerScience.Prefix())
	assert.Equal(t, "CIT", Department("City and Regional Planning").Prefix())
}
