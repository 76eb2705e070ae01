package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_MatchesConfiguredKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"card": map[string]any{
			"validityYears":         4,
			"maxAllocationAttempts": 5,
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"registration": map[string]any{
			"institutionalEmailDomain": "student.uet.edu.pk",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "CARD_VALIDITYYEARS", want: "card.validityYears"},
		{envKey: "CARD_MAXALLOCATIONATTEMPTS", want: "card.maxAllocationAttempts"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "REGISTRATION_INSTITUTIONALEMAILDOMAIN", want: "registration.institutionalEmailDomain"},
		{envKey: "ADMIN_EMAIL", want: "admin.email"},
		{envKey: "UPLOAD_MAXPHOTOSIZE", want: "upload.maxphotosize"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing), tt.envKey)
	}
}
