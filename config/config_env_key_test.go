package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"redis": map[string]any{
			"password": "",
		},
		"directory": map[string]any{
			"missingServiceAreaPolicy": "exclude",
			"resolveWorkers":           8,
		},
		"http": map[string]any{
			"maxRequestBodySize": "100KB",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "REDIS_PASSWORD", want: "redis.password"},
		{envKey: "DIRECTORY_MISSINGSERVICEAREAPOLICY", want: "directory.missingServiceAreaPolicy"},
		{envKey: "DIRECTORY_RESOLVEWORKERS", want: "directory.resolveWorkers"},
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
