package config

import "testing"

func TestCanonicalizeEnvKey(t *testing.T) {
	t.Parallel()

	existing := map[string]any{
		"env": map[string]any{
			"serviceName": "petstar",
			"log": map[string]any{
				"pretty": true,
			},
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"mail": map[string]any{
			"publicBaseUrl": "",
		},
	}

	cases := []struct {
		name string
		key  string
		want string
	}{
		{
			name: "nested camelCase key keeps yaml spelling",
			key:  "ENV_SERVICENAME",
			want: "env.serviceName",
		},
		{
			name: "deeply nested key",
			key:  "ENV_LOG_PRETTY",
			want: "env.log.pretty",
		},
		{
			name: "camelCase parent",
			key:  "SECRETKEY_SESSION",
			want: "secretKey.session",
		},
		{
			name: "multi-word leaf",
			key:  "MAIL_PUBLICBASEURL",
			want: "mail.publicBaseUrl",
		},
		{
			name: "unknown key falls back to lowercase path",
			key:  "MAIL_HOST",
			want: "mail.host",
		},
		{
			name: "fully unknown path",
			key:  "SOMETHING_ELSE",
			want: "something.else",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := canonicalizeEnvKey(tc.key, existing)
			if got != tc.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tc.key, got, tc.want)
			}
		})
	}
}
