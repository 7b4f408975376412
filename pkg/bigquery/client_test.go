package bigquery

import (
	"testing"

	"github.com/farmshop-si/farmshop-backend/pkg/config"
)

func TestClientOptions(t *testing.T) {
	tests := []struct {
		name string
		gcp  config.GCPConfig
		want int
	}{
		{"inline json wins over file", config.GCPConfig{CredentialsJSON: `{"type": "service_account"}`, ApplicationCredentials: "/tmp/creds"}, 1},
		{"credentials file", config.GCPConfig{ApplicationCredentials: "/tmp/creds"}, 1},
		{"ambient credentials", config.GCPConfig{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clientOptions(tt.gcp); len(got) != tt.want {
				t.Fatalf("expected %d options, got %d", tt.want, len(got))
			}
		})
	}
}
