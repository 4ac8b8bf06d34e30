package browser

import "testing"

func TestIsTrackerDomain(t *testing.T) {
	tests := []struct {
		host string
		want bool
	}{
		{"google-analytics.com", true},
		{"www.google-analytics.com", true},
		{"region1.google-analytics.com", true},
		{"GOOGLE-ANALYTICS.COM", true},
		{"example-target.test", false},
		{"analytics.example", false},
		{"notgoogle-analytics.com.evil.test", false},
	}

	for _, tt := range tests {
		if got := isTrackerDomain(tt.host); got != tt.want {
			t.Errorf("isTrackerDomain(%q) = %v, want %v", tt.host, got, tt.want)
		}
	}
}
