package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewReviewer(t *testing.T) {
	tests := []struct {
		name        string
		reviewer    string
		email       string
		country     string
		phone       string
		wantErr     bool
		wantCountry string
	}{
		{"minimal", "John", "john@example.com", "", "", false, ""},
		{"with region", "John", "john@example.com", "GB", "", false, "GB"},
		{"region normalized to upper", "John", "john@example.com", "gb", "", false, "GB"},
		{"region with valid phone", "Anna", "anna@example.com", "US", "+1 650 253 0000", false, "US"},
		{"empty name", "", "john@example.com", "", "", true, ""},
		{"empty email", "John", "", "", "", true, ""},
		{"malformed email", "John", "not-an-email", "", "", true, ""},
		{"unknown region", "John", "john@example.com", "XX", "", true, ""},
		{"region too long", "John", "john@example.com", "GBR", "", true, ""},
		{"phone wrong for region", "Anna", "anna@example.com", "US", "12345", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReviewer(tt.reviewer, tt.email, tt.country, tt.phone)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantCountry, r.CountryCode)
		})
	}
}

func TestNewReviewerPhoneWithoutRegion(t *testing.T) {
	// 没有地区信息时电话按自由文本保存，不做校验
	r, err := NewReviewer("John", "john@example.com", "", "whatever")
	require.NoError(t, err)
	require.Equal(t, "whatever", r.PhoneNumber)
}
