package validate

import (
	"strings"
	"testing"
)

func TestHubName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"valid simple", "myhub", nil},
		{"valid with hyphen", "good-name1", nil},
		{"valid minimum length", "abc", nil},
		{"valid maximum length", strings.Repeat("a", 50), nil},
		{"too short", "ab", errHubNameLength},
		{"empty", "", errHubNameLength},
		{"too long", strings.Repeat("a", 51), errHubNameLength},
		{"invalid character", "my_hub", errHubNameChars},
		{"space", "my hub", errHubNameChars},
		{"leading hyphen", "-abc", errHubNameBoundaryDash},
		{"trailing hyphen", "abc-", errHubNameBoundaryDash},
		{"length checked before charset", "a_", errHubNameLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HubName(tt.input)
			if err != tt.wantErr {
				t.Errorf("HubName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestResourceGroupName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"valid simple", "my-group", nil},
		{"valid single char", "a", nil},
		{"valid punctuation", "my.group_(prod)", nil},
		{"valid maximum length", strings.Repeat("a", 90), nil},
		{"empty", "", errResourceGroupLength},
		{"too long", strings.Repeat("a", 91), errResourceGroupLength},
		{"invalid character", "my group", errResourceGroupChars},
		{"trailing period", "my.group.", errResourceGroupTrailer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ResourceGroupName(tt.input)
			if err != tt.wantErr {
				t.Errorf("ResourceGroupName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
