// Package validate contains syntax checks for Azure resource names.
package validate

import (
	"errors"
	"regexp"
	"strings"
)

var (
	hubNameChars           = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	resourceGroupNameChars = regexp.MustCompile(`^[a-zA-Z0-9._()-]+$`)
)

// Validation errors surfaced inline by the interactive prompts.
var (
	errHubNameLength        = errors.New("IoT Hub name must be 3-50 characters long")
	errHubNameChars         = errors.New("IoT Hub name may only contain alphanumeric characters and hyphens")
	errHubNameBoundaryDash  = errors.New("IoT Hub name must not start or end with a hyphen")
	errResourceGroupLength  = errors.New("resource group name must be 1-90 characters long")
	errResourceGroupChars   = errors.New("resource group name may only contain alphanumeric characters, periods, underscores, hyphens and parentheses")
	errResourceGroupTrailer = errors.New("resource group name must not end with a period")
)

// HubName reports whether s is a syntactically valid IoT Hub name.
// Rules are checked in order: length, character set, boundary hyphens.
func HubName(s string) error {
	if len(s) < 3 || len(s) > 50 {
		return errHubNameLength
	}
	if !hubNameChars.MatchString(s) {
		return errHubNameChars
	}
	if strings.HasPrefix(s, "-") || strings.HasSuffix(s, "-") {
		return errHubNameBoundaryDash
	}
	return nil
}

// ResourceGroupName reports whether s is a syntactically valid resource
// group name.
func ResourceGroupName(s string) error {
	if len(s) < 1 || len(s) > 90 {
		return errResourceGroupLength
	}
	if !resourceGroupNameChars.MatchString(s) {
		return errResourceGroupChars
	}
	if strings.HasSuffix(s, ".") {
		return errResourceGroupTrailer
	}
	return nil
}
