package azure

import "strings"

// resourceGroupFromID extracts the resource group segment from an ARM
// resource ID of the form
// /subscriptions/<id>/resourceGroups/<name>/providers/...
func resourceGroupFromID(id string) string {
	parts := strings.Split(strings.Trim(id, "/"), "/")
	for i := 0; i+1 < len(parts); i += 2 {
		if strings.EqualFold(parts[i], "resourceGroups") {
			return parts[i+1]
		}
	}
	return ""
}
