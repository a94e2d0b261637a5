package provisioning

// Tier is a fixed pricing class offered at hub creation time. The
// capacity unit count is always one.
type Tier struct {
	Label    string
	Code     string
	Capacity int64
}

// Tiers is the fixed pick list shown during provisioning.
var Tiers = []Tier{
	{Label: "F1: Free tier", Code: "F1", Capacity: 1},
	{Label: "S1: Standard tier", Code: "S1", Capacity: 1},
	{Label: "S2: Standard tier", Code: "S2", Capacity: 1},
	{Label: "S3: Standard tier", Code: "S3", Capacity: 1},
}
