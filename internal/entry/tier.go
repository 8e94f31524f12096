package entry

// Tier names a storage location, ordered fast -> slow.
type Tier string

const (
	TierFast       Tier = "fast"
	TierCompressed Tier = "compressed"
	TierDisk       Tier = "disk"
)
