package store

// Collection and pointer names making up the storage schema.
const (
	CollectionIdentities   = "identities"
	CollectionProfiles     = "profiles"
	CollectionJobs         = "jobs"
	CollectionApplications = "applications"

	PointerCurrentIdentity = "current-identity"
)
