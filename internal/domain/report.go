package domain

// ReportCandidate is a single contribution heading into the merge engine:
// a coordinate plus the reporter's description and stored type.
type ReportCandidate struct {
	Coordinate  Coordinate
	Description string
	Type        ZoneType
	ReporterID  string
	// Reports is the contribution weight; 1 for an ordinary report, the
	// explicit count when a batch is folded in, 0 for a SAFE creation.
	Reports        int
	Slug           string
	Date           string
	Hour           string
	FeatureDetails FeatureDetails
}

// PendingReport is the working draft collected during an interaction
// session. It exists only while the session is active and is discarded on
// cancel or successful commit.
type PendingReport struct {
	Coordinate     Coordinate
	Description    string
	Type           ZoneType
	Reports        int
	Date           string
	Hour           string
	Slug           string
	FeatureDetails FeatureDetails
}
