package domain

import "time"

// LicenseType determines the usage rights attached to a license.
type LicenseType string

const (
	LicenseStandard   LicenseType = "standard"
	LicenseExtended   LicenseType = "extended"
	LicenseCommercial LicenseType = "commercial"
)

// License records a track a user has licensed, denormalized with the track
// details so the dashboard can render without a catalog lookup.
type License struct {
	ID          string
	UserID      string
	TrackID     string
	TrackTitle  string
	Composer    string
	Performer   string
	Label       string
	Type        LicenseType
	DownloadURL string
	CreatedAt   time.Time
	ExpiresAt   *time.Time
	UsageRights []string
}
