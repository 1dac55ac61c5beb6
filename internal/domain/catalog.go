package domain

// Track is a single licensable recording in the catalog.
type Track struct {
	ID          string
	Title       string
	Composer    string
	Performer   string
	Conductor   string
	Label       string
	Duration    string
	Year        int
	Genre       string
	Era         string
	Instruments []string
	Moods       []string
	Tempo       string
	Key         string
}

// LabelTier distinguishes the flagship/major labels from the independents in
// the label directory.
type LabelTier string

const (
	TierFlagship    LabelTier = "flagship"
	TierMajor       LabelTier = "major"
	TierIndependent LabelTier = "independent"
	TierSpecialized LabelTier = "specialized"
)

// Label is an entry in the partner label directory.
type Label struct {
	Name        string
	Founded     string
	Location    string
	Description string
	Specialties []string
	Artists     []string
	Tier        LabelTier
	CatalogSize string
}
