// Package catalog serves the browse catalog and the partner label directory.
// The data is a curated fixture set; a real catalog service would sit behind
// the same interface.
package catalog

import (
	"strings"

	"github.com/psalmos/web/internal/domain"
)

// Service exposes read access to tracks and labels.
type Service struct {
	tracks []domain.Track
}

// NewService creates a catalog service over the built-in fixture set.
func NewService() *Service {
	return &Service{tracks: tracks}
}

// Genres lists the genre filter tabs in display order.
func (s *Service) Genres() []string {
	return []string{"All", "Symphony", "Concerto", "Chamber", "Sacred", "Opera"}
}

// Search returns the tracks matching a free-text query (title, composer or
// performer, case-insensitive) and a genre filter. An empty query or the
// "all" genre matches everything.
func (s *Service) Search(query, genre string) []domain.Track {
	query = strings.ToLower(strings.TrimSpace(query))
	genre = strings.ToLower(strings.TrimSpace(genre))

	var out []domain.Track
	for _, t := range s.tracks {
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Title), query) &&
			!strings.Contains(strings.ToLower(t.Composer), query) &&
			!strings.Contains(strings.ToLower(t.Performer), query) {
			continue
		}
		if genre != "" && genre != "all" && strings.ToLower(t.Genre) != genre {
			continue
		}
		out = append(out, t)
	}
	return out
}

// MajorLabels returns the flagship and major partner labels.
func (s *Service) MajorLabels() []domain.Label { return majorLabels }

// IndependentLabels returns the independent partner labels.
func (s *Service) IndependentLabels() []domain.Label { return independentLabels }

// SpecializedLabels returns the niche partner labels.
func (s *Service) SpecializedLabels() []domain.Label { return specializedLabels }

var tracks = []domain.Track{
	{
		ID:          "track_001",
		Title:       "Symphony No. 9 in D minor, Op. 125 'Choral'",
		Composer:    "Ludwig van Beethoven",
		Performer:   "Berlin Philharmonic Orchestra",
		Conductor:   "Herbert von Karajan",
		Label:       "Deutsche Grammophon",
		Duration:    "4:32",
		Year:        1963,
		Genre:       "Symphony",
		Era:         "Romantic",
		Instruments: []string{"Orchestra", "Choir"},
		Moods:       []string{"Triumphant", "Epic"},
		Tempo:       "Allegro",
		Key:         "D minor",
	},
	{
		ID:          "track_002",
		Title:       "Piano Concerto No. 1 in B-flat minor, Op. 23",
		Composer:    "Pyotr Ilyich Tchaikovsky",
		Performer:   "Martha Argerich",
		Conductor:   "Claudio Abbado",
		Label:       "Deutsche Grammophon",
		Duration:    "6:18",
		Year:        1994,
		Genre:       "Concerto",
		Era:         "Romantic",
		Instruments: []string{"Piano", "Orchestra"},
		Moods:       []string{"Passionate", "Dramatic"},
		Tempo:       "Allegro non troppo",
		Key:         "B-flat minor",
	},
	{
		ID:          "track_003",
		Title:       "The Four Seasons: Spring",
		Composer:    "Antonio Vivaldi",
		Performer:   "Anne-Sophie Mutter",
		Conductor:   "Herbert von Karajan",
		Label:       "Deutsche Grammophon",
		Duration:    "3:24",
		Year:        1988,
		Genre:       "Concerto",
		Era:         "Baroque",
		Instruments: []string{"Violin", "Orchestra"},
		Moods:       []string{"Joyful", "Energetic"},
		Tempo:       "Allegro",
		Key:         "E major",
	},
	{
		ID:          "track_004",
		Title:       "Requiem in D minor, K. 626: Dies Irae",
		Composer:    "Wolfgang Amadeus Mozart",
		Performer:   "Vienna Philharmonic Orchestra",
		Conductor:   "Herbert von Karajan",
		Label:       "Deutsche Grammophon",
		Duration:    "1:47",
		Year:        1975,
		Genre:       "Sacred",
		Era:         "Classical",
		Instruments: []string{"Orchestra", "Choir"},
		Moods:       []string{"Solemn", "Dramatic"},
		Tempo:       "Allegro assai",
		Key:         "D minor",
	},
}

var majorLabels = []domain.Label{
	{
		Name:        "Deutsche Grammophon",
		Founded:     "1898",
		Location:    "Hamburg, Germany",
		Description: "The world's oldest and most prestigious classical music label, known for its iconic yellow label and legendary recordings.",
		Specialties: []string{"Orchestral", "Opera", "Chamber Music"},
		Artists:     []string{"Herbert von Karajan", "Anne-Sophie Mutter", "Lang Lang"},
		Tier:        domain.TierFlagship,
		CatalogSize: "15,000+",
	},
	{
		Name:        "Decca Classics",
		Founded:     "1929",
		Location:    "London, UK",
		Description: "One of the most prestigious classical labels with artists like Luciano Pavarotti and the Vienna Philharmonic.",
		Specialties: []string{"Opera", "Orchestral", "Vocal"},
		Artists:     []string{"Luciano Pavarotti", "Vienna Philharmonic", "Cecilia Bartoli"},
		Tier:        domain.TierMajor,
		CatalogSize: "12,000+",
	},
	{
		Name:        "Sony Classical",
		Founded:     "1927",
		Location:    "New York, USA",
		Description: "Dating back to 1927 as Columbia Masterworks, featuring world-renowned artists and innovative recordings.",
		Specialties: []string{"Contemporary Classical", "Film Scores", "Crossover"},
		Artists:     []string{"Yo-Yo Ma", "Joshua Bell", "Philip Glass"},
		Tier:        domain.TierMajor,
		CatalogSize: "10,000+",
	},
	{
		Name:        "Warner Classics",
		Founded:     "1991",
		Location:    "London, UK",
		Description: "Formed in 1991, includes the Erato Records and Teldec Records labels, with legendary artists from Maria Callas to Joyce DiDonato.",
		Specialties: []string{"Historical Recordings", "Opera", "Early Music"},
		Artists:     []string{"Maria Callas", "Joyce DiDonato", "Emmanuel Pahud"},
		Tier:        domain.TierMajor,
		CatalogSize: "8,500+",
	},
}

var independentLabels = []domain.Label{
	{
		Name:        "Hyperion Records",
		Founded:     "1980",
		Location:    "London, UK",
		Description: "Award-winning UK label with around 2,500 CDs covering classical music from the 12th century to present, recently acquired by Universal Music Group in 2023.",
		Specialties: []string{"Rare Repertoire", "Song Cycles", "Early Music"},
		Artists:     []string{"Stephen Hough", "The Sixteen", "Graham Johnson"},
		Tier:        domain.TierIndependent,
		CatalogSize: "2,500+",
	},
	{
		Name:        "Harmonia Mundi",
		Founded:     "1958",
		Location:    "Arles, France",
		Description: "French label founded in 1958 specializing in classical, jazz, and world music from the Middle Ages to today.",
		Specialties: []string{"Early Music", "Baroque", "Contemporary"},
		Artists:     []string{"René Jacobs", "Jordi Savall", "Alexander Melnikov"},
		Tier:        domain.TierIndependent,
		CatalogSize: "3,000+",
	},
	{
		Name:        "Naxos",
		Founded:     "1987",
		Location:    "Hong Kong",
		Description: "Hong Kong-based label known for comprehensive classical repertoire at budget prices, featuring both standard and obscure works.",
		Specialties: []string{"Complete Editions", "Rare Works", "Educational"},
		Artists:     []string{"Various International Artists", "Emerging Talents"},
		Tier:        domain.TierIndependent,
		CatalogSize: "9,000+",
	},
	{
		Name:        "BIS Records",
		Founded:     "1973",
		Location:    "Åkersberga, Sweden",
		Description: "Swedish independent label highly regarded for sound quality and adventurous programming.",
		Specialties: []string{"Scandinavian Music", "Contemporary", "SACD"},
		Artists:     []string{"Osmo Vänskä", "Susanna Mälkki", "Ronald Brautigam"},
		Tier:        domain.TierIndependent,
		CatalogSize: "2,200+",
	},
	{
		Name:        "Chandos",
		Founded:     "1979",
		Location:    "Colchester, UK",
		Description: "British independent label known for excellent sound quality and natural recording approach.",
		Specialties: []string{"British Music", "Orchestral", "Choral"},
		Artists:     []string{"Neeme Järvi", "Richard Hickox", "BBC Philharmonic"},
		Tier:        domain.TierIndependent,
		CatalogSize: "1,800+",
	},
}

var specializedLabels = []domain.Label{
	{
		Name:        "Archiv Produktion",
		Founded:     "1947",
		Location:    "Hamburg, Germany",
		Description: "Deutsche Grammophon's subsidiary focused on early music, medieval and renaissance repertoire.",
		Specialties: []string{"Early Music", "Medieval", "Renaissance"},
		Artists:     []string{"John Eliot Gardiner", "Trevor Pinnock", "Musica Antiqua Köln"},
		Tier:        domain.TierSpecialized,
		CatalogSize: "1,200+",
	},
	{
		Name:        "ECM Records",
		Founded:     "1969",
		Location:    "Munich, Germany",
		Description: "German label known for high-quality contemporary classical and jazz recordings.",
		Specialties: []string{"Contemporary Classical", "New Music", "Jazz"},
		Artists:     []string{"Arvo Pärt", "Keith Jarrett", "Gidon Kremer"},
		Tier:        domain.TierSpecialized,
		CatalogSize: "1,600+",
	},
	{
		Name:        "AVIE Records",
		Founded:     "2002",
		Location:    "London, UK",
		Description: "UK independent label focusing on fostering young musicians with artist ownership model.",
		Specialties: []string{"Emerging Artists", "Chamber Music", "Recitals"},
		Artists:     []string{"Alina Ibragimova", "Steven Isserlis", "Paul Lewis"},
		Tier:        domain.TierSpecialized,
		CatalogSize: "400+",
	},
}
