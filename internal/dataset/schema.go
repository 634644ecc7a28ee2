package dataset

// Column names after the rename pass. The raw file uses a handful of awkward
// headers ("artist(s)_name", "danceability_%"); everything downstream works
// with these cleaned names only.
const (
	ColTrackName        = "track_name"
	ColArtistName       = "artist_name"
	ColArtistCount      = "artist_count"
	ColReleasedYear     = "released_year"
	ColReleasedMonth    = "released_month"
	ColReleasedDay      = "released_day"
	ColSpotifyPlaylists = "in_spotify_playlists"
	ColSpotifyCharts    = "in_spotify_charts"
	ColStreams          = "streams"
	ColApplePlaylists   = "in_apple_playlists"
	ColAppleCharts      = "in_apple_charts"
	ColDeezerPlaylists  = "in_deezer_playlists"
	ColDeezerCharts     = "in_deezer_charts"
	ColShazamCharts     = "in_shazam_charts"
	ColBPM              = "bpm"
	ColKey              = "key"
	ColMode             = "mode"
	ColCoverURL         = "cover_url"
)

// renameLookup maps raw CSV headers to their cleaned names. Headers not in
// the map are kept as-is, so a file that already uses cleaned names loads
// identically.
var renameLookup = map[string]string{
	"artist(s)_name":     ColArtistName,
	"danceability_%":     "danceability_pct",
	"valence_%":          "valence_pct",
	"energy_%":           "energy_pct",
	"acousticness_%":     "acousticness_pct",
	"instrumentalness_%": "instrumentalness_pct",
	"liveness_%":         "liveness_pct",
	"speechiness_%":      "speechiness_pct",
}

// PercentageColumns are the 0-100 scored musical feature columns.
func PercentageColumns() []string {
	return []string{
		"danceability_pct",
		"valence_pct",
		"energy_pct",
		"acousticness_pct",
		"instrumentalness_pct",
		"liveness_pct",
		"speechiness_pct",
	}
}

// NumericColumns lists every column that should parse to a number after
// cleaning, in file order.
func NumericColumns() []string {
	cols := []string{
		ColArtistCount,
		ColReleasedYear,
		ColReleasedMonth,
		ColReleasedDay,
		ColSpotifyPlaylists,
		ColSpotifyCharts,
		ColStreams,
		ColApplePlaylists,
		ColAppleCharts,
		ColDeezerPlaylists,
		ColDeezerCharts,
		ColShazamCharts,
		ColBPM,
	}
	return append(cols, PercentageColumns()...)
}

// MedianImputedColumns get median imputation for values that fail numeric
// coercion. The rest of the numeric columns parse cleanly in practice and
// keep NaN for anything that doesn't.
func MedianImputedColumns() []string {
	return []string{ColStreams, ColDeezerPlaylists, ColShazamCharts}
}

// CategoricalColumns are the low-cardinality string columns worth charting
// as distributions.
func CategoricalColumns() []string {
	return []string{ColKey, ColMode}
}
