package mp4

// Note: In MP4, © is represented as byte 0xA9, so "©nam" is "\xa9nam" in Go strings

const freeformPrefix = "----:com.apple.iTunes:"

// atomNames maps human field names to ilst atom names. Freeform items use
// "----:<mean>:<name>".
var atomNames = map[string]string{
	"title":       "\xa9nam",
	"artist":      "\xa9ART",
	"album":       "\xa9alb",
	"albumartist": "aART",
	"comment":     "\xa9cmt",
	"genre":       "\xa9gen",
	"date":        "\xa9day",
	"composer":    "\xa9wrt",
	"grouping":    "\xa9grp",
	"tracknumber": "trkn",
	"discnumber":  "disk",
	"compilation": "cpil",
	"bpm":         "tmpo",
	"copyright":   "cprt",
	"lyrics":      "\xa9lyr",
	"encodedby":   "\xa9too",
	"description": "desc",

	"albumsort":       "soal",
	"albumartistsort": "soaa",
	"artistsort":      "soar",
	"titlesort":       "sonm",
	"composersort":    "soco",
	"showsort":        "sosn",

	"cover":         "covr",
	"standardgenre": "gnre",
	"gapless":       "pgap",
	"podcast":       "pcst",
	"hdvideo":       "hdvd",
	"mediatype":     "stik",
	"rating":        "rtng",
	"accountkind":   "akID",
	"tvshow":        "tvsh",
	"tvnetwork":     "tvnn",
	"tvseason":      "tvsn",
	"tvepisode":     "tves",
	"contentid":     "cnID",
	"storefrontid":  "sfID",
	"artistid":      "atID",
	"genreid":       "geID",
	"composerid":    "cmID",
	"playlistid":    "plID",

	"musicbrainz_trackid":        freeformPrefix + "MusicBrainz Track Id",
	"musicbrainz_artistid":       freeformPrefix + "MusicBrainz Artist Id",
	"musicbrainz_albumid":        freeformPrefix + "MusicBrainz Album Id",
	"musicbrainz_albumartistid":  freeformPrefix + "MusicBrainz Album Artist Id",
	"musicbrainz_releasegroupid": freeformPrefix + "MusicBrainz Release Group Id",
	"musicbrainz_workid":         freeformPrefix + "MusicBrainz Work Id",
	"asin":                       freeformPrefix + "ASIN",
	"label":                      freeformPrefix + "LABEL",
	"lyricist":                   freeformPrefix + "LYRICIST",
	"conductor":                  freeformPrefix + "CONDUCTOR",
	"remixer":                    freeformPrefix + "REMIXER",
	"engineer":                   freeformPrefix + "ENGINEER",
	"producer":                   freeformPrefix + "PRODUCER",
	"djmixer":                    freeformPrefix + "DJMIXER",
	"mixer":                      freeformPrefix + "MIXER",
	"subtitle":                   freeformPrefix + "SUBTITLE",
	"discsubtitle":               freeformPrefix + "DISCSUBTITLE",
	"mood":                       freeformPrefix + "MOOD",
	"isrc":                       freeformPrefix + "ISRC",
	"catalognumber":              freeformPrefix + "CATALOGNUMBER",
	"barcode":                    freeformPrefix + "BARCODE",
	"script":                     freeformPrefix + "SCRIPT",
	"language":                   freeformPrefix + "LANGUAGE",
	"license":                    freeformPrefix + "LICENSE",
	"media":                      freeformPrefix + "MEDIA",
}

// humanNames is the inverse of atomNames.
var humanNames = func() map[string]string {
	m := make(map[string]string, len(atomNames))
	for human, atom := range atomNames {
		m[atom] = human
	}
	return m
}()

// coreFields is the field set decoded unless extended fields are enabled.
var coreFields = []string{"title", "date", "artist", "album", "tracknumber", "comment"}

// AtomName translates a human field name to its atom name.
func AtomName(human string) (string, bool) {
	a, ok := atomNames[human]
	return a, ok
}

// HumanName translates an atom name (or freeform key) to its human name.
func HumanName(atom string) (string, bool) {
	h, ok := humanNames[atom]
	return h, ok
}
