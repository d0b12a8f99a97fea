package id3

// frameNames maps known frame IDs to semantic names. Frames whose ID is not
// listed here are skipped.
var frameNames = map[string]string{
	// Text frames
	"TALB": "album",
	"TBPM": "bpm",
	"TCOM": "composer",
	"TCON": "genre",
	"TCOP": "copyright",
	"TDEN": "encoding-time",
	"TDLY": "playlist-delay",
	"TDOR": "original-release-time",
	"TDRC": "recording-time",
	"TDRL": "release-time",
	"TDTG": "tagging-time",
	"TENC": "encoder",
	"TEXT": "writer",
	"TFLT": "file-type",
	"TIPL": "involved-people",
	"TIT1": "content-group",
	"TIT2": "title",
	"TIT3": "subtitle",
	"TKEY": "initial-key",
	"TLAN": "language",
	"TLEN": "length",
	"TMCL": "credits",
	"TMED": "media-type",
	"TMOO": "mood",
	"TOAL": "original-album",
	"TOFN": "original-filename",
	"TOLY": "original-writer",
	"TOPE": "original-artist",
	"TOWN": "owner",
	"TPE1": "artist",
	"TPE2": "band",
	"TPE3": "conductor",
	"TPE4": "remixer",
	"TPOS": "set-part",
	"TPRO": "produced-notice",
	"TPUB": "publisher",
	"TRCK": "track",
	"TRSN": "radio-name",
	"TRSO": "radio-owner",
	"TSOA": "album-sort",
	"TSOP": "performer-sort",
	"TSOT": "title-sort",
	"TSRC": "isrc",
	"TSSE": "encoder-settings",
	"TSST": "set-subtitle",
	"TYER": "year",

	// Text frames (v2.2)
	"TAL": "album",
	"TBP": "bpm",
	"TCM": "composer",
	"TCO": "genre",
	"TCR": "copyright",
	"TDY": "playlist-delay",
	"TEN": "encoder",
	"TFT": "file-type",
	"TKE": "initial-key",
	"TLA": "language",
	"TLE": "length",
	"TMT": "media-type",
	"TOA": "original-artist",
	"TOF": "original-filename",
	"TOL": "original-writer",
	"TOT": "original-album",
	"TP1": "artist",
	"TP2": "band",
	"TP3": "conductor",
	"TP4": "remixer",
	"TPA": "set-part",
	"TPB": "publisher",
	"TRC": "isrc",
	"TRK": "track",
	"TSS": "encoder-settings",
	"TT1": "content-group",
	"TT2": "title",
	"TT3": "subtitle",
	"TXT": "writer",
	"TYE": "year",

	// URL frames
	"WCOM": "url-commercial",
	"WCOP": "url-legal",
	"WOAF": "url-file",
	"WOAR": "url-artist",
	"WOAS": "url-source",
	"WORS": "url-radio",
	"WPAY": "url-payment",
	"WPUB": "url-publisher",

	// URL frames (v2.2)
	"WAF": "url-file",
	"WAR": "url-artist",
	"WAS": "url-source",
	"WCM": "url-commercial",
	"WCP": "url-copyright",
	"WPB": "url-publisher",

	// Comments
	"COMM": "comments",
	"COM":  "comments",

	// Pictures
	"APIC": "image",
	"PIC":  "image",

	// Private
	"PRIV": "private",
}

// Name returns the semantic name of a frame ID and whether the ID is known.
func Name(id string) (string, bool) {
	name, ok := frameNames[id]
	return name, ok
}

// Text encoding selectors (byte following the v2.3/v2.4 frame header).
const (
	encodingLatin1   = 0
	encodingUTF16BOM = 1
	encodingUTF16BE  = 2
	encodingUTF8     = 3
)

// wideEncoding reports whether enc uses two-byte code units.
func wideEncoding(enc byte) bool {
	return enc == encodingUTF16BOM || enc == encodingUTF16BE
}

// validEncoding reports whether enc is a known selector.
func validEncoding(enc byte) bool {
	return enc <= encodingUTF8
}
