package mediatype

// extensionTable is the only source for local classification. Extensions
// missing here are unknown on every host.
var extensionTable = map[string]string{
	// text
	"txt":      "text/plain",
	"text":     "text/plain",
	"log":      "text/plain",
	"md":       "text/markdown",
	"markdown": "text/markdown",
	"csv":      "text/csv",
	"tsv":      "text/tab-separated-values",
	"html":     "text/html",
	"htm":      "text/html",
	"xhtml":    "text/html",
	"xml":      "text/xml",
	"css":      "text/css",
	"js":       "text/javascript",
	"py":       "text/x-python",
	"c":        "text/x-c",
	"h":        "text/x-c",
	"go":       "text/x-go",
	"rs":       "text/x-rust",
	"java":     "text/x-java",
	"yaml":     "text/x-yaml",
	"yml":      "text/x-yaml",
	"rtf":      "application/rtf",
	"doc":      "application/msword",
	"pdf":      "application/pdf",
	"epub":     "application/epub+zip",
	"odt":      "application/vnd.oasis.opendocument.text",
	"ibooks":   "application/x-ibooks+zip",
	"json":     "application/json",
	"docx":     "application/" + SubtypeWordprocessing,
	"xlsx":     "application/" + SubtypeSpreadsheet,
	"pptx":     "application/" + SubtypePresentation,

	// image
	"gif":  "image/gif",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
	"bmp":  "image/bmp",
	"webp": "image/webp",
	"avif": "image/avif",
	"heic": "image/heic",
	"svg":  "image/svg+xml",
	"ico":  "image/x-icon",
	"eps":  "application/postscript",

	// audio
	"mp3":  "audio/mpeg",
	"wav":  "audio/vnd.wave",
	"aif":  "audio/x-aiff",
	"aiff": "audio/x-aiff",
	"flac": "audio/flac",
	"oga":  "audio/ogg",
	"m4a":  "audio/mp4",
	"aac":  "audio/aac",
	"opus": "audio/opus",
	"wma":  "audio/x-ms-wma",

	// video
	"rm":   "application/vnd.rn-realmedia",
	"drc":  "video/x-dirac",
	"3gp":  "video/3gpp",
	"3g2":  "video/3gpp2",
	"asf":  "video/x-ms-asf",
	"avi":  "video/x-msvideo",
	"webm": "video/webm",
	"mpeg": "video/mpeg",
	"mpg":  "video/mpeg",
	"m1v":  "video/mpeg",
	"vob":  "video/mpeg",
	"mp4":  "video/mp4",
	"m4v":  "video/x-m4v",
	"mkv":  "video/x-matroska",
	"ogg":  "video/ogg",
	"ogv":  "video/ogg",
	"mov":  "video/quicktime",
	"f4v":  "video/quicktime",
	"flv":  "video/x-flv",
	"swf":  "application/x-shockwave-flash",
	"h264": "video/h264",
	"wmv":  "video/x-ms-wmv",
}
