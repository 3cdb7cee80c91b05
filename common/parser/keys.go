package parser

import (
	mapset "github.com/deckarep/golang-set"
)

const (
	KEY_MEDIA_LIST        = "media"
	KEY_LIST_MEDIAID      = "mediaid"
	KEY_LIST_MEDIAFILE    = "mediafile"
	KEY_LIST_MEDIASTATUS  = "mediastatus"
	KEY_JOBS              = "jobs"
	KEY_JOB_XML           = "job" //repeated element name when the status list arrives as XML
	KEY_ID                = "id"
	KEY_USERID            = "userid"
	KEY_STATUS            = "status"
	KEY_SOURCEFILE        = "sourcefile"
	KEY_FORMAT            = "format"
	KEY_OUTPUT            = "output"
	KEY_DESTINATION       = "destination"
	KEY_DESTINATIONSTATUS = "destination_status"
	KEY_SOURCE            = "source"
)

//track kinds that are flattened into the source under a "<kind>_" prefix, in id assignment order
var EmbeddedTrackKinds = []string{"video", "audio"}

//stream kinds that are carried whole under a "<kind>_stream" key
var EmbeddedStreamKinds = []string{"text"}

/**
the status and timing fields of a format. Any other field on a format is an encoder option.
*/
var FormatPropertyKeys = mapset.NewSetFromSlice([]interface{}{
	"status",
	"created",
	"started",
	"finished",
	"duration",
	"converttime",
	"convertedsize",
	"queued",
})

var MediaListReservedKeys = mapset.NewSetFromSlice([]interface{}{
	KEY_LIST_MEDIAID,
	KEY_LIST_MEDIAFILE,
	KEY_LIST_MEDIASTATUS,
})
