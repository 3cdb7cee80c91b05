package models

import (
	mapset "github.com/deckarep/golang-set"
)

/**
status of an encoding job, as reported by the encoding service. The values are the strings
the service sends, so they compare directly against incoming payloads.
*/
type MediaStatus string

const (
	MEDIA_NEW         MediaStatus = "New"
	MEDIA_DOWNLOADING MediaStatus = "Downloading"
	MEDIA_DOWNLOADED  MediaStatus = "Downloaded"
	MEDIA_READY       MediaStatus = "Ready to process"
	MEDIA_WAITING     MediaStatus = "Waiting for encoder"
	MEDIA_PROCESSING  MediaStatus = "Processing"
	MEDIA_SAVING      MediaStatus = "Saving"
	MEDIA_FINISHED    MediaStatus = "Finished"
	MEDIA_ERROR       MediaStatus = "Error"
	MEDIA_STOPPED     MediaStatus = "Stopped Perform"
)

var AvailableStatuses = []MediaStatus{
	MEDIA_NEW,
	MEDIA_DOWNLOADING,
	MEDIA_DOWNLOADED,
	MEDIA_READY,
	MEDIA_WAITING,
	MEDIA_PROCESSING,
	MEDIA_SAVING,
	MEDIA_FINISHED,
	MEDIA_ERROR,
	MEDIA_STOPPED,
}

//statuses during which a submitted job is still moving through the encoder
var encodingStatuses = mapset.NewSet(
	MEDIA_DOWNLOADING,
	MEDIA_DOWNLOADED,
	MEDIA_READY,
	MEDIA_WAITING,
	MEDIA_PROCESSING,
	MEDIA_SAVING,
)

/**
returns true if the status is one the encoding service is known to send.
Media.SetStatus does not check this, it is here for callers that want to.
*/
func (s MediaStatus) IsKnown() bool {
	for _, known := range AvailableStatuses {
		if s == known {
			return true
		}
	}
	return false
}
