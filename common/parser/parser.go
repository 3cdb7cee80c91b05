package parser

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/guardian/encodingstatus/common/payload"
)

var ErrInvalidInput = payload.ErrInvalidInput

/**
ParseMediaList turns a media list payload of the form {media: [{mediaid, mediafile, mediastatus, ...}]}
into a list of stubs, in the same order as the incoming payload
*/
func ParseMediaList(data interface{}) ([]MediaStub, error) {
	prepared, prepErr := payload.Prepare(data)
	if prepErr != nil {
		return nil, prepErr
	}

	items := payload.AsSequence(prepared[KEY_MEDIA_LIST])
	rtn := make([]MediaStub, len(items))
	for i, rawItem := range items {
		item, isMap := payload.AsMap(rawItem)
		if !isMap {
			return nil, invalidEntry("media list entry", i, rawItem)
		}

		properties := make(map[string]interface{}, len(item))
		for k, v := range item {
			if !MediaListReservedKeys.Contains(k) {
				properties[k] = v
			}
		}

		rtn[i] = MediaStub{
			Id:         payload.Scalar(item[KEY_LIST_MEDIAID]),
			Status:     payload.Scalar(item[KEY_LIST_MEDIASTATUS]),
			Sources:    []string{payload.Scalar(item[KEY_LIST_MEDIAFILE])},
			Properties: properties,
		}
	}
	return rtn, nil
}

/**
ParseMediaStatus normalises a job status payload.
If `extended` is set the payload holds a list of jobs under the "jobs" key (or repeated "job"
elements when it came from XML), otherwise the payload is a single job.
Returns one StatusRecord per job in the payload, in order.
*/
func ParseMediaStatus(data interface{}, extended bool) ([]StatusRecord, error) {
	prepared, prepErr := payload.Prepare(data)
	if prepErr != nil {
		return nil, prepErr
	}

	var jobs []interface{}
	if extended {
		if jobList, haveJobs := prepared[KEY_JOBS]; haveJobs {
			jobs = payload.AsSequence(jobList)
		} else {
			jobs = payload.AsSequence(prepared[KEY_JOB_XML])
		}
	} else {
		jobs = []interface{}{prepared}
	}

	rtn := make([]StatusRecord, len(jobs))
	for i, rawJob := range jobs {
		job, isMap := payload.AsMap(rawJob)
		if !isMap {
			return nil, invalidEntry("job", i, rawJob)
		}
		record, err := parseJobStatus(job)
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i, err)
		}
		rtn[i] = *record
	}
	return rtn, nil
}

func parseJobStatus(job map[string]interface{}) (*StatusRecord, error) {
	working := payload.CopyMap(job)

	record := &StatusRecord{
		Id:      payload.Scalar(payload.Pop(working, KEY_ID)),
		UserId:  payload.Scalar(payload.Pop(working, KEY_USERID)),
		Status:  payload.Scalar(payload.Pop(working, KEY_STATUS)),
		Formats: []FormatRecord{},
	}

	rawSources := payload.AsSequence(payload.Pop(working, KEY_SOURCEFILE))
	record.Sources = make([]string, len(rawSources))
	for i, s := range rawSources {
		record.Sources[i] = payload.Scalar(s)
	}

	if rawFormats, haveFormats := working[KEY_FORMAT]; haveFormats && !payload.IsEmpty(rawFormats) {
		for i, rawFormat := range payload.AsSequence(rawFormats) {
			format, isMap := payload.AsMap(rawFormat)
			if !isMap {
				return nil, invalidEntry("format", i, rawFormat)
			}
			record.Formats = append(record.Formats, parseFormat(format))
		}
	}
	delete(working, KEY_FORMAT)

	record.Properties = payload.DropEmpty(working)
	return record, nil
}

/**
builds the canonical form of a single format block. Destinations are paired with the
destination status at the same position; a destination without a matching status gets an
empty status and any surplus statuses are ignored.
*/
func parseFormat(format map[string]interface{}) FormatRecord {
	working := payload.CopyMap(format)

	rtn := FormatRecord{
		Id:         payload.Scalar(payload.Pop(working, KEY_ID)),
		Output:     payload.Scalar(payload.Pop(working, KEY_OUTPUT)),
		Properties: map[string]interface{}{},
		Options:    map[string]interface{}{},
	}

	statuses := payload.AsSequence(payload.Pop(working, KEY_DESTINATIONSTATUS))
	destinations := payload.AsSequence(payload.Pop(working, KEY_DESTINATION))

	rtn.Destinations = make(map[string]string, len(destinations))
	for i, dest := range destinations {
		var status string
		if i < len(statuses) {
			status = payload.Scalar(statuses[i])
		} else {
			log.Printf("WARNING: format %s has no status for destination %d (%s)", rtn.Id, i, payload.Scalar(dest))
		}
		rtn.Destinations[payload.Scalar(dest)] = status
	}

	for k, v := range payload.DropEmpty(working) {
		if FormatPropertyKeys.Contains(k) {
			rtn.Properties[k] = v
		} else {
			rtn.Options[k] = v
		}
	}
	return rtn
}

/**
ParseMediaInfo normalises a media information payload. The payload either describes a
single source with its fields at the top level, or several under the "source" key.
*/
func ParseMediaInfo(data interface{}) (*MediaInfo, error) {
	prepared, prepErr := payload.Prepare(data)
	if prepErr != nil {
		return nil, prepErr
	}

	var rawSources []interface{}
	if sourceList, haveSources := prepared[KEY_SOURCE]; haveSources {
		rawSources = payload.AsSequence(sourceList)
	} else {
		rawSources = []interface{}{prepared}
	}

	rtn := &MediaInfo{Sources: make([]SourceInfo, len(rawSources))}
	for i, rawSource := range rawSources {
		source, isMap := payload.AsMap(rawSource)
		if !isMap {
			return nil, invalidEntry("source", i, rawSource)
		}
		rtn.Sources[i] = parseSourceInfo(source, prepared)
	}
	return rtn, nil
}

func parseSourceInfo(source map[string]interface{}, rawData map[string]interface{}) SourceInfo {
	working := payload.DropEmpty(source)
	rtn := SourceInfo{}

	trackId := 1
	for _, kind := range EmbeddedTrackKinds {
		prefix := kind + "_"
		tracks := map[string]interface{}{}

		for k, v := range working {
			if strings.HasPrefix(k, prefix) {
				tracks[strings.TrimPrefix(k, prefix)] = v
				delete(working, k)
			}
		}

		if len(tracks) > 0 {
			switch kind {
			case "video":
				rtn.Streams.Video = TrackSet{trackId: tracks}
			case "audio":
				rtn.Streams.Audio = TrackSet{trackId: tracks}
			}
			trackId++
		}
	}

	for _, kind := range EmbeddedStreamKinds {
		streamKey := kind + "_stream"
		if _, haveStream := working[streamKey]; haveStream {
			//stream data is read from the top level of the payload, not from the source itself
			switch kind {
			case "text":
				rtn.Streams.Text = rawData[streamKey]
			}
			delete(working, streamKey)
		}
	}

	rtn.Properties = working
	return rtn
}

func invalidEntry(what string, index int, value interface{}) error {
	log.Printf("ERROR: %s %d is a %s, not a map. Offending data was %s", what, index, reflect.TypeOf(value), spew.Sdump(value))
	return fmt.Errorf("%w: %s %d is not a map", ErrInvalidInput, what, index)
}
