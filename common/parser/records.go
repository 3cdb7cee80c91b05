package parser

/**
one entry from a media list payload
*/
type MediaStub struct {
	Id         string                 `json:"id"`
	Status     string                 `json:"status"`
	Sources    []string               `json:"sources"`
	Properties map[string]interface{} `json:"properties"`
}

/**
one requested output of a job. Destinations maps the destination location to its
delivery status. Properties only ever holds keys from FormatPropertyKeys, everything
else that was not empty ends up in Options.
*/
type FormatRecord struct {
	Id           string                 `json:"id"`
	Output       string                 `json:"output"`
	Destinations map[string]string      `json:"destinations"`
	Properties   map[string]interface{} `json:"properties"`
	Options      map[string]interface{} `json:"options"`
}

type StatusRecord struct {
	Id         string                 `json:"id"`
	UserId     string                 `json:"userId"`
	Status     string                 `json:"status"`
	Sources    []string               `json:"sources"`
	Formats    []FormatRecord         `json:"formats"`
	Properties map[string]interface{} `json:"properties"`
}

/**
track properties keyed by track id. Ids come from a single counter per source, so if a
source has both video and audio the video track is 1 and the audio track is 2.
*/
type TrackSet map[int]map[string]interface{}

type SourceStreams struct {
	Video TrackSet    `json:"video,omitempty"`
	Audio TrackSet    `json:"audio,omitempty"`
	Text  interface{} `json:"text,omitempty"`
}

type SourceInfo struct {
	Streams    SourceStreams          `json:"streams"`
	Properties map[string]interface{} `json:"properties"`
}

type MediaInfo struct {
	Sources []SourceInfo `json:"sources"`
}
