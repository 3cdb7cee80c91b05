package models

import (
	"github.com/guardian/encodingstatus/common/helpers"
	"github.com/guardian/encodingstatus/common/parser"
	"github.com/jinzhu/copier"
)

/**
one input media file of a job. A source is "extended" once technical metadata from a media info
payload has been applied to it.
*/
type Source struct {
	Location   string                 `json:"location"`
	Extended   bool                   `json:"extended"`
	Streams    parser.SourceStreams   `json:"streams"`
	Properties map[string]interface{} `json:"properties"`
}

func NewSource(location string) *Source {
	return &Source{
		Location:   location,
		Properties: map[string]interface{}{},
	}
}

/**
build an extended source from canonical source information
*/
func SourceFromInfo(location string, info parser.SourceInfo) (*Source, error) {
	rtn := NewSource(location)
	if err := rtn.ApplyInfo(info); err != nil {
		return nil, err
	}
	return rtn, nil
}

/**
replace the streams and properties of this source with the given canonical information and mark it extended
*/
func (s *Source) ApplyInfo(info parser.SourceInfo) error {
	if err := copier.Copy(s, &info); err != nil {
		return err
	}
	if s.Properties == nil {
		s.Properties = map[string]interface{}{}
	}
	s.Extended = true
	return nil
}

func (s *Source) IsExtended() bool {
	return s.Extended
}

func (s *Source) HasVideoTrack() bool {
	return len(s.Streams.Video) > 0
}

func (s *Source) HasAudioTrack() bool {
	return len(s.Streams.Audio) > 0
}

func (s *Source) HasTextTrack() bool {
	return s.Streams.Text != nil
}

func (s *Source) MediaType() helpers.MediaItemType {
	return helpers.ItemTypeForLocation(s.Location)
}
