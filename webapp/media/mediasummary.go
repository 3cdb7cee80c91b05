package media

import (
	"github.com/guardian/encodingstatus/common/helpers"
	"github.com/guardian/encodingstatus/common/models"
)

type SourceSummary struct {
	Location  string                `json:"location"`
	MediaType helpers.MediaItemType `json:"mediaType"`
	Extended  bool                  `json:"extended"`
	HasVideo  bool                  `json:"hasVideo"`
	HasAudio  bool                  `json:"hasAudio"`
	HasText   bool                  `json:"hasText"`
}

type FormatSummary struct {
	Id           string            `json:"id"`
	Output       string            `json:"output"`
	Status       string            `json:"status"`
	Destinations map[string]string `json:"destinations"`
}

/**
what we report back about a media item. Sources and formats are only present when the request
that produced the summary carried them, since the datastore only keeps id, hold flag and status.
*/
type MediaSummary struct {
	Id               string          `json:"id"`
	Status           string          `json:"status"`
	Error            string          `json:"error,omitempty"`
	IsNew            bool            `json:"isNew"`
	IsReady          bool            `json:"isReady"`
	IsDone           bool            `json:"isDone"`
	IsError          bool            `json:"isError"`
	HasError         bool            `json:"hasError"`
	IsOnHold         bool            `json:"isOnHold"`
	IsEncoding       bool            `json:"isEncoding"`
	IsExtended       bool            `json:"isExtended"`
	IsSourceExtended bool            `json:"isSourceExtended"`
	Sources          []SourceSummary `json:"sources,omitempty"`
	Formats          []FormatSummary `json:"formats,omitempty"`
}

func SummariseMedia(m *models.Media) MediaSummary {
	rtn := MediaSummary{
		Id:               m.GetId(),
		Status:           string(m.GetStatus()),
		Error:            m.GetError(),
		IsNew:            m.IsNew(),
		IsReady:          m.IsReady(),
		IsDone:           m.IsDone(),
		IsError:          m.IsError(),
		HasError:         m.HasError(),
		IsOnHold:         m.IsOnHold(),
		IsEncoding:       m.IsEncoding(),
		IsExtended:       m.IsExtended(),
		IsSourceExtended: m.IsSourceExtended(),
	}

	for _, s := range m.GetSources() {
		rtn.Sources = append(rtn.Sources, SourceSummary{
			Location:  s.Location,
			MediaType: s.MediaType(),
			Extended:  s.IsExtended(),
			HasVideo:  s.HasVideoTrack(),
			HasAudio:  s.HasAudioTrack(),
			HasText:   s.HasTextTrack(),
		})
	}
	for _, f := range m.GetFormats() {
		rtn.Formats = append(rtn.Formats, FormatSummary{
			Id:           f.Id,
			Output:       f.Output,
			Status:       f.Properties.Status,
			Destinations: f.Destinations,
		})
	}
	return rtn
}
