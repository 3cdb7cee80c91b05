package models

import (
	"encoding/json"
	"fmt"
	"log"
	"reflect"

	"github.com/guardian/encodingstatus/common/parser"
	"github.com/guardian/encodingstatus/common/payload"
)

const dataKeyStatus = "status"

/**
Media is the local view of one encoding job on the remote service.
Sources and formats are owned by the Media and have no reference back to it.
A Media is not safe for concurrent modification.
*/
type Media struct {
	DataItem
	sources      []*Source
	formats      []*Format
	options      map[string]interface{}
	errorMessage string
	isExtended   bool
	isOnHold     bool
}

/**
create a new Media. Each entry of `sources` is either a *Source / Source or a scalar location,
see AddSource. All parameters can be nil.
*/
func NewMedia(sources []interface{}, formats []*Format, options map[string]interface{}) (*Media, error) {
	rtn := &Media{options: map[string]interface{}{}}

	for _, source := range sources {
		if err := rtn.AddSource(source); err != nil {
			return nil, err
		}
	}
	for _, format := range formats {
		rtn.AddFormat(format)
	}
	rtn.SetOptions(options)
	return rtn, nil
}

/**
append a source. A string or other scalar is taken as the location of a new Source.
sources are not de-duplicated.
*/
func (m *Media) AddSource(source interface{}) error {
	switch typed := source.(type) {
	case *Source:
		if typed == nil {
			return fmt.Errorf("can't add a nil source")
		}
		m.sources = append(m.sources, typed)
	case Source:
		m.sources = append(m.sources, &typed)
	case string:
		m.sources = append(m.sources, NewSource(typed))
	case int, int64, float64, json.Number:
		m.sources = append(m.sources, NewSource(payload.Scalar(typed)))
	default:
		return fmt.Errorf("can't use a %s as a media source", reflect.TypeOf(source))
	}
	return nil
}

func (m *Media) GetSources() []*Source {
	return m.sources
}

func (m *Media) ClearSources() {
	m.sources = nil
}

func (m *Media) HasSources() bool {
	return len(m.sources) > 0
}

func (m *Media) HasMultipleSources() bool {
	return len(m.sources) > 1
}

func (m *Media) AddFormat(format *Format) {
	m.formats = append(m.formats, format)
}

func (m *Media) GetFormats() []*Format {
	return m.formats
}

func (m *Media) ClearFormats() {
	m.formats = nil
}

func (m *Media) HasFormats() bool {
	return len(m.formats) > 0
}

/**
merge the given options into the existing ones. New keys override existing keys with the same name,
keys that are not given are left alone. nil or empty options do nothing.
*/
func (m *Media) SetOptions(options map[string]interface{}) {
	if len(options) == 0 {
		return
	}
	if m.options == nil {
		m.options = make(map[string]interface{}, len(options))
	}
	for k, v := range options {
		m.options[k] = v
	}
}

func (m *Media) GetOptions() map[string]interface{} {
	if m.options == nil {
		return map[string]interface{}{}
	}
	return m.options
}

func (m *Media) ClearOptions() {
	m.options = map[string]interface{}{}
}

func (m *Media) GetStatus() MediaStatus {
	return MediaStatus(safeGetScalar(m.Get(dataKeyStatus)))
}

/**
set the status. Any value is accepted, the encoding service is the authority on which
transitions are legal.
*/
func (m *Media) SetStatus(status MediaStatus) {
	m.Set(dataKeyStatus, string(status))
}

/**
record an error against the job. This also moves it into the Error status.
*/
func (m *Media) SetError(msg string) {
	m.errorMessage = msg
	m.SetStatus(MEDIA_ERROR)
}

func (m *Media) GetError() string {
	return m.errorMessage
}

func (m *Media) SetOnHold(onHold bool) {
	m.isOnHold = onHold
}

/**
apply freshly normalised data. `data` is merged into the generic data store, `options` into the
job options, and the extended flag is replaced.
*/
func (m *Media) Update(data map[string]interface{}, options map[string]interface{}, extended bool) {
	m.SetData(data)
	m.SetOptions(options)
	m.isExtended = extended
}

func (m *Media) IsNew() bool {
	return m.GetStatus() == MEDIA_NEW
}

func (m *Media) IsReady() bool {
	return m.GetStatus() == MEDIA_READY
}

func (m *Media) IsDone() bool {
	return m.GetStatus() == MEDIA_FINISHED
}

func (m *Media) IsError() bool {
	return m.GetStatus() == MEDIA_ERROR
}

/**
true if the job itself is in error or any of its formats is
*/
func (m *Media) HasError() bool {
	if m.IsError() {
		return true
	}
	for _, format := range m.formats {
		if format.IsError() {
			return true
		}
	}
	return false
}

/**
the hold flag only shows while the job is waiting to be processed
*/
func (m *Media) IsOnHold() bool {
	return m.isOnHold && m.GetStatus() == MEDIA_READY
}

/**
true while the job has been submitted and is moving through the encoder.
a New job has not been submitted yet so it is not encoding.
*/
func (m *Media) IsEncoding() bool {
	return !m.IsNew() && !m.IsOnHold() && encodingStatuses.Contains(m.GetStatus())
}

func (m *Media) IsExtended() bool {
	return m.isExtended
}

/**
sources are all updated by the same request, so if the first one is extended we assume the rest are
*/
func (m *Media) IsSourceExtended() bool {
	if !m.HasSources() {
		return false
	}
	return m.sources[0].IsExtended()
}

/**
apply a normalised job status record.
the record's scalar fields and leftover properties go into the data store, formats are rebuilt from the
record and sources are only taken from the record if the media doesn't have any yet.
*/
func (m *Media) ApplyStatus(rec parser.StatusRecord, extended bool) error {
	formats := make([]*Format, len(rec.Formats))
	for i, formatRec := range rec.Formats {
		formats[i] = FormatFromRecord(formatRec)
	}

	data := payload.CopyMap(rec.Properties)
	data["id"] = rec.Id
	data["userId"] = rec.UserId
	data[dataKeyStatus] = rec.Status
	m.Update(data, nil, extended)

	m.ClearFormats()
	for _, format := range formats {
		m.AddFormat(format)
	}

	if !m.HasSources() {
		for _, location := range rec.Sources {
			if err := m.AddSource(location); err != nil {
				return err
			}
		}
	}
	return nil
}

/**
apply an entry from a media list
*/
func (m *Media) ApplyStub(stub parser.MediaStub) error {
	data := payload.CopyMap(stub.Properties)
	data["id"] = stub.Id
	data[dataKeyStatus] = stub.Status
	m.SetData(data)

	if !m.HasSources() {
		for _, location := range stub.Sources {
			if err := m.AddSource(location); err != nil {
				return err
			}
		}
	}
	return nil
}

/**
apply technical metadata. Sources are matched up by position, any extra entries in the info become new
sources with no location.
*/
func (m *Media) ApplyMediaInfo(info *parser.MediaInfo) error {
	if info == nil {
		return nil
	}
	for i, sourceInfo := range info.Sources {
		if i < len(m.sources) {
			if err := m.sources[i].ApplyInfo(sourceInfo); err != nil {
				return err
			}
		} else {
			log.Printf("WARNING: media %s has info for source %d but only %d sources, adding one", m.GetId(), i, len(m.sources))
			newSource, err := SourceFromInfo("", sourceInfo)
			if err != nil {
				return err
			}
			m.sources = append(m.sources, newSource)
		}
	}
	return nil
}
