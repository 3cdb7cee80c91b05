package models

import (
	"log"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/guardian/encodingstatus/common/parser"
)

const (
	FORMAT_STATUS_ERROR    = "Error"
	FORMAT_STATUS_FINISHED = "Finished"
)

/**
the status and timing fields of a format, decoded from the known property keys
*/
type FormatProperties struct {
	Status        string    `json:"status" mapstructure:"status"`
	Created       time.Time `json:"created" mapstructure:"created"`
	Started       time.Time `json:"started" mapstructure:"started"`
	Finished      time.Time `json:"finished" mapstructure:"finished"`
	Duration      string    `json:"duration" mapstructure:"duration"`
	ConvertTime   string    `json:"converttime" mapstructure:"converttime"`
	ConvertedSize string    `json:"convertedsize" mapstructure:"convertedsize"`
	Queued        string    `json:"queued" mapstructure:"queued"`

	UnparsedTimes map[string]string `json:"unparsedTimes,omitempty" mapstructure:"-"`
}

/**
one requested output of a media job
*/
type Format struct {
	Id           string                 `json:"id"`
	Output       string                 `json:"output"`
	Destinations map[string]string      `json:"destinations"`
	Properties   FormatProperties       `json:"properties"`
	Options      map[string]interface{} `json:"options"`
}

func NewFormat(output string, options map[string]interface{}) *Format {
	if options == nil {
		options = map[string]interface{}{}
	}
	return &Format{
		Output:       output,
		Destinations: map[string]string{},
		Options:      options,
	}
}

//format properties that hold timestamps
var formatTimeKeys = []string{"created", "started", "finished"}

/**
build a Format from its canonical record.
a timestamp in a layout ParseServiceTime does not know is kept as-is in Properties.UnparsedTimes and
its typed field is left zero. Other properties that don't fit their typed field are logged and skipped.
*/
func FormatFromRecord(rec parser.FormatRecord) *Format {
	rtn := NewFormat(rec.Output, nil)
	rtn.Id = rec.Id

	for dest, status := range rec.Destinations {
		rtn.Destinations[dest] = status
	}
	for k, v := range rec.Options {
		rtn.Options[k] = v
	}

	decodeInput := make(map[string]interface{}, len(rec.Properties))
	for k, v := range rec.Properties {
		decodeInput[k] = v
	}

	unparsedTimes := map[string]string{}
	for _, key := range formatTimeKeys {
		value, haveValue := decodeInput[key]
		if !haveValue || value == nil {
			continue
		}
		rawString := safeGetScalar(value)
		if _, parseErr := ParseServiceTime(rawString); parseErr != nil {
			log.Printf("WARNING: format %s has a %s timestamp in an unknown layout, keeping it as-is: %s", rec.Id, key, parseErr)
			unparsedTimes[key] = rawString
			delete(decodeInput, key)
		}
	}

	decodeErr := CustomisedMapStructureDecode(decodeInput, &rtn.Properties)
	if decodeErr != nil {
		log.Printf("WARNING: some properties of format %s could not be decoded: %s. Offending data was %s", rec.Id, decodeErr, spew.Sdump(rec.Properties))
	}
	rtn.Properties.UnparsedTimes = unparsedTimes
	return rtn
}

func (f *Format) IsError() bool {
	return f.Properties.Status == FORMAT_STATUS_ERROR
}

func (f *Format) IsDone() bool {
	return f.Properties.Status == FORMAT_STATUS_FINISHED
}

/**
returns the destinations whose delivery status matches the one given
*/
func (f *Format) DestinationsWithStatus(status string) []string {
	rtn := make([]string, 0)
	for dest, destStatus := range f.Destinations {
		if destStatus == status {
			rtn = append(rtn, dest)
		}
	}
	return rtn
}
