package models

import (
	"github.com/mitchellh/mapstructure"
	"reflect"
	"strings"
	"time"
)

//the encoding service reports timestamps in this layout, in UTC
const ServiceTimeLayout = "2006-01-02 15:04:05"

//sent by the service for timestamps that have not happened yet
const unsetServiceTime = "0000-00-00 00:00:00"

/**
convenience function to perform a mapstructure decode using the customised decode hook below,
to handle timestamp strings. Input is weakly typed, so numbers sent as strings (or the other way round)
decode into whichever the target field wants.
*/
func CustomisedMapStructureDecode(incoming interface{}, outgoing interface{}) error {
	decoder, setupErr := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructureDecodeHook,
		WeaklyTypedInput: true,
		Result:           outgoing,
	})
	if setupErr != nil {
		return setupErr
	}
	return decoder.Decode(incoming)
}

/**
this custom decode hook performs an extra conversion:
- if the input is a string and the output is time, then it will attempt to parse the time as either
an RFC 3339 timestamp or the service's own layout and send the error back up the chain if it can't.
the service's "all zeroes" timestamp gives a zero time.
*/
func mapstructureDecodeHook(inType reflect.Type, outType reflect.Type, value interface{}) (interface{}, error) {
	if inType.Kind() == reflect.String && outType == reflect.TypeOf(time.Time{}) {
		return ParseServiceTime(reflect.ValueOf(value).String())
	}
	return value, nil
}

func ParseServiceTime(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || trimmed == unsetServiceTime {
		return time.Time{}, nil
	}
	if rfcTime, rfcErr := time.Parse(time.RFC3339, trimmed); rfcErr == nil {
		return rfcTime, nil
	}
	return time.Parse(ServiceTimeLayout, trimmed)
}
