package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"reflect"

	"github.com/clbanning/mxj/v2"
	"github.com/davecgh/go-spew/spew"
	"github.com/mitchellh/mapstructure"
)

var ErrInvalidInput = errors.New("invalid input payload")

func init() {
	//attribute names go into the tree as-is, so <format id="1"> and <format><id>1</id></format> look the same
	mxj.PrependAttrWithHyphen(false)
}

/**
coerce the incoming payload into a nested map of string -> value.
accepts:
- nil (returns an empty map)
- a map[string]interface{}, returned unchanged
- a map[interface{}]interface{} as produced by yaml decoders, keys are stringified recursively
- []byte, string or io.Reader containing an XML document. The root element is unwrapped, so
  <response><id>1</id></response> becomes {"id":"1"}. Repeated elements become sequences.
- a struct or pointer to a struct, converted via mapstructure

anything else returns an error wrapping ErrInvalidInput
*/
func Prepare(data interface{}) (map[string]interface{}, error) {
	if data == nil {
		return map[string]interface{}{}, nil
	}

	switch typed := data.(type) {
	case map[string]interface{}:
		return typed, nil
	case map[interface{}]interface{}:
		converted, err := stringifyKeys(typed)
		if err != nil {
			return nil, err
		}
		return converted.(map[string]interface{}), nil
	case []byte:
		return PrepareXml(typed)
	case string:
		return PrepareXml([]byte(typed))
	case io.Reader:
		content, readErr := ioutil.ReadAll(typed)
		if readErr != nil {
			return nil, fmt.Errorf("%w: could not read payload: %s", ErrInvalidInput, readErr)
		}
		return PrepareXml(content)
	}

	value := reflect.Indirect(reflect.ValueOf(data))
	if value.Kind() == reflect.Struct {
		var rtn map[string]interface{}
		decodeErr := mapstructure.Decode(value.Interface(), &rtn)
		if decodeErr != nil {
			return nil, fmt.Errorf("%w: could not convert %s to a map: %s", ErrInvalidInput, value.Type(), decodeErr)
		}
		return rtn, nil
	}

	log.Printf("ERROR: payload of type %s can't be treated as a map: %s", reflect.TypeOf(data), spew.Sdump(data))
	return nil, fmt.Errorf("%w: unsupported payload type %s", ErrInvalidInput, reflect.TypeOf(data))
}

/**
decode an XML document into a nested map, unwrapping the root element
*/
func PrepareXml(content []byte) (map[string]interface{}, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidInput)
	}

	tree, xmlErr := mxj.NewMapXml(trimmed)
	if xmlErr != nil {
		log.Printf("ERROR: could not parse payload as XML: %s. Offending data was %s", xmlErr, string(trimmed))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, xmlErr)
	}

	for _, root := range tree {
		switch rootContent := root.(type) {
		case map[string]interface{}:
			return rootContent, nil
		case string:
			if rootContent == "" {
				return map[string]interface{}{}, nil
			}
		}
		return nil, fmt.Errorf("%w: root element has no child elements", ErrInvalidInput)
	}
	return nil, fmt.Errorf("%w: document has no root element", ErrInvalidInput)
}

/**
decode a JSON object into a nested map
*/
func PrepareJson(content []byte) (map[string]interface{}, error) {
	var rtn map[string]interface{}
	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.UseNumber()
	if err := decoder.Decode(&rtn); err != nil {
		log.Printf("ERROR: could not parse payload as JSON: %s. Offending data was %s", err, string(content))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if rtn == nil {
		return map[string]interface{}{}, nil
	}
	return rtn, nil
}

func stringifyKeys(value interface{}) (interface{}, error) {
	switch typed := value.(type) {
	case map[interface{}]interface{}:
		rtn := make(map[string]interface{}, len(typed))
		for k, v := range typed {
			converted, err := stringifyKeys(v)
			if err != nil {
				return nil, err
			}
			switch key := k.(type) {
			case string:
				rtn[key] = converted
			case int, int64, uint64, float64, bool:
				rtn[Scalar(key)] = converted
			default:
				return nil, fmt.Errorf("%w: map key of type %s", ErrInvalidInput, reflect.TypeOf(k))
			}
		}
		return rtn, nil
	case []interface{}:
		rtn := make([]interface{}, len(typed))
		for i, v := range typed {
			converted, err := stringifyKeys(v)
			if err != nil {
				return nil, err
			}
			rtn[i] = converted
		}
		return rtn, nil
	default:
		return value, nil
	}
}
