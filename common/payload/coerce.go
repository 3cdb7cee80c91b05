package payload

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

/**
returns the given value as a sequence. This is where the "one or many" ambiguity of the
incoming payloads is resolved:
- nil gives an empty sequence
- a sequence is returned as a sequence
- a map whose keys are all non-negative integer indices is treated as an already-indexed
  sequence and returned in index order
- anything else is wrapped as a one-element sequence
*/
func AsSequence(value interface{}) []interface{} {
	switch typed := value.(type) {
	case nil:
		return []interface{}{}
	case []interface{}:
		return typed
	case []map[string]interface{}:
		rtn := make([]interface{}, len(typed))
		for i, v := range typed {
			rtn[i] = v
		}
		return rtn
	case []string:
		rtn := make([]interface{}, len(typed))
		for i, v := range typed {
			rtn[i] = v
		}
		return rtn
	case map[string]interface{}:
		if indices, isIndexed := sequenceIndices(typed); isIndexed {
			rtn := make([]interface{}, len(indices))
			for i, idx := range indices {
				rtn[i] = typed[strconv.Itoa(idx)]
			}
			return rtn
		}
	}
	return []interface{}{value}
}

/**
IsIndexedMap returns true if every key of the map is a non-negative integer, i.e. the map is
really a sequence that went through a keyed representation
*/
func IsIndexedMap(value map[string]interface{}) bool {
	_, isIndexed := sequenceIndices(value)
	return isIndexed
}

func sequenceIndices(value map[string]interface{}) ([]int, bool) {
	if len(value) == 0 {
		return nil, false
	}
	indices := make([]int, 0, len(value))
	for k := range value {
		idx, err := strconv.Atoi(k)
		if err != nil || idx < 0 || strconv.Itoa(idx) != k {
			return nil, false
		}
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices, true
}

/**
returns the value as a nested map, or false if it is not one
*/
func AsMap(value interface{}) (map[string]interface{}, bool) {
	switch typed := value.(type) {
	case map[string]interface{}:
		return typed, true
	case map[interface{}]interface{}:
		converted, err := stringifyKeys(typed)
		if err != nil {
			return nil, false
		}
		return converted.(map[string]interface{}), true
	default:
		return nil, false
	}
}

/**
a value is empty if it is nil, an empty string or an empty sequence or map
*/
func IsEmpty(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

/**
returns a shallow copy of the map with all empty values removed
*/
func DropEmpty(from map[string]interface{}) map[string]interface{} {
	rtn := make(map[string]interface{}, len(from))
	for k, v := range from {
		if !IsEmpty(v) {
			rtn[k] = v
		}
	}
	return rtn
}

/**
returns a shallow copy of the map, so keys can be removed without touching the caller's data
*/
func CopyMap(from map[string]interface{}) map[string]interface{} {
	rtn := make(map[string]interface{}, len(from))
	for k, v := range from {
		rtn[k] = v
	}
	return rtn
}

/**
removes the key from the map and returns whatever value it held
*/
func Pop(from map[string]interface{}, key string) interface{} {
	value := from[key]
	delete(from, key)
	return value
}

/**
renders a scalar payload value as a string. nil becomes the empty string.
*/
func Scalar(value interface{}) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case json.Number:
		return typed.String()
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(typed), 'f', -1, 32)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case uint64:
		return strconv.FormatUint(typed, 10)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return fmt.Sprint(value)
	}
}
