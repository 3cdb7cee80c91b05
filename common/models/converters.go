package models

import "github.com/guardian/encodingstatus/common/payload"

/**
return the value as a string if it is one, otherwise an empty string
*/
func safeGetString(value interface{}) string {
	if stringValue, isString := value.(string); isString {
		return stringValue
	}
	return ""
}

func safeGetBool(value interface{}, defaultValue bool) bool {
	if boolValue, isBool := value.(bool); isBool {
		return boolValue
	}
	return defaultValue
}

/**
render any scalar value as a string, nil gives an empty string
*/
func safeGetScalar(value interface{}) string {
	return payload.Scalar(value)
}
