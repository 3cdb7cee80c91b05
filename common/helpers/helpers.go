package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

type GenericErrorResponse struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}

func WriteJsonContent(content interface{}, w http.ResponseWriter, statusCode int) {
	contentBytes, marshalErr := json.Marshal(content)
	if marshalErr != nil {
		log.Printf("Could not marshal content for json write: %s", marshalErr)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.Header().Add("Content-Length", strconv.FormatInt(int64(len(contentBytes)), 10))
	w.WriteHeader(statusCode)
	_, writeErr := w.Write(contentBytes)
	if writeErr != nil {
		log.Printf("Could not write content to HTTP socket: %s", writeErr)
	}
}

func ReadJsonBody(from io.Reader, to interface{}) error {
	byteContent, readErr := ioutil.ReadAll(from)
	if readErr != nil {
		return readErr
	}

	marshalErr := json.Unmarshal(byteContent, to)
	return marshalErr
}

/**
reads the whole request body, refusing anything over maxBytes. A maxBytes of zero or less means no limit.
*/
func ReadLimitedBody(from io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		return ioutil.ReadAll(from)
	}
	content, readErr := ioutil.ReadAll(io.LimitReader(from, maxBytes+1))
	if readErr != nil {
		return nil, readErr
	}
	if int64(len(content)) > maxBytes {
		return nil, errors.New("request body too large")
	}
	return content, nil
}

func AssertHttpMethod(request *http.Request, w http.ResponseWriter, method string) bool {
	if request.Method != method {
		log.Printf("Got a %s request, expecting %s", request.Method, method)
		WriteJsonContent(GenericErrorResponse{"error", "wrong method type"}, w, 405)
		return false
	} else {
		return true
	}
}

/**
Breaks down the incoming request URI into a map of string->string
*/
func GetQueryParams(incomingRequestUri string) (*url.Values, error) {
	requestUri, uriParseErr := url.ParseRequestURI(incomingRequestUri)

	if uriParseErr != nil {
		log.Printf("Could not understand incoming request URI '%s': %s", incomingRequestUri, uriParseErr)
		return nil, errors.New("Invalid URI")
	}

	rtn := requestUri.Query()
	return &rtn, nil
}

/**
gets just the "mediaId" parameter from the provided query string.
if it does not exist, a GenericErrorResponse object is returned that is suitable
to be written directly to the outgoing response.
This is a convenience function that calls GetQueryParams and GetMediaIdFromValues
*/
func GetMediaIdFromQuerystring(incomingRequestUri string) (string, *GenericErrorResponse) {
	queryParams, err := GetQueryParams(incomingRequestUri)
	if err != nil {
		return "", &GenericErrorResponse{
			Status: "error",
			Detail: err.Error(),
		}
	}
	return GetMediaIdFromValues(queryParams)
}

func GetMediaIdFromValues(queryParams *url.Values) (string, *GenericErrorResponse) {
	mediaId := strings.TrimSpace(queryParams.Get("mediaId"))

	if mediaId == "" {
		log.Printf("No mediaId parameter in request")
		return "", &GenericErrorResponse{
			Status: "error",
			Detail: "missing mediaId parameter",
		}
	}
	return mediaId, nil
}

/**
reads a true/false style query parameter, returning defaultValue if it is not set.
an unparseable value is an error.
*/
func GetBoolFromValues(queryParams *url.Values, name string, defaultValue bool) (bool, error) {
	stringValue := queryParams.Get(name)
	if stringValue == "" {
		return defaultValue, nil
	}
	return strconv.ParseBool(stringValue)
}
