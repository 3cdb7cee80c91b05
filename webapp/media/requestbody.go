package media

import (
	"bytes"
	"errors"
	"github.com/go-redis/redis/v7"
	"github.com/guardian/encodingstatus/common/helpers"
	"github.com/guardian/encodingstatus/common/models"
	"github.com/guardian/encodingstatus/common/payload"
	"github.com/guardian/encodingstatus/common/parser"
	"log"
	"net/http"
	"strings"
)

/**
reads the request body and turns it into something the parser accepts.
JSON bodies are decoded here, anything else is handed over as raw bytes and treated as XML.
*/
func readPayload(r *http.Request, maxPayloadBytes int64) (interface{}, *helpers.GenericErrorResponse, int) {
	if r.Body == nil {
		return nil, &helpers.GenericErrorResponse{Status: "error", Detail: "no request body"}, 400
	}
	defer r.Body.Close()

	rawContent, readErr := helpers.ReadLimitedBody(r.Body, maxPayloadBytes)
	if readErr != nil {
		log.Print("ERROR: Could not read in request body: ", readErr)
		return nil, &helpers.GenericErrorResponse{Status: "error", Detail: "could not read in content"}, 400
	}

	trimmed := bytes.TrimSpace(rawContent)
	if len(trimmed) == 0 {
		return nil, &helpers.GenericErrorResponse{Status: "error", Detail: "empty request body"}, 400
	}

	if isJsonBody(r, trimmed) {
		decoded, decodeErr := payload.PrepareJson(trimmed)
		if decodeErr != nil {
			log.Printf("ERROR: could not understand request body: %s. Offending data was %s.", decodeErr, string(rawContent))
			return nil, &helpers.GenericErrorResponse{Status: "error", Detail: "could not understand request body"}, 400
		}
		return decoded, nil, 200
	}
	return trimmed, nil, 200
}

func isJsonBody(r *http.Request, trimmed []byte) bool {
	contentType := r.Header.Get("Content-Type")
	if strings.Contains(contentType, "json") {
		return true
	}
	if strings.Contains(contentType, "xml") {
		return false
	}
	return trimmed[0] == '{'
}

/**
maps a parser error onto a response
*/
func parseErrorResponse(err error) (*helpers.GenericErrorResponse, int) {
	if errors.Is(err, parser.ErrInvalidInput) {
		return &helpers.GenericErrorResponse{Status: "error", Detail: err.Error()}, 400
	}
	return &helpers.GenericErrorResponse{Status: "error", Detail: "could not process payload"}, 500
}

/**
gets the media with the given id from the datastore, or a fresh one if we have not seen it before
*/
func loadOrCreateMedia(mediaId string, redisClient *redis.Client) (*models.Media, error) {
	existing, getErr := models.MediaForId(mediaId, redisClient)
	if getErr != nil {
		return nil, getErr
	}
	if existing != nil {
		return existing, nil
	}

	newMedia, newErr := models.NewMedia(nil, nil, nil)
	if newErr != nil {
		return nil, newErr
	}
	newMedia.SetId(mediaId)
	return newMedia, nil
}
