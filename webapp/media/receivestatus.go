package media

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/go-redis/redis/v7"
	"github.com/guardian/encodingstatus/common/helpers"
	"github.com/guardian/encodingstatus/common/parser"
	"log"
	"net/http"
	"time"
)

type ReceiveStatus struct {
	redisClient     *redis.Client
	expiry          time.Duration
	maxPayloadBytes int64
}

type ReceiveStatusResponse struct {
	Status string         `json:"status"`
	Media  []MediaSummary `json:"media"`
}

/**
accepts a job status report from the encoding service, as XML or JSON. Pass extended=true when the
report carries a list of jobs rather than a single one.
*/
func (h ReceiveStatus) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !helpers.AssertHttpMethod(r, w, "POST") {
		return
	}

	queryParams, paramsErr := helpers.GetQueryParams(r.RequestURI)
	if paramsErr != nil {
		helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "error", Detail: paramsErr.Error()}, w, 400)
		return
	}
	extended, boolErr := helpers.GetBoolFromValues(queryParams, "extended", false)
	if boolErr != nil {
		helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "error", Detail: "extended must be true or false"}, w, 400)
		return
	}

	content, errResponse, errCode := readPayload(r, h.maxPayloadBytes)
	if errResponse != nil {
		helpers.WriteJsonContent(errResponse, w, errCode)
		return
	}

	records, parseErr := parser.ParseMediaStatus(content, extended)
	if parseErr != nil {
		log.Printf("ERROR: could not parse status payload: %s", parseErr)
		response, code := parseErrorResponse(parseErr)
		helpers.WriteJsonContent(response, w, code)
		return
	}

	//check everything first so that we don't store half a report
	for i, rec := range records {
		if rec.Id == "" {
			log.Printf("ERROR: status record %d has no id: %s", i, spew.Sdump(rec))
			helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "error", Detail: "status record with no id"}, w, 400)
			return
		}
	}

	summaries := make([]MediaSummary, 0, len(records))
	for _, rec := range records {
		media, loadErr := loadOrCreateMedia(rec.Id, h.redisClient)
		if loadErr != nil {
			log.Printf("ERROR: could not load media %s: %s", rec.Id, loadErr)
			helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "db_error", Detail: "could not load media"}, w, 500)
			return
		}

		applyErr := media.ApplyStatus(rec, extended)
		if applyErr != nil {
			log.Printf("ERROR: could not apply status to media %s: %s", rec.Id, applyErr)
			helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "error", Detail: applyErr.Error()}, w, 400)
			return
		}

		storeErr := media.Store(h.redisClient, h.expiry)
		if storeErr != nil {
			log.Printf("ERROR: could not store media %s: %s", rec.Id, storeErr)
			helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "db_error", Detail: "could not store media"}, w, 500)
			return
		}
		summaries = append(summaries, SummariseMedia(media))
	}

	helpers.WriteJsonContent(ReceiveStatusResponse{"ok", summaries}, w, 200)
}
