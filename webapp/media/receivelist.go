package media

import (
	"github.com/go-redis/redis/v7"
	"github.com/guardian/encodingstatus/common/helpers"
	"github.com/guardian/encodingstatus/common/parser"
	"log"
	"net/http"
	"time"
)

type ReceiveList struct {
	redisClient     *redis.Client
	expiry          time.Duration
	maxPayloadBytes int64
}

type ReceiveListResponse struct {
	Status string   `json:"status"`
	Stored []string `json:"stored"`
}

/**
accepts a media list from the encoding service and refreshes the stored entry for every item in it
*/
func (h ReceiveList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !helpers.AssertHttpMethod(r, w, "POST") {
		return
	}

	content, errResponse, errCode := readPayload(r, h.maxPayloadBytes)
	if errResponse != nil {
		helpers.WriteJsonContent(errResponse, w, errCode)
		return
	}

	stubs, parseErr := parser.ParseMediaList(content)
	if parseErr != nil {
		log.Printf("ERROR: could not parse media list: %s", parseErr)
		response, code := parseErrorResponse(parseErr)
		helpers.WriteJsonContent(response, w, code)
		return
	}

	stored := make([]string, 0, len(stubs))
	for _, stub := range stubs {
		if stub.Id == "" {
			log.Printf("WARNING: skipping media list entry with no id")
			continue
		}
		media, loadErr := loadOrCreateMedia(stub.Id, h.redisClient)
		if loadErr != nil {
			log.Printf("ERROR: could not load media %s: %s", stub.Id, loadErr)
			helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "db_error", Detail: "could not load media"}, w, 500)
			return
		}
		applyErr := media.ApplyStub(stub)
		if applyErr != nil {
			log.Printf("ERROR: could not apply media list entry to %s: %s", stub.Id, applyErr)
			helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "error", Detail: applyErr.Error()}, w, 400)
			return
		}

		storeErr := media.Store(h.redisClient, h.expiry)
		if storeErr != nil {
			log.Printf("ERROR: could not store media %s: %s", stub.Id, storeErr)
			helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "db_error", Detail: "could not store media"}, w, 500)
			return
		}
		stored = append(stored, stub.Id)
	}

	helpers.WriteJsonContent(ReceiveListResponse{"ok", stored}, w, 200)
}
