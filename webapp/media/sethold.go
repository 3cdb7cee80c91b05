package media

import (
	"github.com/go-redis/redis/v7"
	"github.com/guardian/encodingstatus/common/helpers"
	"github.com/guardian/encodingstatus/common/models"
	"log"
	"net/http"
	"time"
)

type SetHold struct {
	redisClient *redis.Client
	expiry      time.Duration
}

/**
puts a media item on hold or releases it. Defaults to putting it on hold if no `hold` parameter is given.
*/
func (h SetHold) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !helpers.AssertHttpMethod(r, w, "PUT") {
		return
	}

	queryParams, paramsErr := helpers.GetQueryParams(r.RequestURI)
	if paramsErr != nil {
		helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "error", Detail: paramsErr.Error()}, w, 400)
		return
	}
	mediaId, idErr := helpers.GetMediaIdFromValues(queryParams)
	if idErr != nil {
		helpers.WriteJsonContent(idErr, w, 400)
		return
	}
	hold, boolErr := helpers.GetBoolFromValues(queryParams, "hold", true)
	if boolErr != nil {
		helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "error", Detail: "hold must be true or false"}, w, 400)
		return
	}

	media, getErr := models.MediaForId(mediaId, h.redisClient)
	if getErr != nil {
		log.Printf("ERROR: could not retrieve media %s: %s", mediaId, getErr)
		helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "db_error", Detail: "could not retrieve media"}, w, 500)
		return
	}
	if media == nil {
		helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "not_found", Detail: "no media with that id"}, w, 404)
		return
	}

	media.SetOnHold(hold)
	storeErr := media.Store(h.redisClient, h.expiry)
	if storeErr != nil {
		log.Printf("ERROR: could not store media %s: %s", mediaId, storeErr)
		helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "db_error", Detail: "could not store media"}, w, 500)
		return
	}

	helpers.WriteJsonContent(SummariseMedia(media), w, 200)
}
