package media

import (
	"github.com/go-redis/redis/v7"
	"github.com/guardian/encodingstatus/common/helpers"
	"github.com/guardian/encodingstatus/common/models"
	"log"
	"net/http"
)

type GetMedia struct {
	redisClient *redis.Client
}

func (h GetMedia) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !helpers.AssertHttpMethod(r, w, "GET") {
		return
	}

	mediaId, idErr := helpers.GetMediaIdFromQuerystring(r.RequestURI)
	if idErr != nil {
		helpers.WriteJsonContent(idErr, w, 400)
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

	helpers.WriteJsonContent(SummariseMedia(media), w, 200)
}
