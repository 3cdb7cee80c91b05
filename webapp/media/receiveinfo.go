package media

import (
	"github.com/go-redis/redis/v7"
	"github.com/guardian/encodingstatus/common/helpers"
	"github.com/guardian/encodingstatus/common/models"
	"github.com/guardian/encodingstatus/common/parser"
	"log"
	"net/http"
)

type ReceiveInfo struct {
	redisClient     *redis.Client
	maxPayloadBytes int64
}

type ReceiveInfoResponse struct {
	Status string       `json:"status"`
	Media  MediaSummary `json:"media"`
}

/**
accepts a technical metadata report for the sources of a media item and reports what was found.
the media must already be known. The datastore does not keep sources, so the sources in the response
are only the ones carried by this request, with no location.
*/
func (h ReceiveInfo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !helpers.AssertHttpMethod(r, w, "POST") {
		return
	}

	mediaId, idErr := helpers.GetMediaIdFromQuerystring(r.RequestURI)
	if idErr != nil {
		helpers.WriteJsonContent(idErr, w, 400)
		return
	}

	content, errResponse, errCode := readPayload(r, h.maxPayloadBytes)
	if errResponse != nil {
		helpers.WriteJsonContent(errResponse, w, errCode)
		return
	}

	info, parseErr := parser.ParseMediaInfo(content)
	if parseErr != nil {
		log.Printf("ERROR: could not parse media info for %s: %s", mediaId, parseErr)
		response, code := parseErrorResponse(parseErr)
		helpers.WriteJsonContent(response, w, code)
		return
	}

	media, getErr := models.MediaForId(mediaId, h.redisClient)
	if getErr != nil {
		log.Printf("ERROR: could not load media %s: %s", mediaId, getErr)
		helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "db_error", Detail: "could not load media"}, w, 500)
		return
	}
	if media == nil {
		helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "not_found", Detail: "no media with that id"}, w, 404)
		return
	}

	applyErr := media.ApplyMediaInfo(info)
	if applyErr != nil {
		log.Printf("ERROR: could not apply media info to %s: %s", mediaId, applyErr)
		helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "error", Detail: applyErr.Error()}, w, 400)
		return
	}

	helpers.WriteJsonContent(ReceiveInfoResponse{"ok", SummariseMedia(media)}, w, 200)
}
