package media

import (
	"github.com/go-redis/redis/v7"
	"github.com/guardian/encodingstatus/common/helpers"
	"github.com/guardian/encodingstatus/common/models"
	"log"
	"net/http"
)

type ByStatus struct {
	redisClient *redis.Client
}

type ByStatusResponse struct {
	Status      string   `json:"status"`
	MediaStatus string   `json:"mediaStatus"`
	MediaIds    []string `json:"mediaIds"`
}

func (h ByStatus) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !helpers.AssertHttpMethod(r, w, "GET") {
		return
	}

	queryParams, paramsErr := helpers.GetQueryParams(r.RequestURI)
	if paramsErr != nil {
		helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "error", Detail: paramsErr.Error()}, w, 400)
		return
	}

	status := models.MediaStatus(queryParams.Get("status"))
	if !status.IsKnown() {
		helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "error", Detail: "unknown media status"}, w, 400)
		return
	}

	ids, listErr := models.ListMediaIdsForStatus(status, h.redisClient)
	if listErr != nil {
		log.Printf("ERROR: could not list media for status %s: %s", status, listErr)
		helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "db_error", Detail: "could not list media"}, w, 500)
		return
	}

	helpers.WriteJsonContent(ByStatusResponse{"ok", string(status), ids}, w, 200)
}
