package main

import (
	"github.com/go-redis/redis/v7"
	"github.com/guardian/encodingstatus/common/helpers"
	"log"
	"net/http"
)

type HealthcheckHandler struct {
	redisClient redis.Cmdable
}

func (h HealthcheckHandler) ServeHTTP(w http.ResponseWriter, request *http.Request) {
	_, err := h.redisClient.Ping().Result()

	if err == nil {
		helpers.WriteJsonContent(helpers.GenericErrorResponse{Status: "ok", Detail: "redis reachable"}, w, 200)
	} else {
		log.Printf("HEALTHCHECK FAILED: %s connecting to Redis", err)
		response := helpers.GenericErrorResponse{
			Status: "error",
			Detail: "could not contact redis db",
		}
		helpers.WriteJsonContent(response, w, 500)
	}
}
