package media

import (
	"github.com/go-redis/redis/v7"
	"github.com/guardian/encodingstatus/common/helpers"
	"net/http"
	"time"
)

type MediaEndpoints struct {
	receiveStatus ReceiveStatus
	receiveInfo   ReceiveInfo
	receiveList   ReceiveList
	getMedia      GetMedia
	setHold       SetHold
	byStatus      ByStatus
}

func NewMediaEndpoints(redisClient *redis.Client, config *helpers.Config) MediaEndpoints {
	expiry := time.Duration(0)
	maxPayloadBytes := int64(0)
	if config != nil {
		expiry = config.SnapshotExpiryDuration()
		maxPayloadBytes = config.Server.MaxPayloadBytes
	}

	return MediaEndpoints{
		receiveStatus: ReceiveStatus{redisClient: redisClient, expiry: expiry, maxPayloadBytes: maxPayloadBytes},
		receiveInfo:   ReceiveInfo{redisClient: redisClient, maxPayloadBytes: maxPayloadBytes},
		receiveList:   ReceiveList{redisClient: redisClient, expiry: expiry, maxPayloadBytes: maxPayloadBytes},
		getMedia:      GetMedia{redisClient: redisClient},
		setHold:       SetHold{redisClient: redisClient, expiry: expiry},
		byStatus:      ByStatus{redisClient: redisClient},
	}
}

func (e MediaEndpoints) WireUp(baseUrl string) {
	http.Handle(baseUrl+"/status", e.receiveStatus)
	http.Handle(baseUrl+"/info", e.receiveInfo)
	http.Handle(baseUrl+"/list", e.receiveList)
	http.Handle(baseUrl+"/get", e.getMedia)
	http.Handle(baseUrl+"/hold", e.setHold)
	http.Handle(baseUrl+"/bystatus", e.byStatus)
}
