package models

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/go-redis/redis/v7"
)

const (
	MEDIA_KEY_PREFIX = "encodingstatus:Media:"
	MEDIAIDX_STATUS  = "encodingstatus:media:statusindex" //set per status, members are media ids
)

/**
the persisted form of a Media. Only the id, hold flag and status are kept; sources, formats,
options and the error message have to be rebuilt from the encoding service after a restore.
*/
type mediaSnapshot struct {
	Id       string                 `json:"id"`
	IsOnHold bool                   `json:"isOnHold"`
	Data     map[string]interface{} `json:"data"`
}

func (m *Media) MarshalJSON() ([]byte, error) {
	return json.Marshal(mediaSnapshot{
		Id:       m.GetId(),
		IsOnHold: m.isOnHold,
		Data: map[string]interface{}{
			dataKeyStatus: string(m.GetStatus()),
		},
	})
}

func (m *Media) UnmarshalJSON(data []byte) error {
	var rawDataMap map[string]interface{}
	err := json.Unmarshal(data, &rawDataMap)
	if err != nil {
		return err
	}

	restoredData := map[string]interface{}{}
	if snapshotData, haveData := rawDataMap["data"].(map[string]interface{}); haveData {
		restoredData[dataKeyStatus] = safeGetString(snapshotData[dataKeyStatus])
	}

	*m = Media{options: map[string]interface{}{}}
	m.isOnHold = safeGetBool(rawDataMap["isOnHold"], false)
	m.Initialize(safeGetString(rawDataMap["id"]), restoredData)
	return nil
}

func mediaKey(forId string) string {
	return MEDIA_KEY_PREFIX + forId
}

func statusIndexKey(status MediaStatus) string {
	return fmt.Sprintf("%s:%s", MEDIAIDX_STATUS, status)
}

/**
save the snapshot of this media to the datastore and move it to the right status index.
an expiry of zero means the record does not expire.
*/
func (m *Media) Store(redisClient redis.Cmdable, expiry time.Duration) error {
	if m.GetId() == "" {
		return fmt.Errorf("can't store a media item with no id")
	}
	dbKey := mediaKey(m.GetId())

	content, marshalErr := json.Marshal(m)
	if marshalErr != nil {
		log.Printf("Could not marshal data for media %s: %s", m.GetId(), marshalErr)
		return marshalErr
	}

	previous, getErr := MediaForId(m.GetId(), redisClient)
	if getErr != nil {
		log.Printf("WARNING: could not read previous state of media %s, status index may be stale: %s", m.GetId(), getErr)
	}

	p := redisClient.Pipeline()
	p.Set(dbKey, string(content), expiry)
	if previous != nil && previous.GetStatus() != m.GetStatus() {
		p.SRem(statusIndexKey(previous.GetStatus()), m.GetId())
	}
	p.SAdd(statusIndexKey(m.GetStatus()), m.GetId())

	_, saveErr := p.Exec()
	if saveErr != nil {
		log.Printf("Could not save data for media %s: %s", m.GetId(), saveErr)
		return saveErr
	}
	return nil
}

/**
remove this media from the datastore and its status index
*/
func (m *Media) Remove(redisClient redis.Cmdable) error {
	p := redisClient.Pipeline()
	p.Del(mediaKey(m.GetId()))
	p.SRem(statusIndexKey(m.GetStatus()), m.GetId())
	_, err := p.Exec()
	if err != nil {
		log.Printf("Could not remove media %s: %s", m.GetId(), err)
	}
	return err
}

/**
restore the media with the given id.
returns:
 - nil, nil if there is nothing stored for that id
 - nil, error if the retrieve fails
 - ptr to Media, nil if the retrieve succeeds
*/
func MediaForId(forId string, redisClient redis.Cmdable) (*Media, error) {
	content, getErr := redisClient.Get(mediaKey(forId)).Result()
	if getErr == redis.Nil {
		return nil, nil
	}
	if getErr != nil {
		log.Printf("Could not retrieve media with id %s: %s", forId, getErr)
		return nil, getErr
	}

	var m Media
	marshalErr := json.Unmarshal([]byte(content), &m)
	if marshalErr != nil {
		log.Printf("Could not unmarshal data from store: %s. Offending data was: %s", marshalErr, content)
		return nil, marshalErr
	}
	return &m, nil
}

/**
returns the ids of all media indexed under the given status, sorted
*/
func ListMediaIdsForStatus(status MediaStatus, redisClient redis.Cmdable) ([]string, error) {
	ids, err := redisClient.SMembers(statusIndexKey(status)).Result()
	if err != nil {
		log.Printf("Could not list media for status %s: %s", status, err)
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}
