package helpers

import (
	"mime"
	"net/url"
	"path"
	"strings"
	"sync"
)

type MediaItemType string

const (
	ITEM_TYPE_VIDEO MediaItemType = "video"
	ITEM_TYPE_AUDIO MediaItemType = "audio"
	ITEM_TYPE_IMAGE MediaItemType = "image"
	ITEM_TYPE_OTHER MediaItemType = "other"
)

var once sync.Once

/**
guess the kind of media at the given location from its file extension.
the location can be a plain path or a URL, any query string or fragment is ignored.
*/
func ItemTypeForLocation(location string) MediaItemType {
	once.Do(func() {
		mime.AddExtensionType(".mxf", "video/x-material-exchange-format")
		mime.AddExtensionType(".mts", "video/x-mpeg-transport-stream")
		mime.AddExtensionType(".mp4", "video/mp4")
		mime.AddExtensionType(".mov", "video/quicktime")
		mime.AddExtensionType(".m4a", "audio/mp4")
		mime.AddExtensionType(".mp3", "audio/mpeg")
		mime.AddExtensionType(".wav", "audio/wav")
	})

	filePath := location
	if parsed, err := url.Parse(location); err == nil && parsed.Path != "" {
		filePath = parsed.Path
	}

	extension := strings.ToLower(path.Ext(filePath))
	if extension == "" {
		return ITEM_TYPE_OTHER
	}

	mimeType := mime.TypeByExtension(extension)
	switch {
	case strings.HasPrefix(mimeType, "video/"):
		return ITEM_TYPE_VIDEO
	case strings.HasPrefix(mimeType, "audio/"):
		return ITEM_TYPE_AUDIO
	case strings.HasPrefix(mimeType, "image/"):
		return ITEM_TYPE_IMAGE
	default:
		return ITEM_TYPE_OTHER
	}
}
