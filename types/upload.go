package types

type UploadImageResp struct {
	Key   string    `json:"key"`
	URL   string    `json:"url"`
	Media MediaMeta `json:"media"`
}
