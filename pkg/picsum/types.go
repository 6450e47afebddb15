package picsum

// Image is a fetched placeholder image. ID is the canonical id reported by
// the service in the picsum-id response header, which for random fetches
// identifies the image actually served. Data holds the raw image bytes.
type Image struct {
	ID   string
	Data []byte
}

// ImageDetails is the metadata record the service keeps for an image.
type ImageDetails struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	Width       uint16 `json:"width"`
	Height      uint16 `json:"height"`
	URL         string `json:"url"`
	DownloadURL string `json:"download_url"`
}

// imageDetailsWire mirrors ImageDetails with pointer fields so decoding
// can tell an absent field from an explicit zero value. Every field is
// required; explicit zeros and empty strings are accepted.
type imageDetailsWire struct {
	ID          *string `json:"id"`
	Author      *string `json:"author"`
	Width       *uint16 `json:"width"`
	Height      *uint16 `json:"height"`
	URL         *string `json:"url"`
	DownloadURL *string `json:"download_url"`
}

// toDetails materializes the decoded record, reporting the first absent
// field as a decode failure.
func (w *imageDetailsWire) toDetails() (*ImageDetails, error) {
	switch {
	case w.ID == nil:
		return nil, errMissingField("id")
	case w.Author == nil:
		return nil, errMissingField("author")
	case w.Width == nil:
		return nil, errMissingField("width")
	case w.Height == nil:
		return nil, errMissingField("height")
	case w.URL == nil:
		return nil, errMissingField("url")
	case w.DownloadURL == nil:
		return nil, errMissingField("download_url")
	}
	return &ImageDetails{
		ID:          *w.ID,
		Author:      *w.Author,
		Width:       *w.Width,
		Height:      *w.Height,
		URL:         *w.URL,
		DownloadURL: *w.DownloadURL,
	}, nil
}
