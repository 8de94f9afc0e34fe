package models

import "time"

// StoredObject is one object in the bucket together with its text body.
type StoredObject struct {
	Name        string
	ContentType string
	Size        int64
	Created     time.Time
	Content     string
}

// FileInfo is a bucket listing entry.
type FileInfo struct {
	Name        string  `json:"name"`
	Size        int64   `json:"size"`
	Created     *string `json:"created"`
	ContentType string  `json:"content_type"`
	URL         string  `json:"url"`
}

// NewFileInfo builds the listing entry for an object. A zero creation time is
// reported as null.
func NewFileInfo(name string, size int64, created time.Time, contentType string) FileInfo {
	info := FileInfo{
		Name:        name,
		Size:        size,
		ContentType: contentType,
		URL:         FileURL(name),
	}
	if !created.IsZero() {
		ts := created.UTC().Format(time.RFC3339Nano)
		info.Created = &ts
	}
	return info
}

// FileURL is the service path that serves an object.
func FileURL(name string) string {
	return "/file/" + name
}
