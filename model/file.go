package model

import "time"

// File is a stored report as listed by the report storage.
type File struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mime_type"`
	ModifiedAt time.Time `json:"modified_at"`
}

func (f File) RowID() string { return f.Name }

func (f File) SearchText() string { return f.Name + " " + f.MimeType }
