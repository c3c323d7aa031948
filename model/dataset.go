package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Dataset is an entry of the data catalog.
type Dataset struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Domain      string    `json:"domain" yaml:"domain"`
	Owner       string    `json:"owner" yaml:"owner"`
	Format      string    `json:"format" yaml:"format"`
	Location    string    `json:"location" yaml:"location"`
	Rows        int64     `json:"rows" yaml:"rows"`
	SizeBytes   uint64    `json:"size_bytes" yaml:"size_bytes"`
	Tags        []string  `json:"tags" yaml:"tags"`
	Description string    `json:"description" yaml:"description"`
	UpdatedAt   time.Time `json:"updated_at" yaml:"updated_at"`
}

func (d *Dataset) RowID() string { return d.ID }

func (d *Dataset) SearchText() string {
	return strings.Join(append([]string{d.Name, d.Domain, d.Owner, d.Format, d.Description}, d.Tags...), " ")
}

func (d *Dataset) ToDetails() []KeyValuePair {
	return []KeyValuePair{
		{Key: "Dataset", Value: d.Name},
		{Key: "Domain", Value: d.Domain},
		{Key: "Owner", Value: d.Owner},
		{Key: "Format", Value: d.Format},
		{Key: "Location", Value: d.Location},
		{Key: "Rows", Value: humanize.Comma(d.Rows)},
		{Key: "Size", Value: fmt.Sprintf("%s (%d bytes)", humanize.Bytes(d.SizeBytes), d.SizeBytes)},
		{Key: "Tags", Value: strings.Join(d.Tags, ", ")},
		{Key: "Description", Value: d.Description},
		{Key: "Updated", Value: d.UpdatedAt.Format(time.RFC3339)},
	}
}
