package model

import (
	"fmt"
	"strings"
	"time"
)

// Feature is one column of the feature store together with its pipeline stage.
type Feature struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Source      string        `json:"source" yaml:"source"`
	Type        string        `json:"type" yaml:"type"`
	Stage       string        `json:"stage" yaml:"stage"`
	Products    []Product     `json:"products" yaml:"products"`
	Freshness   time.Duration `json:"freshness" yaml:"freshness"`
	NullRate    float64       `json:"null_rate" yaml:"null_rate"`
	Description string        `json:"description" yaml:"description"`
	UpdatedAt   time.Time     `json:"updated_at" yaml:"updated_at"`
}

func (f *Feature) RowID() string { return f.ID }

func (f *Feature) SearchText() string {
	parts := []string{f.Name, f.Source, f.Type, f.Stage, f.Description}
	for _, p := range f.Products {
		parts = append(parts, string(p))
	}
	return strings.Join(parts, " ")
}

func (f *Feature) ProductList() string {
	products := make([]string, 0, len(f.Products))
	for _, p := range f.Products {
		products = append(products, string(p))
	}
	return strings.Join(products, ", ")
}

func (f *Feature) ToDetails() []KeyValuePair {
	return []KeyValuePair{
		{Key: "Feature", Value: f.Name},
		{Key: "Source", Value: f.Source},
		{Key: "Type", Value: f.Type},
		{Key: "Stage", Value: f.Stage},
		{Key: "Products", Value: f.ProductList()},
		{Key: "Freshness", Value: f.Freshness.String()},
		{Key: "Null rate", Value: fmt.Sprintf("%.2f%%", f.NullRate*100)},
		{Key: "Description", Value: f.Description},
		{Key: "Updated", Value: f.UpdatedAt.Format(time.RFC3339)},
	}
}
