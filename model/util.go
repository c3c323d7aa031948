package model

// KeyValuePair is one labelled line of a detail view.
type KeyValuePair struct {
	Key   string
	Value string
}

// Product is the ML product line a record belongs to.
type Product string

const (
	ProductAudio      Product = "audio"
	ProductVision     Product = "vision"
	ProductLLM        Product = "llm"
	ProductTimeSeries Product = "time-series"
)

// Detailer is implemented by records that have a detail view.
type Detailer interface {
	ToDetails() []KeyValuePair
}

// Searchable is implemented by records that can be matched by a list search.
type Searchable interface {
	SearchText() string
}
