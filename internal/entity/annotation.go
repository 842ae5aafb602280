package entity

// Shot is a contiguous interval between detected content changes,
// in seconds rounded to two decimals.
type Shot struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Annotation is the tennis-filtered reduction of a video annotation run.
// Labels and Objects are deduplicated by exact description and sorted;
// Shots keep the order returned by the annotation backend.
type Annotation struct {
	Labels  []string `json:"tennis_labels"`
	Objects []string `json:"tennis_objects"`
	Shots   []Shot   `json:"shots"`
}
