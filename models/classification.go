package models

// Classification is the outcome of one classify request: the stored upload
// name, the predicted category with its raw confidence, the points awarded,
// and the persisted event.
//
// Confidence is the maximum value of the model's output vector as-is. It is
// not re-normalized, so unless the output layer is already a probability
// distribution this is not a true probability.
type Classification struct {
	StoredFile string  `json:"stored_file"`
	Category   string  `json:"category"`
	Confidence float32 `json:"confidence"`
	Points     int     `json:"points"`
	Record     Record  `json:"record"`
}
