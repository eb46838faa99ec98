// Package inference wraps the pre-trained trash classification model behind
// a single Classify operation. The model artifact is loaded once at process
// start and shared for the process lifetime.
package inference

import "context"

// Labels are the six material categories, in the model's output order.
// The predicted class index maps positionally into this list.
var Labels = [...]string{"kaca", "kardus", "kertas", "logam", "plastik", "residu"}

// Prediction is the outcome of one forward pass.
type Prediction struct {
	// Index is the argmax position in the model's output vector.
	Index int

	// Category is the label at Index.
	Category string

	// Confidence is the raw maximum output value. It is not re-normalized:
	// if the output layer is not a probability distribution, this is not a
	// true probability either. That is intentional.
	Confidence float32
}

// Classifier runs the pre-trained model over a preprocessed input tensor.
//
// Implementations own mutable interpreter state and must serialize Classify
// internally; callers may invoke it from concurrent requests.
type Classifier interface {
	// Classify runs one forward pass over a batch-of-one NHWC float32
	// tensor of InputHeight()*InputWidth()*3 values in [0,1].
	Classify(ctx context.Context, input []float32) (Prediction, error)

	// InputGeometry reports the height and width the model expects,
	// cached from the input tensor descriptor at load time.
	InputGeometry() (height, width int)

	// Close releases the interpreter and model resources.
	Close() error
}

// predictionFromOutput applies standard argmax semantics to the model's
// output vector: the index of the maximum value wins, ties break toward the
// lowest index, and the maximum value itself is reported as confidence.
func predictionFromOutput(output []float32) (Prediction, error) {
	if len(output) != len(Labels) {
		return Prediction{}, ErrUnexpectedOutputShape
	}

	best := 0
	for i, v := range output {
		if v > output[best] {
			best = i
		}
	}

	return Prediction{
		Index:      best,
		Category:   Labels[best],
		Confidence: output[best],
	}, nil
}
