package inference

import (
	"context"
	"fmt"
	"sync"

	"github.com/mattn/go-tflite"

	"github.com/prasetyadi/ecosort/internal/config"
	"github.com/prasetyadi/ecosort/internal/logger"
)

// tfliteClassifier is the TFLite-backed implementation of [Classifier].
//
// The interpreter mutates its input and output buffers on every forward
// pass, so the write/invoke/read triple is serialized with mu. One instance
// is shared process-wide.
type tfliteClassifier struct {
	mu sync.Mutex

	model       *tflite.Model
	interpreter *tflite.Interpreter
	options     *tflite.InterpreterOptions

	inputHeight int
	inputWidth  int
	inputSize   int

	logger *logger.Logger
}

// NewTFLiteClassifier loads the model artifact from cfg.Path, allocates the
// interpreter tensors, and caches the input geometry for reuse by
// preprocessing. Called once at process start.
func NewTFLiteClassifier(cfg config.Model, log *logger.Logger) (Classifier, error) {
	model := tflite.NewModelFromFile(cfg.Path)
	if model == nil {
		log.Error().Str("path", cfg.Path).Msg("error loading model artifact")
		return nil, fmt.Errorf("%w: %s", ErrModelLoadFailed, cfg.Path)
	}

	options := tflite.NewInterpreterOptions()
	if cfg.Threads > 0 {
		options.SetNumThread(cfg.Threads)
	}

	interpreter := tflite.NewInterpreter(model, options)
	if interpreter == nil {
		options.Delete()
		model.Delete()
		log.Error().Str("path", cfg.Path).Msg("error creating interpreter")
		return nil, fmt.Errorf("%w: interpreter construction failed", ErrModelLoadFailed)
	}

	if status := interpreter.AllocateTensors(); status != tflite.OK {
		interpreter.Delete()
		options.Delete()
		model.Delete()
		log.Error().Msg("error allocating interpreter tensors")
		return nil, ErrTensorAllocationFailed
	}

	// input shape is [1, height, width, channels]
	input := interpreter.GetInputTensor(0)
	height := input.Dim(1)
	width := input.Dim(2)
	channels := input.Dim(3)

	log.Info().
		Str("path", cfg.Path).
		Int("height", height).
		Int("width", width).
		Int("channels", channels).
		Msg("model artifact loaded")

	return &tfliteClassifier{
		model:       model,
		interpreter: interpreter,
		options:     options,
		inputHeight: height,
		inputWidth:  width,
		inputSize:   height * width * channels,
		logger:      log,
	}, nil
}

// Classify writes the tensor into the model's input slot, runs one forward
// pass, and applies argmax to the output vector. The confidence reported is
// the raw maximum output value; no softmax is applied.
func (c *tfliteClassifier) Classify(ctx context.Context, input []float32) (Prediction, error) {
	log := logger.FromContext(ctx)

	if len(input) != c.inputSize {
		log.Error().Int("got", len(input)).Int("want", c.inputSize).Msg("input tensor size mismatch")
		return Prediction{}, fmt.Errorf("%w: got %d values, want %d", ErrBadInputSize, len(input), c.inputSize)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	copy(c.interpreter.GetInputTensor(0).Float32s(), input)

	if status := c.interpreter.Invoke(); status != tflite.OK {
		log.Error().Msg("model invocation failed")
		return Prediction{}, ErrInvokeFailed
	}

	// copy out before releasing the lock: the slice is a view into the
	// interpreter's output buffer
	raw := c.interpreter.GetOutputTensor(0).Float32s()
	output := make([]float32, len(raw))
	copy(output, raw)

	return predictionFromOutput(output)
}

// InputGeometry returns the height and width cached from the model's input
// tensor descriptor.
func (c *tfliteClassifier) InputGeometry() (int, int) {
	return c.inputHeight, c.inputWidth
}

// Close releases the interpreter, options, and model in reverse order of
// construction.
func (c *tfliteClassifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.interpreter != nil {
		c.interpreter.Delete()
		c.interpreter = nil
	}
	if c.options != nil {
		c.options.Delete()
		c.options = nil
	}
	if c.model != nil {
		c.model.Delete()
		c.model = nil
	}

	return nil
}
