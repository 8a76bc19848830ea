package model

// Metadata describes the ONNX model: tensor shapes, class names and the
// square input resolution the network expects.
type Metadata struct {
	InputShape  []int64  `json:"input_shape"`
	OutputShape []int64  `json:"output_shape"`
	Classes     []string `json:"classes"`
	ImageSize   int      `json:"image_size"`
}

// Result holds the probability vector for the first classified subject.
// An empty vector means the model produced no usable output.
type Result struct {
	Probs []float32
}

// Classifier is the pretrained model collaborator. Implementations must be
// safe for concurrent use; the handler shares one instance across requests.
type Classifier interface {
	Predict(path string) (*Result, error)
	Close() error
}
