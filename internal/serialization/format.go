package serialization

import "time"

// Format constants.
const (
	MagicBytes      = "TWLN"
	FormatVersion   = 1
	HeaderAlignment = 64   // Data section starts on a 64-byte boundary
	FixedHeaderSize = 64   // Binary header size (0x40 bytes)
	ChecksumSize    = 32   // SHA-256 checksum size
	ChecksumOffset  = 0x20 // Checksum offset in the fixed header
)

// DTypeFloat64 is the only element type stored in snapshots.
const DTypeFloat64 = "float64"

// Flags for the fixed header.
const (
	FlagHasMetadata uint32 = 1 << 0 // custom metadata included
)

// Header is the JSON header of a snapshot.
type Header struct {
	FormatVersion   int               `json:"format_version"`
	ModelType       string            `json:"model_type"`
	CreatedAt       time.Time         `json:"created_at"`
	Hyperparameters Hyperparameters   `json:"hyperparameters"`
	Layers          []LayerMeta       `json:"layers"`
	Tensors         []TensorMeta      `json:"tensors"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// Hyperparameters of the saved network.
type Hyperparameters struct {
	InputSize    int     `json:"input_size"`
	HiddenSize   int     `json:"hidden_size"`
	OutputSize   int     `json:"output_size"`
	LearningRate float64 `json:"learning_rate"`
	UpdateRule   string  `json:"update_rule,omitempty"`
	Activation   string  `json:"activation,omitempty"`
}

// LayerMeta describes one layer: its role and weight matrix shape.
type LayerMeta struct {
	Role    string `json:"role"`
	Neurons int    `json:"neurons"`
	Inputs  int    `json:"inputs"`
}

// TensorMeta locates a tensor in the data section.
type TensorMeta struct {
	Name   string `json:"name"`   // e.g. "layers.0.weight"
	DType  string `json:"dtype"`  // always "float64"
	Shape  []int  `json:"shape"`  // e.g. [hidden, input]
	Offset int64  `json:"offset"` // bytes from the start of the data section
	Size   int64  `json:"size"`   // bytes
}

// Tensor is a named, shaped block of values in row-major order.
type Tensor struct {
	Name  string
	Shape []int
	Data  []float64
}

// NumElements returns the product of the shape dimensions.
func (t *Tensor) NumElements() int {
	return numElements(t.Shape)
}

// Snapshot is a decoded (or to be encoded) file: a header plus its tensors.
// Header.Tensors is derived from Tensors by the writer.
type Snapshot struct {
	Header  Header
	Tensors []Tensor
}

// Tensor returns the tensor called name.
func (s *Snapshot) Tensor(name string) (*Tensor, bool) {
	for i := range s.Tensors {
		if s.Tensors[i].Name == name {
			return &s.Tensors[i], true
		}
	}
	return nil, false
}

func numElements(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

func alignedSize(n int64) int64 {
	return n + (HeaderAlignment-(n%HeaderAlignment))%HeaderAlignment
}
