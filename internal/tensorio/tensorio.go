// Package tensorio reads and writes tensors as YAML literals.
//
// A tensor literal is a YAML value: a scalar for rank 0, otherwise nested
// sequences, one level per dimension, e.g. [[1, 2], [3, 4]]. Sequences at the
// same depth must have equal length.
package tensorio

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/kernels/internal/tensor"
)

// ErrRagged is returned when sibling sequences differ in length or depth.
var ErrRagged = errors.New("ragged tensor literal")

// Style selects how Format lays out nested sequences.
type Style int

const (
	// Flow renders the tensor on one line: [[1, 2], [3, 4]].
	Flow Style = iota
	// Block renders one YAML sequence entry per line.
	Block
)

// ParseStyle resolves "flow" or "block".
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "flow":
		return Flow, nil
	case "block":
		return Block, nil
	default:
		return 0, fmt.Errorf("unknown format %q (want flow|block)", name)
	}
}

// Parse decodes a tensor literal into a new tensor of the given dtype.
func Parse(literal string, dtype tensor.DataType) (*tensor.RawTensor, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(literal), &doc); err != nil {
		return nil, fmt.Errorf("parse tensor literal: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("parse tensor literal: empty input")
	}
	root := doc.Content[0]

	shape, err := inferShape(root)
	if err != nil {
		return nil, err
	}
	leaves := make([]*yaml.Node, 0, shape.NumElements())
	collectLeaves(root, &leaves)

	out, err := tensor.NewRaw(shape, dtype)
	if err != nil {
		return nil, err
	}
	for i, leaf := range leaves {
		if err := store(out, i, leaf); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// inferShape walks the first element at every depth and then checks that
// every sibling agrees.
func inferShape(n *yaml.Node) (tensor.Shape, error) {
	shape := tensor.Shape{}
	for cur := n; cur.Kind == yaml.SequenceNode; cur = cur.Content[0] {
		shape = append(shape, len(cur.Content))
		if len(cur.Content) == 0 {
			break
		}
	}
	if err := checkShape(n, shape, 0); err != nil {
		return nil, err
	}
	return shape, nil
}

func checkShape(n *yaml.Node, shape tensor.Shape, depth int) error {
	if depth == len(shape) {
		if n.Kind != yaml.ScalarNode {
			return fmt.Errorf("%w: line %d: expected a number, found a sequence", ErrRagged, n.Line)
		}
		return nil
	}
	if n.Kind != yaml.SequenceNode {
		return fmt.Errorf("%w: line %d: expected a sequence at depth %d", ErrRagged, n.Line, depth)
	}
	if len(n.Content) != shape[depth] {
		return fmt.Errorf("%w: line %d: length %d, want %d", ErrRagged, n.Line, len(n.Content), shape[depth])
	}
	for _, child := range n.Content {
		if err := checkShape(child, shape, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func collectLeaves(n *yaml.Node, out *[]*yaml.Node) {
	if n.Kind == yaml.ScalarNode {
		*out = append(*out, n)
		return
	}
	for _, child := range n.Content {
		collectLeaves(child, out)
	}
}

func store(r *tensor.RawTensor, i int, leaf *yaml.Node) error {
	text := strings.TrimSpace(leaf.Value)
	switch dt := r.DType(); {
	case dt == tensor.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return fmt.Errorf("line %d: %q is not a bool", leaf.Line, text)
		}
		r.AsBool()[i] = b
		return nil
	case dt.IsIntegral(false):
		v, err := parseInt(text, dt)
		if err != nil {
			return fmt.Errorf("line %d: %w", leaf.Line, err)
		}
		setInt(r, i, v)
		return nil
	}

	v, err := parseFloat(text)
	if err != nil {
		return fmt.Errorf("line %d: %q is not a number", leaf.Line, text)
	}
	r.SetFloat64At(i, v)
	return nil
}

// parseInt reads a decimal integer that must fit dt. Integral values in
// float syntax ("2.0", "1e2") are accepted under the same range check.
func parseInt(text string, dt tensor.DataType) (int64, error) {
	bits := dt.Size() * 8

	var (
		v   int64
		err error
	)
	if dt == tensor.Uint8 {
		var u uint64
		u, err = strconv.ParseUint(text, 10, bits)
		v = int64(u)
	} else {
		v, err = strconv.ParseInt(text, 10, bits)
	}
	switch {
	case err == nil:
		return v, nil
	case errors.Is(err, strconv.ErrRange):
		return 0, fmt.Errorf("%q out of range for %v", text, dt)
	}

	f, ferr := parseFloat(text)
	if ferr != nil {
		return 0, fmt.Errorf("%q is not a number", text)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%v is not an integer", f)
	}
	lo, limit := -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
	if dt == tensor.Uint8 {
		lo, limit = 0, math.Ldexp(1, bits)
	}
	if f < lo || f >= limit {
		return 0, fmt.Errorf("%q out of range for %v", text, dt)
	}
	return int64(f), nil
}

// setInt stores v, already range checked, into element i.
func setInt(r *tensor.RawTensor, i int, v int64) {
	switch r.DType() {
	case tensor.Uint8:
		r.AsUint8()[i] = uint8(v)
	case tensor.Int8:
		r.AsInt8()[i] = int8(v)
	case tensor.Int16:
		r.AsInt16()[i] = int16(v)
	case tensor.Int32:
		r.AsInt32()[i] = int32(v)
	case tensor.Int64:
		r.AsInt64()[i] = v
	default:
		panic(fmt.Sprintf("setInt: %s is not an integer dtype", r.DType()))
	}
}

// Format renders r as a tensor literal that Parse accepts.
func Format(r *tensor.RawTensor, style Style) (string, error) {
	root := buildNode(r, r.Shape(), 0, style)
	b, err := yaml.Marshal(root)
	if err != nil {
		return "", fmt.Errorf("format tensor: %w", err)
	}
	return strings.TrimRight(string(b), "\n"), nil
}

// buildNode returns the node for the sub-tensor starting at flat offset
// base with the remaining dims.
func buildNode(r *tensor.RawTensor, dims tensor.Shape, base int, style Style) *yaml.Node {
	if len(dims) == 0 {
		return scalarNode(r, base)
	}

	seq := &yaml.Node{Kind: yaml.SequenceNode}
	if style == Flow || len(dims) == 1 {
		seq.Style = yaml.FlowStyle
	}
	stride := dims[1:].NumElements()
	for i := 0; i < dims[0]; i++ {
		seq.Content = append(seq.Content, buildNode(r, dims[1:], base+i*stride, style))
	}
	return seq
}

// scalarNode leaves the tag empty so the encoder emits plain scalars.
func scalarNode(r *tensor.RawTensor, i int) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode}
	switch dt := r.DType(); {
	case dt == tensor.Bool:
		n.Value = strconv.FormatBool(r.AsBool()[i])
	case dt == tensor.Int64:
		n.Value = strconv.FormatInt(r.AsInt64()[i], 10)
	case dt.IsIntegral(false):
		n.Value = strconv.FormatInt(int64(r.Float64At(i)), 10)
	case dt == tensor.Float64:
		n.Value = formatFloat(r.Float64At(i), 64)
	default:
		n.Value = formatFloat(r.Float64At(i), 32)
	}
	return n
}

func formatFloat(v float64, bits int) string {
	switch {
	case math.IsNaN(v):
		return ".nan"
	case math.IsInf(v, 1):
		return ".inf"
	case math.IsInf(v, -1):
		return "-.inf"
	}
	return strconv.FormatFloat(v, 'g', -1, bits)
}

// parseFloat accepts Go float syntax plus the YAML spellings of NaN and
// the infinities.
func parseFloat(text string) (float64, error) {
	switch strings.ToLower(text) {
	case ".nan":
		return math.NaN(), nil
	case ".inf", "+.inf":
		return math.Inf(1), nil
	case "-.inf":
		return math.Inf(-1), nil
	}
	return strconv.ParseFloat(text, 64)
}

// ParseShape reads a shape written as comma separated extents ("2,3") or as a
// YAML sequence ("[2, 3]"). An empty string or "[]" is the rank-0 shape.
func ParseShape(text string) (tensor.Shape, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return tensor.Shape{}, nil
	}
	if !strings.HasPrefix(text, "[") {
		text = "[" + text + "]"
	}

	var dims []int
	if err := yaml.Unmarshal([]byte(text), &dims); err != nil {
		return nil, fmt.Errorf("parse shape %q: %w", text, err)
	}
	shape := tensor.Shape(dims)
	if shape == nil {
		shape = tensor.Shape{}
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return shape, nil
}
