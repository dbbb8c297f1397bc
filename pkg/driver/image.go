package driver

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Image models a program image: the register-machine form of a compiled
// jijo program, as emitted by the code generator.
type Image struct {
	Path string
	Name string
	Code []Instruction
}

// Instruction is one step of an image. Which fields matter depends on Op.
type Instruction struct {
	Op       string
	Dst      string
	Args     []string
	Value    string
	Operator string
	Label    string
	Target   string
}

// LoadImage parses a program image from disk.
func LoadImage(path string) (*Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("image: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, err := DecodeImage(file)
	if err != nil {
		return nil, fmt.Errorf("image: parse %s: %w", abs, err)
	}
	img.Path = abs
	if img.Name == "" {
		img.Name = strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	}
	return img, nil
}

// DecodeImage reads a single YAML image document from r.
func DecodeImage(r io.Reader) (*Image, error) {
	var raw imageDisk
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty image")
		}
		return nil, err
	}
	return raw.toImage(), nil
}

// DecodeInstruction parses one flow-style instruction such as
// `{op: number, dst: x, value: 2}`.
func DecodeInstruction(src string) (Instruction, error) {
	var raw instructionDisk
	decoder := yaml.NewDecoder(strings.NewReader(src))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		if err == io.EOF {
			return Instruction{}, fmt.Errorf("empty instruction")
		}
		return Instruction{}, err
	}
	return raw.toInstruction(), nil
}

// WriteImage serialises img to path.
func WriteImage(img *Image, path string) error {
	if img == nil {
		return fmt.Errorf("image: nil image")
	}
	if path == "" {
		if img.Path == "" {
			return fmt.Errorf("image: missing path")
		}
		path = img.Path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("image: resolve %s: %w", path, err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(img.toDisk()); err != nil {
		return fmt.Errorf("image: marshal %s: %w", abs, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("image: encoder close: %w", err)
	}
	if err := os.WriteFile(abs, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("image: write %s: %w", abs, err)
	}
	img.Path = abs
	return nil
}

type imageDisk struct {
	Name string            `yaml:"name,omitempty"`
	Code []instructionDisk `yaml:"code"`
}

type instructionDisk struct {
	Op       scalar   `yaml:"op"`
	Dst      scalar   `yaml:"dst,omitempty"`
	Args     []scalar `yaml:"args,omitempty,flow"`
	Value    scalar   `yaml:"value,omitempty"`
	Operator scalar   `yaml:"operator,omitempty"`
	Label    scalar   `yaml:"label,omitempty"`
	Target   scalar   `yaml:"target,omitempty"`
}

// scalar is an image field kept as its source text. Plain string fields
// would turn `op: null` or `value: ~` into "".
type scalar string

func (s *scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", node.Line)
	}
	*s = scalar(node.Value)
	return nil
}

func (s scalar) trimmed() string { return strings.TrimSpace(string(s)) }

func (d imageDisk) toImage() *Image {
	img := &Image{
		Name: strings.TrimSpace(d.Name),
		Code: make([]Instruction, 0, len(d.Code)),
	}
	for _, in := range d.Code {
		img.Code = append(img.Code, in.toInstruction())
	}
	return img
}

func (d instructionDisk) toInstruction() Instruction {
	args := make([]string, 0, len(d.Args))
	for _, arg := range d.Args {
		args = append(args, arg.trimmed())
	}
	return Instruction{
		Op:       strings.ToLower(d.Op.trimmed()),
		Dst:      d.Dst.trimmed(),
		Args:     args,
		Value:    string(d.Value),
		Operator: d.Operator.trimmed(),
		Label:    d.Label.trimmed(),
		Target:   d.Target.trimmed(),
	}
}

func (img *Image) toDisk() imageDisk {
	code := make([]instructionDisk, 0, len(img.Code))
	for _, in := range img.Code {
		var args []scalar
		for _, arg := range in.Args {
			args = append(args, scalar(arg))
		}
		code = append(code, instructionDisk{
			Op:       scalar(in.Op),
			Dst:      scalar(in.Dst),
			Args:     args,
			Value:    scalar(in.Value),
			Operator: scalar(in.Operator),
			Label:    scalar(in.Label),
			Target:   scalar(in.Target),
		})
	}
	return imageDisk{Name: img.Name, Code: code}
}
