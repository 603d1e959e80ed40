// SPDX-License-Identifier: MIT

package problem

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wclique/clique"
)

// Solution is the serialised outcome of one problem.
type Solution struct {
	Name     string       `yaml:"name,omitempty"`
	Mode     Mode         `yaml:"mode"`
	Found    bool         `yaml:"found"`
	Weight   int64        `yaml:"weight"`
	Vertices []int        `yaml:"vertices,flow"`
	Members  []bool       `yaml:"members,flow"`
	Stats    clique.Stats `yaml:"stats"`
	Elapsed  string       `yaml:"elapsed,omitempty"`
	Error    string       `yaml:"error,omitempty"`
}

// NewSolution records res (or err) for p.
func NewSolution(p *Problem, res clique.Result, elapsed time.Duration, err error) Solution {
	mode := p.Mode
	if mode == "" {
		mode = ModeClique
	}
	s := Solution{Name: p.Name, Mode: mode, Elapsed: elapsed.String()}
	if err != nil {
		s.Error = err.Error()

		return s
	}
	s.Found = res.Found
	s.Weight = res.Weight
	s.Vertices = res.Vertices
	s.Members = res.Members
	s.Stats = res.Stats

	return s
}

// Decode reads every YAML document of r as a Problem. Unknown fields are
// rejected.
func Decode(r io.Reader) ([]*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var out []*Problem
	for {
		p := new(Problem)
		err := dec.Decode(p)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.WithSecondaryError(
				errors.Wrapf(ErrInvalidProblem, "document %d", len(out)), err)
		}
		if err = p.Validate(); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// Load decodes the problems stored in path.
func Load(path string) ([]*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "problem: read %s", path)
	}

	return Decode(bytes.NewReader(data))
}

// Encode writes values as consecutive YAML documents.
func Encode[T any](w io.Writer, values ...T) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for i := range values {
		if err := enc.Encode(values[i]); err != nil {
			return errors.Wrapf(err, "problem: encode document %d", i)
		}
	}

	return enc.Close()
}

// Save writes values to path, replacing it.
func Save[T any](path string, values ...T) error {
	var buf bytes.Buffer
	if err := Encode(&buf, values...); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "problem: write %s", path)
	}

	return nil
}
