package render

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/turnpath/search"
)

// Coord is a point in the YAML dump.
type Coord struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Document is the YAML form of a publication.
type Document struct {
	Label  string  `yaml:"label"`
	Final  bool    `yaml:"final"`
	Length float64 `yaml:"length"`
	Points int     `yaml:"points"`
	Path   []int   `yaml:"path,flow"`
	Route  []Coord `yaml:"route"`
}

// NewDocument resolves the path of p into coordinates.
func NewDocument(p search.Publication) (Document, error) {
	doc := Document{
		Label:  p.Label,
		Final:  p.Final,
		Length: p.Length,
		Points: len(p.Points),
		Path:   append([]int(nil), p.Path...),
		Route:  make([]Coord, 0, len(p.Path)),
	}
	for i, v := range p.Path {
		if v < 0 || v >= len(p.Points) {
			return Document{}, fmt.Errorf("path[%d]=%d: %w", i, v, ErrBadPublication)
		}
		doc.Route = append(doc.Route, Coord{X: p.Points[v].X, Y: p.Points[v].Y})
	}

	return doc, nil
}

// Marshal encodes doc as YAML.
func (doc Document) Marshal() ([]byte, error) {
	return yaml.Marshal(doc)
}
