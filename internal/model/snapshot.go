package model

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// snapshotJSON mirrors encoding/json behaviour but sorts map keys.
var snapshotJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// BookStatus is a catalog entry together with its current holder.
type BookStatus struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	IssuedTo string `json:"issued_to,omitempty"`
}

// StudentRecord lists the books held by one student.
type StudentRecord struct {
	ID    string   `json:"id"`
	Books []string `json:"books"`
}

// Snapshot is a read-only export of the whole library state.
type Snapshot struct {
	Books    []BookStatus    `json:"books"`
	Students []StudentRecord `json:"students"`
}

// NewSnapshot builds a Snapshot from the catalog and issued records.
// Books keep catalog order; students are sorted by ID.
func NewSnapshot(books []Book, records IssuedRecords) Snapshot {
	snap := Snapshot{
		Books:    make([]BookStatus, 0, len(books)),
		Students: make([]StudentRecord, 0, len(records)),
	}
	for _, b := range books {
		holder, _ := records.Holder(b.ID)
		snap.Books = append(snap.Books, BookStatus{
			ID:       b.ID,
			Title:    b.Title,
			Author:   b.Author,
			IssuedTo: holder,
		})
	}
	for _, student := range records.Students() {
		snap.Students = append(snap.Students, StudentRecord{
			ID:    student,
			Books: records[student].Sorted(),
		})
	}
	return snap
}

// EncodeJSON encodes the snapshot as indented JSON.
func (s Snapshot) EncodeJSON() ([]byte, error) {
	data, err := snapshotJSON.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return append(data, '\n'), nil
}

// EncodeYAML encodes the snapshot as YAML with book lists in flow style.
func (s Snapshot) EncodeYAML() ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	booksNode := &yaml.Node{Kind: yaml.SequenceNode}
	for _, b := range s.Books {
		node := &yaml.Node{Kind: yaml.MappingNode}
		addStringField(node, "id", b.ID)
		addStringField(node, "title", b.Title)
		addStringField(node, "author", b.Author)
		if b.IssuedTo != "" {
			addStringField(node, "issued_to", b.IssuedTo)
		}
		booksNode.Content = append(booksNode.Content, node)
	}
	doc.Content = append(doc.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "books"},
		booksNode,
	)

	studentsNode := &yaml.Node{Kind: yaml.SequenceNode}
	for _, st := range s.Students {
		node := &yaml.Node{Kind: yaml.MappingNode}
		addStringField(node, "id", st.ID)
		addStringSliceField(node, "books", st.Books)
		studentsNode.Content = append(studentsNode.Content, node)
	}
	doc.Content = append(doc.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "students"},
		studentsNode,
	)

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Helper functions for building yaml.Node

func addStringField(node *yaml.Node, key, value string) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: "!!str"},
	)
}

func addStringSliceField(node *yaml.Node, key string, values []string) {
	seqNode := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range values {
		seqNode.Content = append(seqNode.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: v, Tag: "!!str"},
		)
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		seqNode,
	)
}
