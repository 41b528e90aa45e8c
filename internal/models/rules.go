package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// CategoryRule is one category and its ordered keyword list.
type CategoryRule struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// KeywordRuleSet maps category names to keyword lists. It is an ordered
// sequence rather than a map: classification returns the first category (in
// this order) with a matching keyword, so the order is part of the contract.
//
// Serialized form (JSON and YAML) is an object/mapping whose keys appear in
// rule order.
type KeywordRuleSet []CategoryRule

// Categories returns the category names in rule order.
func (rs KeywordRuleSet) Categories() []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}
	return names
}

func (rs KeywordRuleSet) index(name string) int {
	for i, r := range rs {
		if r.Name == name {
			return i
		}
	}
	return -1
}

// Has reports whether the set defines the category.
func (rs KeywordRuleSet) Has(name string) bool {
	return rs.index(name) >= 0
}

// Keywords returns a copy of the keyword list for name, nil if absent.
func (rs KeywordRuleSet) Keywords(name string) []string {
	i := rs.index(name)
	if i < 0 {
		return nil
	}
	return append([]string{}, rs[i].Keywords...)
}

// Set returns a copy of the set where name maps to keywords. An existing
// category keeps its position; a new one is appended.
func (rs KeywordRuleSet) Set(name string, keywords []string) KeywordRuleSet {
	out := rs.Clone()
	kws := append([]string{}, keywords...)
	if i := out.index(name); i >= 0 {
		out[i].Keywords = kws
		return out
	}
	return append(out, CategoryRule{Name: name, Keywords: kws})
}

// AddKeyword returns a copy of the set with keyword appended to name's list,
// creating the category at the end if needed.
func (rs KeywordRuleSet) AddKeyword(name, keyword string) KeywordRuleSet {
	return rs.Set(name, append(rs.Keywords(name), keyword))
}

// RemoveKeyword returns a copy of the set with every occurrence of keyword
// removed from name's list. The category itself is kept.
func (rs KeywordRuleSet) RemoveKeyword(name, keyword string) KeywordRuleSet {
	i := rs.index(name)
	if i < 0 {
		return rs.Clone()
	}
	kept := []string{}
	for _, k := range rs[i].Keywords {
		if k != keyword {
			kept = append(kept, k)
		}
	}
	return rs.Set(name, kept)
}

// Clone returns a deep copy.
func (rs KeywordRuleSet) Clone() KeywordRuleSet {
	if rs == nil {
		return nil
	}
	out := make(KeywordRuleSet, len(rs))
	for i, r := range rs {
		out[i] = CategoryRule{Name: r.Name, Keywords: append([]string{}, r.Keywords...)}
	}
	return out
}

// Equal reports whether both sets have the same categories with the same
// keyword lists, in the same order.
func (rs KeywordRuleSet) Equal(other KeywordRuleSet) bool {
	if len(rs) != len(other) {
		return false
	}
	for i := range rs {
		if rs[i].Name != other[i].Name || len(rs[i].Keywords) != len(other[i].Keywords) {
			return false
		}
		for j := range rs[i].Keywords {
			if rs[i].Keywords[j] != other[i].Keywords[j] {
				return false
			}
		}
	}
	return true
}

// Validate checks that every category name is non-empty.
func (rs KeywordRuleSet) Validate() error {
	for i, r := range rs {
		if strings.TrimSpace(r.Name) == "" {
			return fmt.Errorf("category #%d has an empty name", i+1)
		}
	}
	return nil
}

// MarshalJSON renders the set as a JSON object in rule order.
func (rs KeywordRuleSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range rs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.Name)
		if err != nil {
			return nil, err
		}
		kws := r.Keywords
		if kws == nil {
			kws = []string{}
		}
		val, err := json.Marshal(kws)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object of string arrays, keeping document
// order. A repeated key keeps its first position and takes the last value.
// Any other top-level shape, and a null keyword list, is rejected.
func (rs *KeywordRuleSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("keyword rules must be a JSON object, got %s", describeToken(tok))
	}

	out := KeywordRuleSet{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected object key %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return fmt.Errorf("category %q: keywords must be an array of strings, got null", name)
		}
		keywords := []string{}
		if err := json.Unmarshal(raw, &keywords); err != nil {
			return fmt.Errorf("category %q: keywords must be an array of strings: %w", name, err)
		}
		out = out.Set(name, keywords)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*rs = out
	return nil
}

// MarshalYAML renders the set as a YAML mapping in rule order.
func (rs KeywordRuleSet) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, r := range rs {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.Name}
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, k := range r.Keywords {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k})
		}
		node.Content = append(node.Content, key, seq)
	}
	return node, nil
}

// UnmarshalYAML reads a YAML mapping of string sequences, keeping document
// order. A category written with no value ("Vazia:") has no keywords.
func (rs *KeywordRuleSet) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.DocumentNode && len(value.Content) == 1 {
		value = value.Content[0]
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: keyword rules must be a YAML mapping", value.Line)
	}

	out := KeywordRuleSet{}
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]

		var name string
		if err := keyNode.Decode(&name); err != nil {
			return fmt.Errorf("line %d: %w", keyNode.Line, err)
		}

		keywords := []string{}
		if !(valNode.Kind == yaml.ScalarNode && valNode.Tag == "!!null") {
			if valNode.Kind != yaml.SequenceNode {
				return fmt.Errorf("line %d: category %q: keywords must be a list", valNode.Line, name)
			}
			if err := valNode.Decode(&keywords); err != nil {
				return fmt.Errorf("line %d: category %q: %w", valNode.Line, name, err)
			}
		}
		out = out.Set(name, keywords)
	}

	*rs = out
	return nil
}

func describeToken(tok json.Token) string {
	switch v := tok.(type) {
	case json.Delim:
		if v == '[' {
			return "array"
		}
		return string(v)
	case nil:
		return "null"
	case string:
		return "string"
	case float64, json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", tok)
	}
}
