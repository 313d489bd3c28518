package imports

import (
	"bytes"
	"fmt"
	"io"

	apperrors "orgbook-backend/internal/errors"

	"gopkg.in/yaml.v3"
)

// Group is one CODEOWNERS group: a team name and its member handles
type Group struct {
	Name    string
	Handles []string
}

// CodeOwners is a parsed CODEOWNERS export with groups in document order
type CodeOwners struct {
	Groups []Group
}

// ParseCodeOwners decodes a document of the form
//
//	{"groups": {"backend": ["@jane.doe", "@john.smith"]}}
//
// JSON and YAML are both accepted. Group order follows the document. A missing
// "groups" member yields an empty result.
func ParseCodeOwners(r io.Reader, source string) (*CodeOwners, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.NewMalformedImportError(source, err)
	}
	// Valid JSON never holds a raw tab inside a string, so tabs are only
	// indentation, which YAML rejects.
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		data = bytes.ReplaceAll(data, []byte("\t"), []byte(" "))
	}

	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, apperrors.NewMalformedImportError(source, apperrors.ErrEmptyUpload)
		}
		return nil, apperrors.NewMalformedImportError(source, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, apperrors.NewMalformedImportError(source, fmt.Errorf("top level must be an object"))
	}

	result := &CodeOwners{Groups: []Group{}}
	groups := mappingValue(root, "groups")
	if groups == nil || isNull(groups) {
		return result, nil
	}
	if groups.Kind != yaml.MappingNode {
		return nil, apperrors.NewMalformedImportError(source, fmt.Errorf("groups must be an object"))
	}

	for i := 0; i+1 < len(groups.Content); i += 2 {
		name := groups.Content[i].Value
		members := groups.Content[i+1]

		group := Group{Name: name, Handles: []string{}}
		switch {
		case isNull(members):
		case members.Kind == yaml.SequenceNode:
			for _, m := range members.Content {
				if m.Kind != yaml.ScalarNode {
					return nil, apperrors.NewMalformedImportError(source, fmt.Errorf("group %q: handles must be strings", name))
				}
				group.Handles = append(group.Handles, m.Value)
			}
		default:
			return nil, apperrors.NewMalformedImportError(source, fmt.Errorf("group %q: members must be a list", name))
		}
		result.Groups = append(result.Groups, group)
	}

	return result, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}
