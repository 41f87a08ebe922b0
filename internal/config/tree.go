package config

import (
	"fmt"
	"strings"
)

// setPath stores v in tree under path, creating intermediate objects.
// A scalar standing in the way of an intermediate object is replaced.
func setPath(tree map[string]any, path Path, v any) {
	segments := path.Segments()
	if len(segments) == 0 {
		return
	}

	current := tree
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = v
}

// normalizeKeys returns a deep copy of tree with lower-cased keys so layers
// written with different key casing merge onto the same nodes.
func normalizeKeys(tree map[string]any) map[string]any {
	normalized := make(map[string]any, len(tree))
	for k, v := range tree {
		key := strings.ToLower(k)
		switch child := v.(type) {
		case map[string]any:
			v = normalizeKeys(child)
		case map[any]any:
			converted := make(map[string]any, len(child))
			for ck, cv := range child {
				converted[fmt.Sprint(ck)] = cv
			}
			v = normalizeKeys(converted)
		}

		if existing, ok := normalized[key].(map[string]any); ok {
			if incoming, ok := v.(map[string]any); ok {
				for ik, iv := range incoming {
					existing[ik] = iv
				}
				continue
			}
		}
		normalized[key] = v
	}
	return normalized
}
