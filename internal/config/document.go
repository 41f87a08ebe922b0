// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"sort"
	"strings"
)

// Value is a node that was supplied in a [Document]: either a raw scalar as
// produced by a decoder (string, bool, number, ...) or an object.
type Value struct {
	// Raw holds the decoded scalar. It is nil for objects.
	Raw any

	// IsObject is true when the node has children instead of a scalar.
	IsObject bool
}

// Document is the sparse, possibly partial input of [Resolve]: an ordered
// tree of optional scalar and object nodes. Nodes with a nil value are not
// part of the tree, so looking them up yields an absent result.
//
// A Document is immutable once built and safe for concurrent reads.
type Document struct {
	root *node
}

type node struct {
	name     string
	raw      any
	children []*node
	index    map[string]*node
}

func newObjectNode(name string) *node {
	return &node{name: name, index: make(map[string]*node)}
}

func (n *node) isObject() bool {
	return n.index != nil
}

// EmptyDocument returns a document without any supplied node.
func EmptyDocument() *Document {
	return &Document{root: newObjectNode("")}
}

// NewDocument builds a document from a decoded tree. Keys are matched
// case-insensitively and children are kept in lexical key order. When two
// keys differ only in case, objects are merged and the lexically greater
// key wins for scalars.
func NewDocument(tree map[string]any) *Document {
	root := newObjectNode("")
	fill(root, tree)
	return &Document{root: root}
}

func fill(parent *node, tree map[string]any) {
	keys := make([]string, 0, len(tree))
	for k := range tree {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := tree[k]
		if v == nil {
			continue
		}

		var child *node
		if obj, ok := asObject(v); ok {
			child = parent.index[strings.ToLower(k)]
			if child == nil || !child.isObject() {
				child = newObjectNode(k)
			}
			fill(child, obj)
		} else {
			child = &node{name: k, raw: v}
		}
		parent.put(child)
	}
}

func (n *node) put(child *node) {
	key := strings.ToLower(child.name)
	if existing, ok := n.index[key]; ok {
		if existing == child {
			return
		}
		for i, c := range n.children {
			if c == existing {
				n.children[i] = child
				break
			}
		}
		n.index[key] = child
		return
	}
	n.children = append(n.children, child)
	n.index[key] = child
}

// asObject reports whether v is a decoded object and converts it to a
// string-keyed map.
func asObject(v any) (map[string]any, bool) {
	switch obj := v.(type) {
	case map[string]any:
		return obj, true
	case map[any]any:
		converted := make(map[string]any, len(obj))
		for k, val := range obj {
			converted[fmt.Sprint(k)] = val
		}
		return converted, true
	default:
		return nil, false
	}
}

// Lookup returns the node at path, or an absent result when nothing was
// supplied there. Looking below a scalar is absent as well.
func (d *Document) Lookup(path Path) Optional[Value] {
	if d == nil || d.root == nil {
		return None[Value]()
	}

	current := d.root
	for _, segment := range path.Segments() {
		if !current.isObject() {
			return None[Value]()
		}
		next, ok := current.index[strings.ToLower(segment)]
		if !ok {
			return None[Value]()
		}
		current = next
	}

	if current.isObject() {
		return Some(Value{IsObject: true})
	}
	return Some(Value{Raw: current.raw})
}

// Leaves returns the paths of all supplied scalars in document order.
func (d *Document) Leaves() []Path {
	if d == nil || d.root == nil {
		return nil
	}
	var paths []Path
	d.root.leaves("", &paths)
	return paths
}

func (n *node) leaves(prefix Path, acc *[]Path) {
	for _, child := range n.children {
		path := prefix.Child(child.name)
		if child.isObject() {
			child.leaves(path, acc)
			continue
		}
		*acc = append(*acc, path)
	}
}
