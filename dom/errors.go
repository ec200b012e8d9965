package dom

import "errors"

var (
	ErrNotChild    = errors.New("dom: reference node is not a child of parent")
	ErrNotText     = errors.New("dom: node is not a text node")
	ErrNotElement  = errors.New("dom: node is not an element")
	ErrOffset      = errors.New("dom: offset out of range")
	ErrHierarchy   = errors.New("dom: insertion would break the tree")
	ErrDetached    = errors.New("dom: node is not attached to the document")
	ErrNoSelection = errors.New("dom: no active selection")
)
