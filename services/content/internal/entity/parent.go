package entity

import "fmt"

type ParentType string

const (
	ParentTypePost    ParentType = "post"
	ParentTypeProject ParentType = "project"
	ParentTypeService ParentType = "service"
)

// ParentRef identifies the owner of a child aggregate row. The zero value
// is not a valid parent; build one with PostParent, ProjectParent,
// ServiceParent or ParseParentRef.
type ParentRef struct {
	kind ParentType
	id   string
}

func PostParent(id string) ParentRef    { return ParentRef{kind: ParentTypePost, id: id} }
func ProjectParent(id string) ParentRef { return ParentRef{kind: ParentTypeProject, id: id} }
func ServiceParent(id string) ParentRef { return ParentRef{kind: ParentTypeService, id: id} }

func ParseParentRef(parentType, id string) (ParentRef, error) {
	if id == "" {
		return ParentRef{}, fmt.Errorf("%w: empty parent id", ErrInvalidParent)
	}
	switch ParentType(parentType) {
	case ParentTypePost:
		return PostParent(id), nil
	case ParentTypeProject:
		return ProjectParent(id), nil
	case ParentTypeService:
		return ServiceParent(id), nil
	}
	return ParentRef{}, fmt.Errorf("%w: unknown parent type %q", ErrInvalidParent, parentType)
}

func (p ParentRef) Type() ParentType { return p.kind }
func (p ParentRef) ID() string       { return p.id }

func (p ParentRef) Valid() bool {
	return p.id != "" && p.kind != ""
}

func (p ParentRef) String() string {
	return string(p.kind) + ":" + p.id
}
