package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic levels. Level 1 is the broadest category, level 3 the narrowest.
const (
	MinTopicLevel = 1
	MaxTopicLevel = 3
)

// Topic is a node of the content taxonomy. ParentID is a weak reference:
// when set, the parent must exist and have a strictly smaller level.
type Topic struct {
	ID          uuid.UUID
	Name        string
	Level       int
	ParentID    *uuid.UUID
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TopicNode is a Topic with its nested children, as returned by the hierarchy query.
type TopicNode struct {
	Topic
	Children []*TopicNode
}

// TopicFilter narrows the flat topic list. Nil fields are not applied.
type TopicFilter struct {
	Level    *int
	ParentID *uuid.UUID
}

// ValidTopicLevel reports whether level is within the supported range.
func ValidTopicLevel(level int) bool {
	return level >= MinTopicLevel && level <= MaxTopicLevel
}

// BuildTopicForest turns a flat adjacency list into nested nodes.
//
// With rootParent == nil the forest is rooted at parentless topics; otherwise
// it is rooted at the children of rootParent. Topics are grouped by parent id
// in a single pass and attached with an explicit stack, so the cost is linear
// in len(topics). Sibling order follows input order.
func BuildTopicForest(topics []*Topic, rootParent *uuid.UUID) []*TopicNode {
	byParent := make(map[uuid.UUID][]*TopicNode, len(topics))
	for _, t := range topics {
		key := uuid.Nil
		if t.ParentID != nil {
			key = *t.ParentID
		}
		byParent[key] = append(byParent[key], &TopicNode{Topic: *t})
	}

	rootKey := uuid.Nil
	if rootParent != nil {
		rootKey = *rootParent
	}

	roots := byParent[rootKey]
	if roots == nil {
		return []*TopicNode{}
	}

	stack := make([]*TopicNode, 0, len(roots))
	stack = append(stack, roots...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n.Children = byParent[n.ID]
		if n.Children == nil {
			n.Children = []*TopicNode{}
		}
		stack = append(stack, n.Children...)
	}

	return roots
}
