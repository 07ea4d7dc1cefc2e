package models

import (
	"strings"
	"time"
)

// Comment is a single comment on a post. Two comments by the same author at
// the same instant are treated as the same comment.
type Comment struct {
	User        string    `json:"user"`
	Message     string    `json:"message"`
	DateCreated time.Time `json:"dateCreated"`
	Likes       int       `json:"likes"`
}

// Post represents a forum post. Author and DateCreated are immutable after
// creation; Likes only grows.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	DateCreated time.Time `json:"dateCreated"`
	Tags        []string  `json:"tags"`
	Likes       int       `json:"likes"`
	Comments    []Comment `json:"comments"`
}

// HasTag reports whether the post carries the tag, case-insensitively
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// AddTag adds a tag to the post's tag set.
// Returns true if the set changed; tag comparison is case-insensitive.
func (p *Post) AddTag(tag string) bool {
	if p.HasTag(tag) {
		return false
	}
	p.Tags = append(p.Tags, tag)
	return true
}
