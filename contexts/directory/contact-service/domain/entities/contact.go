package entities

import (
	"strings"
	"time"
)

type Contact struct {
	ContactID string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string
	// Notes and OwnerID are internal and never leave the service.
	Notes     string
	OwnerID   string
	Tags      []Tag
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Contact) RecordType() string {
	return "Contact"
}

func (c Contact) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

func (c Contact) HasPhone() bool {
	return strings.TrimSpace(c.Phone) != ""
}

func (c Contact) TagLabels() []string {
	labels := make([]string, 0, len(c.Tags))
	for _, tag := range c.Tags {
		labels = append(labels, tag.Label)
	}
	return labels
}

type Tag struct {
	Label string
}

func (Tag) RecordType() string {
	return "Tag"
}

// NormalizeTags trims, drops blanks and de-duplicates labels, keeping the
// first occurrence order.
func NormalizeTags(labels []string) []Tag {
	seen := make(map[string]struct{}, len(labels))
	tags := make([]Tag, 0, len(labels))
	for _, label := range labels {
		label = strings.ToLower(strings.TrimSpace(label))
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		tags = append(tags, Tag{Label: label})
	}
	return tags
}
