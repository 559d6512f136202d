package models

import "fmt"

// Document is a single schemaless record in a post collection. Callers may
// store fields beyond the declared ones; they are persisted as-is.
type Document = map[string]interface{}

// Reserved document keys injected by the storage layer. They are never taken
// from a request body.
const (
	KeyID        = "id"
	KeyCreatedAt = "createdAt"
)

// Collection describes one post category: where it lives, which fields are
// mandatory or defaulted at create time, which field links a document to the
// student who posted it, and which fields the aggregate search scans.
type Collection struct {
	// Name is the route path segment and the key used in fan-out responses
	Name string
	// Table is the backing Postgres table
	Table string
	// Required fields are checked before insert; a missing one fails the create
	Required []string
	// Defaults are applied to absent fields before insert
	Defaults map[string]interface{}
	// OwnerField filters the user-activity fan-out
	OwnerField string
	// SearchFields are matched by the aggregate search; empty means the
	// collection is not searchable
	SearchFields []string
}

// Collections returns the seven post collections in response-key order.
// Field names follow the public JSON shape.
func Collections() []Collection {
	return []Collection{
		{
			Name:     "beacons",
			Table:    "study_groups",
			Required: []string{"subject", "location", "creator", "creatorId", "endTime"},
			Defaults: map[string]interface{}{
				"members":    float64(1),
				"maxMembers": float64(5),
			},
			OwnerField:   "creatorId",
			SearchFields: []string{"subject", "location"},
		},
		{
			Name:         "resources",
			Table:        "resources",
			OwnerField:   "uploadedById",
			SearchFields: []string{"title", "subject"},
		},
		{
			Name:       "tutors",
			Table:      "tutors",
			OwnerField: "tutorId",
		},
		{
			Name:  "events",
			Table: "events",
			Defaults: map[string]interface{}{
				"attendees": float64(0),
			},
			OwnerField:   "createdBy",
			SearchFields: []string{"title", "clubName"},
		},
		{
			Name:         "lostfound",
			Table:        "lost_items",
			OwnerField:   "postedBy",
			SearchFields: []string{"itemName", "location"},
		},
		{
			Name:         "market",
			Table:        "market_items",
			OwnerField:   "sellerId",
			SearchFields: []string{"title", "description"},
		},
		{
			// Club documents declare no createdBy field, so the activity
			// fan-out's clubs list stays empty unless a caller stores one.
			Name:         "clubs",
			Table:        "clubs",
			Defaults:     map[string]interface{}{"members": float64(0)},
			OwnerField:   "createdBy",
			SearchFields: []string{"name", "category"},
		},
	}
}

// CollectionByName returns the collection descriptor with the given name.
func CollectionByName(name string) (Collection, bool) {
	for _, coll := range Collections() {
		if coll.Name == name {
			return coll, true
		}
	}
	return Collection{}, false
}

// ValidateRequired checks that every required field of the collection is
// present and non-empty in doc.
func (c Collection) ValidateRequired(doc Document) error {
	for _, field := range c.Required {
		value, ok := doc[field]
		if !ok || value == nil || value == "" {
			return fmt.Errorf("field %q is required", field)
		}
	}
	return nil
}

// ApplyDefaults fills absent fields with the collection's default values.
func (c Collection) ApplyDefaults(doc Document) {
	for field, value := range c.Defaults {
		if _, ok := doc[field]; !ok {
			doc[field] = value
		}
	}
}
