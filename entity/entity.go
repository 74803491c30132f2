// Package entity holds the shared shapes for game entities stored in the
// data layer.
package entity

import "github.com/emberforge/emberforge/id"

// Entity identifies one game entity.
type Entity = id.ID

// Descriptor is the labelled description attached to a game entity. It maps
// one-to-one onto its storage row and JSON form.
type Descriptor struct {
	ID          id.ID  `json:"id" db:"id"`
	Label       string `json:"label" db:"label"`
	Description string `json:"description" db:"description"`
}
