package models

import "time"

// CardRecord is one persisted collectible card. Records are written
// once under their derived id and only ever re-written with identical
// content by racing scans of the same species (upsert merge).
type CardRecord struct {
	ID            string          `json:"id"`
	OwnerID       string          `json:"ownerId"`
	Metadata      SpeciesMetadata `json:"metadata"`
	BackgroundPNG []byte          `json:"backgroundImage"`
	SubjectPNG    []byte          `json:"subjectImage"`
	HTMLCard      string          `json:"htmlCardMarkup,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// CardSummary is the gallery listing shape: enough to draw a thumbnail
// grid without shipping both full-size images per card.
type CardSummary struct {
	ID         string `json:"id"`
	CommonName string `json:"commonName"`
	Continent  string `json:"continent"`
	Rarity     Rarity `json:"rarity"`
	SubjectPNG []byte `json:"subjectImage"`
}
