package objects

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Book struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title           string             `json:"title,omitempty" bson:"title,omitempty"`
	Author          string             `json:"author,omitempty" bson:"author,omitempty"`
	Genre           string             `json:"genre,omitempty" bson:"genre,omitempty"`
	ISBN            string             `json:"ISBN" bson:"ISBN"`
	PublicationDate string             `json:"publicationDate" bson:"publicationDate"`
	CoverPhoto      *CoverPhoto        `json:"coverPhoto,omitempty" bson:"coverPhoto,omitempty"`
}

// CoverPhoto references an image kept by the asset host.
type CoverPhoto struct {
	AssetID string `json:"public_id" bson:"public_id"`
	URL     string `json:"image_url" bson:"image_url"`
}

func (b Book) GetID() string {
	return b.ID.Hex()
}

// BookFilter selects books by exact field values. Nil fields are not part of the match.
type BookFilter struct {
	Genre           *string
	PublicationDate *string
}

// BookChange describes an update. When ReplaceText is set, title, author and genre
// are all overwritten and the empty ones are removed from the document.
type BookChange struct {
	ReplaceText bool
	Title       string
	Author      string
	Genre       string
	CoverPhoto  *CoverPhoto
}
