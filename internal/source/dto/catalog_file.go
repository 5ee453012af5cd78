// Package dto defines the on-disk catalog format shared by YAML and JSON
// fixture files, and its conversion to and from the domain model.
package dto

import (
	"errors"
	"fmt"
	"slices"

	"github.com/handiism/gamevault/internal/model"
)

// CatalogFile is the root document of a fixture file.
type CatalogFile struct {
	Items   []Item   `json:"items" yaml:"items"`
	Reviews []Review `json:"reviews,omitempty" yaml:"reviews,omitempty"`
}

// Item is the serialized form of model.Item.
type Item struct {
	ID           string        `json:"id" yaml:"id"`
	Title        string        `json:"title" yaml:"title"`
	Description  string        `json:"description,omitempty" yaml:"description,omitempty"`
	Thumbnail    string        `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Screenshots  []string      `json:"screenshots,omitempty" yaml:"screenshots,omitempty"`
	Category     string        `json:"category" yaml:"category"`
	Genres       []string      `json:"genres" yaml:"genres,flow"`
	Rating       float64       `json:"rating" yaml:"rating"`
	Downloads    int64         `json:"downloads" yaml:"downloads"`
	Size         string        `json:"size,omitempty" yaml:"size,omitempty"`
	ReleaseDate  Date          `json:"release_date" yaml:"release_date"`
	Requirements *Requirements `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	Price        int           `json:"price" yaml:"price"`
	Featured     bool          `json:"featured,omitempty" yaml:"featured,omitempty"`
	Popular      bool          `json:"popular,omitempty" yaml:"popular,omitempty"`
	New          bool          `json:"new,omitempty" yaml:"new,omitempty"`
}

// Requirements is the serialized form of model.Requirements.
type Requirements struct {
	Minimum     Spec `json:"minimum" yaml:"minimum"`
	Recommended Spec `json:"recommended" yaml:"recommended"`
}

// Spec is the serialized form of model.Spec.
type Spec struct {
	OS        string `json:"os" yaml:"os"`
	Processor string `json:"processor" yaml:"processor"`
	Memory    string `json:"memory" yaml:"memory"`
	Graphics  string `json:"graphics" yaml:"graphics"`
	Storage   string `json:"storage" yaml:"storage"`
}

// Review is the serialized form of model.Review.
type Review struct {
	ID       string  `json:"id" yaml:"id"`
	ItemID   string  `json:"item_id" yaml:"item_id"`
	UserID   string  `json:"user_id,omitempty" yaml:"user_id,omitempty"`
	Username string  `json:"username" yaml:"username"`
	Rating   float64 `json:"rating" yaml:"rating"`
	Comment  string  `json:"comment" yaml:"comment"`
	Date     Date    `json:"date" yaml:"date"`
}

var (
	errMissingID    = errors.New("missing id")
	errMissingTitle = errors.New("missing title")
)

// ToItem converts the record to a model.Item, rejecting values outside the
// model's ranges.
func (ji Item) ToItem() (model.Item, error) {
	switch {
	case ji.ID == "":
		return model.Item{}, errMissingID
	case ji.Title == "":
		return model.Item{}, fmt.Errorf("item %s: %w", ji.ID, errMissingTitle)
	case !slices.Contains(model.Categories, ji.Category):
		return model.Item{}, fmt.Errorf("item %s: unknown category %q", ji.ID, ji.Category)
	case ji.Rating < 0 || ji.Rating > 5:
		return model.Item{}, fmt.Errorf("item %s: rating %.1f out of range [0, 5]", ji.ID, ji.Rating)
	case ji.Downloads < 0:
		return model.Item{}, fmt.Errorf("item %s: negative downloads", ji.ID)
	case ji.Price < 0:
		return model.Item{}, fmt.Errorf("item %s: negative price", ji.ID)
	}
	for _, g := range ji.Genres {
		if !slices.Contains(model.Genres, g) {
			return model.Item{}, fmt.Errorf("item %s: unknown genre %q", ji.ID, g)
		}
	}

	item := model.Item{
		ID:          ji.ID,
		Title:       ji.Title,
		Description: ji.Description,
		Thumbnail:   ji.Thumbnail,
		Screenshots: slices.Clone(ji.Screenshots),
		Category:    ji.Category,
		Genres:      slices.Clone(ji.Genres),
		Rating:      ji.Rating,
		Downloads:   ji.Downloads,
		Size:        ji.Size,
		ReleaseDate: ji.ReleaseDate.Time,
		Price:       ji.Price,
		Featured:    ji.Featured,
		Popular:     ji.Popular,
		New:         ji.New,
	}
	if ji.Requirements != nil {
		item.Requirements = model.Requirements{
			Minimum:     ji.Requirements.Minimum.toSpec(),
			Recommended: ji.Requirements.Recommended.toSpec(),
		}
	}
	return item, nil
}

// FromItem converts a model.Item to its serialized form.
func FromItem(item model.Item) Item {
	ji := Item{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Thumbnail:   item.Thumbnail,
		Screenshots: slices.Clone(item.Screenshots),
		Category:    item.Category,
		Genres:      slices.Clone(item.Genres),
		Rating:      item.Rating,
		Downloads:   item.Downloads,
		Size:        item.Size,
		ReleaseDate: Date{Time: item.ReleaseDate},
		Price:       item.Price,
		Featured:    item.Featured,
		Popular:     item.Popular,
		New:         item.New,
	}
	if item.Requirements != (model.Requirements{}) {
		ji.Requirements = &Requirements{
			Minimum:     fromSpec(item.Requirements.Minimum),
			Recommended: fromSpec(item.Requirements.Recommended),
		}
	}
	return ji
}

func (s Spec) toSpec() model.Spec {
	return model.Spec{OS: s.OS, Processor: s.Processor, Memory: s.Memory, Graphics: s.Graphics, Storage: s.Storage}
}

func fromSpec(s model.Spec) Spec {
	return Spec{OS: s.OS, Processor: s.Processor, Memory: s.Memory, Graphics: s.Graphics, Storage: s.Storage}
}

// ToReview converts the record to a model.Review.
func (jr Review) ToReview() (model.Review, error) {
	switch {
	case jr.ID == "":
		return model.Review{}, errMissingID
	case jr.ItemID == "":
		return model.Review{}, fmt.Errorf("review %s: missing item_id", jr.ID)
	case jr.Rating < 0 || jr.Rating > 5:
		return model.Review{}, fmt.Errorf("review %s: rating %.1f out of range [0, 5]", jr.ID, jr.Rating)
	}
	return model.Review{
		ID:       jr.ID,
		ItemID:   jr.ItemID,
		UserID:   jr.UserID,
		Username: jr.Username,
		Rating:   jr.Rating,
		Comment:  jr.Comment,
		Date:     jr.Date.Time,
	}, nil
}

// FromReview converts a model.Review to its serialized form.
func FromReview(r model.Review) Review {
	return Review{
		ID:       r.ID,
		ItemID:   r.ItemID,
		UserID:   r.UserID,
		Username: r.Username,
		Rating:   r.Rating,
		Comment:  r.Comment,
		Date:     Date{Time: r.Date},
	}
}
