// Package seed bulk-loads categories and places from a JSON export.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"placehub/internal/apperror"
	"placehub/internal/microservices/http-api/models"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Category struct {
	Name     string  `json:"name" validate:"required,max=100"`
	ImageURL *string `json:"imageUrl"`
}

type Place struct {
	Name        string   `json:"name" validate:"required,max=255"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required,max=100"`
	Latitude    string   `json:"latitude" validate:"required,latitude"`
	Longitude   string   `json:"longitude" validate:"required,longitude"`
	ImageURL    *string  `json:"imageUrl"`
	VideoURL    *string  `json:"videoUrl"`
	AudioURL    *string  `json:"audioUrl"`
	Images      []string `json:"images" validate:"dive,required"`
}

// Dataset is the file layout:
//
//	{"categories": [{"name": "Temple"}], "places": [{"name": "...", "category": "Temple", ...}]}
type Dataset struct {
	Categories []Category `json:"categories" validate:"dive"`
	Places     []Place    `json:"places" validate:"dive"`
}

type Summary struct {
	Categories    int
	Places        int
	SkippedPlaces int
	Images        int
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Read decodes and validates a dataset.
func Read(r io.Reader) (*Dataset, error) {
	var data Dataset
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	if err := validate.Struct(&data); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}
	return &data, nil
}

// Import writes the dataset in one transaction. Categories are upserted by
// name; a place whose name already exists in the same category is skipped, so
// the import can be re-run.
func Import(ctx context.Context, db *gorm.DB, data *Dataset, logger *slog.Logger) (Summary, error) {
	var summary Summary
	if db == nil {
		return summary, apperror.ErrStoreUnavailable
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range data.Categories {
			category := models.Category{Name: c.Name, ImageURL: c.ImageURL}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"image_url", "updated_at"}),
			}).Create(&category).Error; err != nil {
				return fmt.Errorf("import category %q: %w", c.Name, err)
			}
			summary.Categories++
		}

		for i, p := range data.Places {
			var existing int64
			if err := tx.Model(&models.Place{}).
				Where("name = ? AND category = ?", p.Name, p.Category).
				Count(&existing).Error; err != nil {
				return fmt.Errorf("look up place %q: %w", p.Name, err)
			}
			if existing > 0 {
				summary.SkippedPlaces++
				continue
			}

			place := models.Place{
				Name:        p.Name,
				Description: p.Description,
				Category:    p.Category,
				Latitude:    p.Latitude,
				Longitude:   p.Longitude,
				ImageURL:    p.ImageURL,
				VideoURL:    p.VideoURL,
				AudioURL:    p.AudioURL,
			}
			if err := tx.Create(&place).Error; err != nil {
				return fmt.Errorf("import place %q: %w", p.Name, err)
			}
			summary.Places++

			for _, url := range p.Images {
				if err := tx.Create(&models.PlaceImage{PlaceID: place.ID, ImageURL: url}).Error; err != nil {
					return fmt.Errorf("import image for %q: %w", p.Name, err)
				}
				summary.Images++
			}

			if summary.Places%10 == 0 || i == len(data.Places)-1 {
				logger.Info("import progress", "done", i+1, "total", len(data.Places))
			}
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	return summary, nil
}
