package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/pageza/healthscan/backend/internal/types"
)

// SyntheticAnalyzer stands in for a vision model. It always recognises the
// same packet of cookies after Delay.
type SyntheticAnalyzer struct {
	Delay time.Duration
}

// Ensure SyntheticAnalyzer implements ImageAnalyzer
var _ ImageAnalyzer = (*SyntheticAnalyzer)(nil)

func NewSyntheticAnalyzer(delay time.Duration) *SyntheticAnalyzer {
	return &SyntheticAnalyzer{Delay: delay}
}

func (a *SyntheticAnalyzer) Analyze(ctx context.Context, image []byte) (*types.ProductExtraction, error) {
	if len(image) == 0 {
		return nil, ErrUnsupportedImage
	}

	if a.Delay > 0 {
		timer := time.NewTimer(a.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return &types.ProductExtraction{
		Name: "Chocolate Chip Cookies",
		Ingredients: []string{
			"Wheat flour",
			"Sugar",
			"Palm oil",
			"Eggs",
			"Milk powder",
			"Salt",
			"Baking powder",
			"Vanilla flavoring",
			"Soy lecithin",
		},
		Nutrition: &types.NutritionFacts{
			Calories:           150,
			TotalFat:           8,
			SaturatedFat:       4,
			Cholesterol:        25,
			Sodium:             200,
			TotalCarbohydrates: 18,
			Sugar:              12,
			Protein:            3,
			ServingSize:        "2 cookies (30g)",
		},
	}, nil
}

// DecodeImageDataURI decodes a base64 "data:image/...;base64," URI as sent
// by the camera capture screen. Bare base64 is accepted too.
func DecodeImageDataURI(uri string) ([]byte, error) {
	payload := strings.TrimSpace(uri)
	if strings.HasPrefix(payload, "data:") {
		meta, data, ok := strings.Cut(payload, ",")
		if !ok {
			return nil, fmt.Errorf("%w: malformed data URI", ErrUnsupportedImage)
		}
		if !strings.HasPrefix(meta, "data:image/") || !strings.HasSuffix(meta, ";base64") {
			return nil, fmt.Errorf("%w: expected a base64 image data URI", ErrUnsupportedImage)
		}
		payload = data
	}

	image, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	if len(image) == 0 {
		return nil, ErrUnsupportedImage
	}
	return image, nil
}
