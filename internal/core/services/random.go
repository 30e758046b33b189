package services

import (
	"fmt"

	"github.com/custodia-labs/pwforge/internal/core/ports/driven"
)

// pickByte draws one byte of alphabet uniformly.
func pickByte(src driven.RandomSource, alphabet string) (byte, error) {
	if alphabet == "" {
		return 0, fmt.Errorf("pick from empty alphabet")
	}
	i, err := src.Intn(len(alphabet))
	if err != nil {
		return 0, fmt.Errorf("random index: %w", err)
	}
	return alphabet[i], nil
}

// pickElement draws one element of items uniformly.
func pickElement[T any](src driven.RandomSource, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("pick from empty list")
	}
	i, err := src.Intn(len(items))
	if err != nil {
		return zero, fmt.Errorf("random index: %w", err)
	}
	return items[i], nil
}

// shuffle permutes items in place with Fisher-Yates.
func shuffle[T any](src driven.RandomSource, items []T) error {
	for i := len(items) - 1; i > 0; i-- {
		j, err := src.Intn(i + 1)
		if err != nil {
			return fmt.Errorf("random index: %w", err)
		}
		items[i], items[j] = items[j], items[i]
	}
	return nil
}
