// Package geo - Distance invariant tests
package geo

import (
	"testing"

	"tripcost/internal/errors"
)

func TestDistanceSaoPauloRio(t *testing.T) {
	index := NewDefaultIndex()

	km, err := index.Distance("São Paulo", "Rio de Janeiro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if km < 357 || km > 360 {
		t.Errorf("expected São Paulo-Rio distance in [357, 360], got %.2f", km)
	}
	t.Logf("São Paulo -> Rio de Janeiro: %.2f km", km)
}

func TestDistanceSymmetry(t *testing.T) {
	index := NewDefaultIndex()

	pairs := [][2]string{
		{"São Paulo", "Rio de Janeiro"},
		{"Salvador", "Manaus"},
		{"Lisbon", "Tokyo"},
		{"Curitiba", "New York"},
		{"Fortaleza", "Buenos Aires"},
	}
	for _, pair := range pairs {
		ab, err := index.Distance(pair[0], pair[1])
		if err != nil {
			t.Fatalf("%s -> %s: %v", pair[0], pair[1], err)
		}
		ba, err := index.Distance(pair[1], pair[0])
		if err != nil {
			t.Fatalf("%s -> %s: %v", pair[1], pair[0], err)
		}
		if ab != ba {
			t.Errorf("asymmetric distance %s/%s: %.6f vs %.6f", pair[0], pair[1], ab, ba)
		}
		if ab < 0 {
			t.Errorf("negative distance %s/%s: %.2f", pair[0], pair[1], ab)
		}
	}
}

func TestDistanceSameCityIsZero(t *testing.T) {
	index := NewDefaultIndex()

	km, err := index.Distance("Recife", "Recife")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if km != 0 {
		t.Errorf("expected zero distance for the same city, got %.6f", km)
	}
}

func TestDistanceUnresolvedCity(t *testing.T) {
	index := NewDefaultIndex()

	_, err := index.Distance("São Paulo", "Atlantis")
	if err == nil {
		t.Fatal("expected an error for an unknown city")
	}
	if !errors.IsType(err, errors.TypeLocation) {
		t.Errorf("expected LOCATION_NOT_FOUND, got %v", err)
	}
}

func TestDefaultTableSize(t *testing.T) {
	index := NewDefaultIndex()
	if index.Len() < 100 {
		t.Errorf("expected at least 100 cities in the default table, got %d", index.Len())
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Paris -> London, roughly 344 km
	km := HaversineKm(48.8566, 2.3522, 51.5074, -0.1278)
	if km < 330 || km > 355 {
		t.Errorf("expected Paris-London around 344 km, got %.2f", km)
	}
}
