package weather

import (
	"testing"
	"time"
)

type memFavorites struct {
	cities []string
}

func (m *memFavorites) AddWeatherFavorite(city string) error {
	m.cities = append(m.cities, city)
	return nil
}

func (m *memFavorites) RemoveWeatherFavorite(city string) error {
	out := m.cities[:0]
	for _, c := range m.cities {
		if c != city {
			out = append(out, c)
		}
	}
	m.cities = out
	return nil
}

func (m *memFavorites) WeatherFavorites() ([]string, error) {
	return m.cities, nil
}

func TestCurrentDeterministic(t *testing.T) {
	s := New(time.Minute, nil)
	a, err := s.Current("London")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	b, err := s.Current("london")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if a.Condition != b.Condition || a.TempC != b.TempC {
		t.Fatalf("same city differs: %+v vs %+v", a, b)
	}
	if a.TempC < -15 || a.TempC > 40 {
		t.Errorf("temperature %d out of plausible range", a.TempC)
	}
	if a.Humidity < 40 || a.Humidity > 90 {
		t.Errorf("humidity %d out of range", a.Humidity)
	}
}

func TestCurrentEmptyCity(t *testing.T) {
	s := New(time.Minute, nil)
	if _, err := s.Current("  "); err == nil {
		t.Fatal("expected error for blank city")
	}
}

func TestSimulateVariesByCity(t *testing.T) {
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	seen := map[string]bool{}
	for _, city := range []string{"Tokyo", "Paris", "Sydney", "Berlin", "Oslo", "Cairo", "Lima"} {
		r := simulate(city, day)
		seen[r.Condition] = true
	}
	if len(seen) < 2 {
		t.Fatalf("seven cities produced a single condition: %v", seen)
	}
}

func TestForecast(t *testing.T) {
	s := New(time.Minute, nil)
	reports, err := s.Forecast("Tokyo", 3)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("forecast length = %d, want 3", len(reports))
	}
	for i := 1; i < len(reports); i++ {
		if !reports[i].Date.After(reports[i-1].Date) {
			t.Fatalf("forecast dates not increasing: %v then %v", reports[i-1].Date, reports[i].Date)
		}
	}
	if _, err := s.Forecast("Tokyo", 0); err == nil {
		t.Fatal("expected error for zero days")
	}
}

func TestTempF(t *testing.T) {
	r := Report{TempC: 100}
	if r.TempF() != 212 {
		t.Fatalf("TempF = %d, want 212", r.TempF())
	}
}

func TestFavorites(t *testing.T) {
	favs := &memFavorites{}
	s := New(time.Minute, favs)
	if err := s.AddFavorite("London"); err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}
	if err := s.AddFavorite("Tokyo"); err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}
	reports, err := s.Favorites()
	if err != nil {
		t.Fatalf("Favorites: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("favorites = %v, want 2", reports)
	}
	if _, ok := reports["London"]; !ok {
		t.Fatal("London missing from favorites")
	}
	if err := s.RemoveFavorite("London"); err != nil {
		t.Fatalf("RemoveFavorite: %v", err)
	}
	reports, _ = s.Favorites()
	if len(reports) != 1 {
		t.Fatalf("favorites after remove = %v", reports)
	}
}

func TestFavoritesUnavailable(t *testing.T) {
	s := New(time.Minute, nil)
	if err := s.AddFavorite("x"); err == nil {
		t.Fatal("expected error with nil favorites store")
	}
}

func TestEmoji(t *testing.T) {
	if Emoji("Sunny") == Emoji("Rainy") {
		t.Fatal("conditions share an emoji")
	}
	if Emoji("unknown") == "" {
		t.Fatal("unknown condition should still map to a glyph")
	}
}
