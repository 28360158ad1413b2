// Package weather is a simulated weather provider. Conditions are derived
// deterministically from a hash of city and date, so repeated queries on
// the same day agree without any network access.
package weather

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"tinkerbox/internal/logging"
)

// conditions are the possible sky states. Index order matters: the hash
// picks into this slice.
var conditions = []string{"Sunny", "Partly Cloudy", "Cloudy", "Overcast", "Rainy", "Stormy"}

// Report is the simulated weather for one city and day.
type Report struct {
	City      string
	Date      time.Time
	Condition string
	// TempC is in celsius; Display formatting applies units.
	TempC    int
	Humidity int
	WindKmh  int
}

// TempF converts the report temperature to fahrenheit.
func (r Report) TempF() int {
	return int(float64(r.TempC)*9/5 + 32)
}

// FavoritesStore persists the favorite city list. *store.LocalStore
// satisfies it.
type FavoritesStore interface {
	AddWeatherFavorite(city string) error
	RemoveWeatherFavorite(city string) error
	WeatherFavorites() ([]string, error)
}

// Service answers weather queries with a TTL cache in front of the
// simulation.
type Service struct {
	cache *cache.Cache
	favs  FavoritesStore
	now   func() time.Time
}

// New builds a Service. Reports are cached for ttl; favs may be nil when
// favorites are not needed.
func New(ttl time.Duration, favs FavoritesStore) *Service {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Service{
		cache: cache.New(ttl, 2*ttl),
		favs:  favs,
		now:   time.Now,
	}
}

// Current returns today's report for city, from cache when fresh.
func (s *Service) Current(city string) (Report, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return Report{}, fmt.Errorf("city name required")
	}
	day := s.now().Truncate(24 * time.Hour)
	key := strings.ToLower(city) + "|" + day.Format("2006-01-02")
	if cached, ok := s.cache.Get(key); ok {
		return cached.(Report), nil
	}
	r := simulate(city, day)
	s.cache.Set(key, r, cache.DefaultExpiration)
	logging.Weather("Simulated %s: %s %d°C", city, r.Condition, r.TempC)
	return r, nil
}

// Forecast returns reports for today and the following days-1 days.
func (s *Service) Forecast(city string, days int) ([]Report, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, fmt.Errorf("city name required")
	}
	if days < 1 || days > 14 {
		return nil, fmt.Errorf("forecast days must be between 1 and 14, got %d", days)
	}
	day := s.now().Truncate(24 * time.Hour)
	out := make([]Report, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, simulate(city, day.AddDate(0, 0, i)))
	}
	return out, nil
}

// AddFavorite saves city to the favorites list.
func (s *Service) AddFavorite(city string) error {
	if s.favs == nil {
		return fmt.Errorf("favorites not available")
	}
	return s.favs.AddWeatherFavorite(city)
}

// RemoveFavorite drops city from the favorites list.
func (s *Service) RemoveFavorite(city string) error {
	if s.favs == nil {
		return fmt.Errorf("favorites not available")
	}
	return s.favs.RemoveWeatherFavorite(city)
}

// Favorites returns the saved city list with a current report for each.
func (s *Service) Favorites() (map[string]Report, error) {
	if s.favs == nil {
		return nil, fmt.Errorf("favorites not available")
	}
	cities, err := s.favs.WeatherFavorites()
	if err != nil {
		return nil, err
	}
	out := make(map[string]Report, len(cities))
	for _, city := range cities {
		r, err := s.Current(city)
		if err != nil {
			return nil, err
		}
		out[city] = r
	}
	return out, nil
}

// simulate derives a report from the FNV hash of city and date. The same
// inputs always produce the same weather.
func simulate(city string, day time.Time) Report {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(city))))
	h.Write([]byte(day.Format("2006-01-02")))
	seed := h.Sum64()

	cond := conditions[seed%uint64(len(conditions))]
	// Temperature -5..34, skewed by condition so rain runs cooler.
	temp := int(seed/7%40) - 5
	if cond == "Rainy" || cond == "Stormy" {
		temp -= 5
	}
	humidity := int(seed/11%51) + 40 // 40..90
	wind := int(seed/13%35) + 2     // 2..36

	return Report{
		City:      strings.TrimSpace(city),
		Date:      day,
		Condition: cond,
		TempC:     temp,
		Humidity:  humidity,
		WindKmh:   wind,
	}
}

// Emoji maps a condition to its glyph for display.
func Emoji(condition string) string {
	switch strings.ToLower(condition) {
	case "sunny":
		return "☀️"
	case "partly cloudy":
		return "⛅"
	case "cloudy", "overcast":
		return "☁️"
	case "rainy":
		return "🌧️"
	case "stormy":
		return "⛈️"
	default:
		return "🌤️"
	}
}
