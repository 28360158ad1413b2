package store

import (
	"fmt"
	"time"

	"tinkerbox/internal/logging"
)

// Score is a row in the scores table. Score semantics are per game: quiz
// stores percent correct, hangman stores remaining guesses, guess stores
// negative attempt count so fewer attempts rank higher.
type Score struct {
	ID       int64
	Game     string
	Player   string
	Score    int
	Details  string
	PlayedAt time.Time
}

// RecordScore appends a game result.
func (s *LocalStore) RecordScore(game, player string, score int, details string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if game == "" {
		return fmt.Errorf("game name required")
	}
	if player == "" {
		player = "player"
	}
	_, err := s.db.Exec(
		"INSERT INTO scores (game, player, score, details) VALUES (?, ?, ?, ?)",
		game, player, score, details,
	)
	if err != nil {
		return fmt.Errorf("failed to record score: %w", err)
	}
	logging.Games("Recorded %s score %d for %s", game, score, player)
	return nil
}

// TopScores returns the best scores for a game, highest first. An empty
// game returns scores across every game, newest first.
func (s *LocalStore) TopScores(game string, limit int) ([]Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	var query string
	var args []interface{}
	if game == "" {
		query = `SELECT id, game, player, score, details, played_at
		         FROM scores ORDER BY played_at DESC LIMIT ?`
		args = []interface{}{limit}
	} else {
		query = `SELECT id, game, player, score, details, played_at
		         FROM scores WHERE game = ? ORDER BY score DESC, played_at LIMIT ?`
		args = []interface{}{game, limit}
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	var scores []Score
	for rows.Next() {
		var sc Score
		var played string
		if err := rows.Scan(&sc.ID, &sc.Game, &sc.Player, &sc.Score, &sc.Details, &played); err != nil {
			return nil, fmt.Errorf("failed to scan score row: %w", err)
		}
		sc.PlayedAt = parseTimestamp(played)
		scores = append(scores, sc)
	}
	return scores, rows.Err()
}

// RecordCalculation appends a calculator history row, pruning the table to
// the 50 most recent entries.
func (s *LocalStore) RecordCalculation(expression, result string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(
		"INSERT INTO calc_history (expression, result) VALUES (?, ?)", expression, result); err != nil {
		return fmt.Errorf("failed to record calculation: %w", err)
	}
	if _, err := s.db.Exec(
		`DELETE FROM calc_history WHERE id NOT IN
		 (SELECT id FROM calc_history ORDER BY id DESC LIMIT 50)`); err != nil {
		return fmt.Errorf("failed to prune calc history: %w", err)
	}
	return nil
}

// CalcHistory returns the most recent calculations, newest first.
func (s *LocalStore) CalcHistory(limit int) ([][2]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		"SELECT expression, result FROM calc_history ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query calc history: %w", err)
	}
	defer rows.Close()

	var history [][2]string
	for rows.Next() {
		var expr, result string
		if err := rows.Scan(&expr, &result); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		history = append(history, [2]string{expr, result})
	}
	return history, rows.Err()
}

// AddWeatherFavorite saves a city; duplicates are ignored (NOCASE).
func (s *LocalStore) AddWeatherFavorite(city string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if city == "" {
		return fmt.Errorf("city required")
	}
	if _, err := s.db.Exec("INSERT OR IGNORE INTO weather_favorites (city) VALUES (?)", city); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// RemoveWeatherFavorite deletes a city from the favorites.
func (s *LocalStore) RemoveWeatherFavorite(city string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM weather_favorites WHERE city = ?", city)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("favorite %q: %w", city, ErrNotFound)
	}
	return nil
}

// WeatherFavorites lists saved cities alphabetically.
func (s *LocalStore) WeatherFavorites() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT city FROM weather_favorites ORDER BY city COLLATE NOCASE")
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var cities []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}
