package server

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/trailworks/cluehunt/internal/hunt"
)

// SQLiteStore implements Store on a single SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func nowUTC() string {
	return hunt.FormatTime(time.Now())
}

// parseStored reads a stored timestamp, treating unparsable text as zero.
func parseStored(s string) time.Time {
	t, err := hunt.ParseTime(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func optTime(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	t := parseStored(ns.String)
	return &t
}

// nullIfEmpty keeps the slug UNIQUE index happy: empty slugs are stored
// as NULL so they never collide.
func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// Teams

func (s *SQLiteStore) CreateTeam(ctx context.Context, name, token string) (hunt.Team, error) {
	created := nowUTC()
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO teams (name, token, created_at)
		VALUES (?, ?, ?)
		RETURNING id
	`, name, token, created).Scan(&id)
	if err != nil {
		return hunt.Team{}, err
	}
	return hunt.Team{ID: id, Name: name, Token: token, CreatedAt: parseStored(created)}, nil
}

func (s *SQLiteStore) TeamByID(ctx context.Context, id int64) (hunt.Team, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, token, created_at, completed_at
		FROM teams WHERE id = ?
	`, id)
	return scanTeam(row)
}

func (s *SQLiteStore) ListTeams(ctx context.Context) ([]hunt.Team, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, token, created_at, completed_at
		FROM teams ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []hunt.Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTeam(row rowScanner) (hunt.Team, error) {
	var t hunt.Team
	var created string
	var completed sql.NullString
	err := row.Scan(&t.ID, &t.Name, &t.Token, &created, &completed)
	if errors.Is(err, sql.ErrNoRows) {
		return t, ErrNotFound
	}
	if err != nil {
		return t, err
	}
	t.CreatedAt = parseStored(created)
	t.CompletedAt = optTime(completed)
	return t, nil
}

func (s *SQLiteStore) CompleteTeam(ctx context.Context, teamID int64) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE teams SET completed_at = ?
		WHERE id = ? AND completed_at IS NULL
	`, nowUTC(), teamID)
	return err
}

func (s *SQLiteStore) ResetGame(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM progress`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM teams`); err != nil {
		return err
	}
	return tx.Commit()
}

// Clues

const clueColumns = `id, title, body_variant_a, body_variant_b, kind,
	answer_payload, hint_text, COALESCE(slug, ''), order_index, is_final`

func scanClue(row rowScanner) (hunt.Clue, error) {
	var c hunt.Clue
	var kind string
	err := row.Scan(&c.ID, &c.Title, &c.BodyVariantA, &c.BodyVariantB, &kind,
		&c.AnswerPayload, &c.HintText, &c.Slug, &c.OrderIndex, &c.Final)
	if errors.Is(err, sql.ErrNoRows) {
		return c, ErrNotFound
	}
	if err != nil {
		return c, err
	}
	c.Kind = hunt.AnswerKind(kind)
	return c, nil
}

func (s *SQLiteStore) ListClues(ctx context.Context) ([]hunt.Clue, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+clueColumns+` FROM clues ORDER BY order_index`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clues []hunt.Clue
	for rows.Next() {
		c, err := scanClue(rows)
		if err != nil {
			return nil, err
		}
		clues = append(clues, c)
	}
	return clues, rows.Err()
}

func (s *SQLiteStore) ClueByID(ctx context.Context, id int64) (hunt.Clue, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+clueColumns+` FROM clues WHERE id = ?`, id,
	)
	return scanClue(row)
}

func (s *SQLiteStore) ClueBySlug(ctx context.Context, slug string) (hunt.Clue, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+clueColumns+` FROM clues WHERE slug = ?`, slug,
	)
	return scanClue(row)
}

func (s *SQLiteStore) CreateClue(ctx context.Context, c hunt.Clue) (hunt.Clue, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO clues (title, body_variant_a, body_variant_b, kind,
			answer_payload, hint_text, slug, order_index, is_final)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`, c.Title, c.BodyVariantA, c.BodyVariantB, string(c.Kind),
		c.AnswerPayload, c.HintText, nullIfEmpty(c.Slug), c.OrderIndex, c.Final,
	).Scan(&c.ID)
	if err != nil {
		return hunt.Clue{}, err
	}
	return c, nil
}

func (s *SQLiteStore) UpdateClue(ctx context.Context, c hunt.Clue) (hunt.Clue, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE clues SET title = ?, body_variant_a = ?, body_variant_b = ?,
			kind = ?, answer_payload = ?, hint_text = ?, slug = ?,
			order_index = ?, is_final = ?
		WHERE id = ?
	`, c.Title, c.BodyVariantA, c.BodyVariantB, string(c.Kind),
		c.AnswerPayload, c.HintText, nullIfEmpty(c.Slug), c.OrderIndex, c.Final, c.ID)
	if err != nil {
		return hunt.Clue{}, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return hunt.Clue{}, ErrNotFound
	}
	return c, nil
}

func (s *SQLiteStore) DeleteClue(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM clues WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) ListSlugs(ctx context.Context) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT slug FROM clues WHERE slug IS NOT NULL AND slug != ''`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slugs := make(map[string]bool)
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, err
		}
		slugs[slug] = true
	}
	return slugs, rows.Err()
}

// Progress ledger

const progressColumns = `team_id, clue_id, variant, started_at, solved_at,
	used_hint, skipped, wrong_attempts`

func scanProgress(row rowScanner) (hunt.Progress, error) {
	var p hunt.Progress
	var variant, started string
	var solved sql.NullString
	err := row.Scan(&p.TeamID, &p.ClueID, &variant, &started, &solved,
		&p.UsedHint, &p.Skipped, &p.WrongAttempts)
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrNotFound
	}
	if err != nil {
		return p, err
	}
	p.Variant = hunt.Variant(variant)
	p.StartedAt = parseStored(started)
	p.SolvedAt = optTime(solved)
	return p, nil
}

// GetOrCreateProgress is an atomic insert-or-ignore followed by a
// re-select, so concurrent first touches of the same (team, clue) pair
// race on the UNIQUE constraint: one creator wins, everyone reads the
// same row. The variant is deterministic, so it is identical either way.
func (s *SQLiteStore) GetOrCreateProgress(ctx context.Context, team hunt.Team, clue hunt.Clue) (hunt.Progress, error) {
	variant := hunt.AssignVariant(team.Token, clue.ID)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO progress (team_id, clue_id, variant, started_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (team_id, clue_id) DO NOTHING
	`, team.ID, clue.ID, string(variant), nowUTC())
	if err != nil {
		return hunt.Progress{}, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT `+progressColumns+` FROM progress
		WHERE team_id = ? AND clue_id = ?
	`, team.ID, clue.ID)
	return scanProgress(row)
}

func (s *SQLiteStore) MarkSolved(ctx context.Context, teamID, clueID int64) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE progress SET solved_at = ?
		WHERE team_id = ? AND clue_id = ? AND solved_at IS NULL
	`, nowUTC(), teamID, clueID)
	return err
}

func (s *SQLiteStore) MarkHintUsed(ctx context.Context, teamID, clueID int64) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE progress SET used_hint = 1
		WHERE team_id = ? AND clue_id = ?
	`, teamID, clueID)
	return err
}

func (s *SQLiteStore) MarkSkipped(ctx context.Context, teamID, clueID int64) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE progress SET skipped = 1, solved_at = COALESCE(solved_at, ?)
		WHERE team_id = ? AND clue_id = ?
	`, nowUTC(), teamID, clueID)
	return err
}

func (s *SQLiteStore) RecordWrongAttempt(ctx context.Context, teamID, clueID int64) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE progress SET wrong_attempts = wrong_attempts + 1
		WHERE team_id = ? AND clue_id = ?
	`, teamID, clueID)
	return err
}

func (s *SQLiteStore) ProgressByTeam(ctx context.Context, teamID int64) ([]hunt.Progress, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+progressColumns+` FROM progress
		WHERE team_id = ? ORDER BY clue_id
	`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProgress(rows)
}

func (s *SQLiteStore) AllProgress(ctx context.Context) ([]hunt.Progress, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+progressColumns+` FROM progress ORDER BY team_id, clue_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProgress(rows)
}

func collectProgress(rows *sql.Rows) ([]hunt.Progress, error) {
	var entries []hunt.Progress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, p)
	}
	return entries, rows.Err()
}

// Config

func (s *SQLiteStore) GetConfig(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM config WHERE key = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

func (s *SQLiteStore) SetConfig(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO config (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

func (s *SQLiteStore) AllConfig(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM config`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cfg := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		cfg[k] = v
	}
	return cfg, rows.Err()
}

// ReplaceBundle swaps the clue set and config inside one transaction.
// Progress rows referencing replaced clues go with them via the FK
// cascade; validation happens before this is called.
func (s *SQLiteStore) ReplaceBundle(ctx context.Context, clues []hunt.Clue, config map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM clues`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM config`); err != nil {
		return err
	}

	for _, c := range clues {
		// A zero id lets the row autoincrement; explicit ids are kept so
		// printed slugs and links survive a re-import.
		id := sql.NullInt64{Int64: c.ID, Valid: c.ID > 0}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO clues (id, title, body_variant_a, body_variant_b,
				kind, answer_payload, hint_text, slug, order_index, is_final)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, c.Title, c.BodyVariantA, c.BodyVariantB, string(c.Kind),
			c.AnswerPayload, c.HintText, nullIfEmpty(c.Slug), c.OrderIndex, c.Final)
		if err != nil {
			return err
		}
	}
	for k, v := range config {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO config (key, value) VALUES (?, ?)`, k, v)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
