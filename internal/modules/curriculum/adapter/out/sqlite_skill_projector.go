package adapterout

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pathora/internal/modules/curriculum/domain"
	portout "pathora/internal/modules/curriculum/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteSkillProjector keeps the flattened skill list and the path summaries
// in a local sqlite cache so listing and search work without a network
// round trip.
type SQLiteSkillProjector struct {
	db *sql.DB
}

var (
	_ portout.SkillProjector = (*SQLiteSkillProjector)(nil)
	_ portout.PathCache      = (*SQLiteSkillProjector)(nil)
)

func NewSQLiteSkillProjector(dbPath string) (*SQLiteSkillProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteSkillProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (s *SQLiteSkillProjector) Close() error {
	return s.db.Close()
}

func (s *SQLiteSkillProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS skills (
  id INTEGER NOT NULL,
  path_id INTEGER NOT NULL,
  title TEXT NOT NULL,
  category TEXT NOT NULL,
  content TEXT,
  difficulty TEXT NOT NULL,
  estimated_time TEXT NOT NULL,
  why_it_matters TEXT NOT NULL,
  what_you_learn TEXT NOT NULL,
  ai_resources TEXT,
  status TEXT NOT NULL,
  prerequisites TEXT,
  locked INTEGER NOT NULL,
  position INTEGER NOT NULL,
  PRIMARY KEY (id, path_id)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create skills table: %w", err)
	}
	const pathsDDL = `
CREATE TABLE IF NOT EXISTS paths (
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  difficulty TEXT NOT NULL,
  module_count INTEGER NOT NULL,
  skill_count INTEGER NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, pathsDDL); err != nil {
		return fmt.Errorf("create paths table: %w", err)
	}
	return nil
}

func (s *SQLiteSkillProjector) UpsertPaths(ctx context.Context, paths []domain.PathSummary) error {
	const stmt = `
INSERT INTO paths (id, title, description, difficulty, module_count, skill_count)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  title=excluded.title,
  description=excluded.description,
  difficulty=excluded.difficulty,
  module_count=excluded.module_count,
  skill_count=excluded.skill_count;
`
	for _, p := range paths {
		_, err := s.db.ExecContext(ctx, stmt, p.ID, p.Title, p.Description, p.Difficulty, p.ModuleCount, p.SkillCount)
		if err != nil {
			return fmt.Errorf("upsert path %d: %w", p.ID, err)
		}
	}
	return nil
}

func (s *SQLiteSkillProjector) CachedPaths(ctx context.Context) ([]domain.PathSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, description, difficulty, module_count, skill_count FROM paths ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query cached paths: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var paths []domain.PathSummary
	for rows.Next() {
		var p domain.PathSummary
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Difficulty, &p.ModuleCount, &p.SkillCount); err != nil {
			return nil, fmt.Errorf("scan cached path: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

func (s *SQLiteSkillProjector) Reset(ctx context.Context, pathID int) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM skills WHERE path_id = ?`, pathID); err != nil {
		return fmt.Errorf("reset skills: %w", err)
	}
	return nil
}

func (s *SQLiteSkillProjector) Upsert(ctx context.Context, skills []domain.Skill) error {
	const stmt = `
INSERT INTO skills (id, path_id, title, category, content, difficulty, estimated_time, why_it_matters, what_you_learn, ai_resources, status, prerequisites, locked, position)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id, path_id) DO UPDATE SET
  title=excluded.title,
  category=excluded.category,
  content=excluded.content,
  difficulty=excluded.difficulty,
  estimated_time=excluded.estimated_time,
  why_it_matters=excluded.why_it_matters,
  what_you_learn=excluded.what_you_learn,
  ai_resources=excluded.ai_resources,
  status=excluded.status,
  prerequisites=excluded.prerequisites,
  locked=excluded.locked,
  position=excluded.position;
`
	for _, skill := range skills {
		whatYouLearn, err := json.Marshal(skill.WhatYouLearn)
		if err != nil {
			return fmt.Errorf("encode what_you_learn: %w", err)
		}
		resources, err := json.Marshal(skill.AIResources)
		if err != nil {
			return fmt.Errorf("encode ai_resources: %w", err)
		}
		prereqs, err := json.Marshal(skill.Prerequisites)
		if err != nil {
			return fmt.Errorf("encode prerequisites: %w", err)
		}
		_, err = s.db.ExecContext(ctx, stmt,
			skill.ID,
			skill.PathID,
			skill.Title,
			skill.Category,
			skill.Content,
			skill.Difficulty,
			skill.EstimatedTime,
			skill.WhyItMatters,
			string(whatYouLearn),
			string(resources),
			skill.Status,
			string(prereqs),
			boolToInt(skill.Locked),
			skill.Position,
		)
		if err != nil {
			return fmt.Errorf("upsert skill %d: %w", skill.ID, err)
		}
	}
	return nil
}

func (s *SQLiteSkillProjector) SetStatus(ctx context.Context, pathID, skillID int, status string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE skills SET status = ? WHERE id = ? AND path_id = ?`,
		status, skillID, pathID,
	)
	if err != nil {
		return fmt.Errorf("update skill status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("skill %d not in path %d index", skillID, pathID)
	}
	return nil
}

func (s *SQLiteSkillProjector) ByPath(ctx context.Context, pathID int) ([]domain.Skill, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+` WHERE path_id = ? ORDER BY position`, pathID)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	return scanSkills(rows)
}

func (s *SQLiteSkillProjector) Search(ctx context.Context, query string) ([]domain.Skill, error) {
	pattern := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx,
		selectColumns+` WHERE title LIKE ? OR category LIKE ? ORDER BY path_id, position`,
		pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("search skills: %w", err)
	}
	return scanSkills(rows)
}

const selectColumns = `
SELECT id, path_id, title, category, content, difficulty, estimated_time, why_it_matters, what_you_learn, ai_resources, status, prerequisites, locked, position
FROM skills`

func scanSkills(rows *sql.Rows) ([]domain.Skill, error) {
	defer func() { _ = rows.Close() }()

	var skills []domain.Skill
	for rows.Next() {
		var (
			skill        domain.Skill
			whatYouLearn string
			resources    string
			prereqs      string
			locked       int
		)
		err := rows.Scan(
			&skill.ID,
			&skill.PathID,
			&skill.Title,
			&skill.Category,
			&skill.Content,
			&skill.Difficulty,
			&skill.EstimatedTime,
			&skill.WhyItMatters,
			&whatYouLearn,
			&resources,
			&skill.Status,
			&prereqs,
			&locked,
			&skill.Position,
		)
		if err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		if err := json.Unmarshal([]byte(whatYouLearn), &skill.WhatYouLearn); err != nil {
			return nil, fmt.Errorf("decode what_you_learn: %w", err)
		}
		if err := json.Unmarshal([]byte(resources), &skill.AIResources); err != nil {
			return nil, fmt.Errorf("decode ai_resources: %w", err)
		}
		if err := json.Unmarshal([]byte(prereqs), &skill.Prerequisites); err != nil {
			return nil, fmt.Errorf("decode prerequisites: %w", err)
		}
		skill.Locked = locked != 0
		skills = append(skills, skill)
	}
	return skills, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
