package model

import (
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate does not create enum types.
var setupSQL = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
	`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'difficulty') THEN CREATE TYPE difficulty AS ENUM ('easy', 'medium', 'hard'); END IF; END $$;`,
	`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'question_origin') THEN CREATE TYPE question_origin AS ENUM ('llm-generated', 'user-text', 'user-upload'); END IF; END $$;`,
	`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'question_status') THEN CREATE TYPE question_status AS ENUM ('active', 'completed', 'abandoned'); END IF; END $$;`,
	`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'message_role') THEN CREATE TYPE message_role AS ENUM ('user', 'assistant'); END IF; END $$;`,
}

// Migrate creates the enums and every table. It is idempotent.
func Migrate(db *gorm.DB) error {
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("setup sql: %w", err)
		}
	}

	return db.AutoMigrate(
		&StudyLevel{},
		&Grade{},
		&MainTopic{},
		&Subtopic{},
		&Conversation{},
		&Question{},
		&Message{},
	)
}
