package main

// schema is applied in order inside one transaction. Every statement is
// idempotent so the script can run against an existing database.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS google_api_keys (
		id         BIGSERIAL PRIMARY KEY,
		api_key    TEXT NOT NULL UNIQUE,
		is_active  BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS google_api_usage (
		id                BIGSERIAL PRIMARY KEY,
		google_api_key_id BIGINT NOT NULL REFERENCES google_api_keys (id),
		usage_date        DATE NOT NULL,
		quota_limit       INTEGER NOT NULL,
		quota_used        INTEGER NOT NULL DEFAULT 0,
		last_used_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT google_api_usage_key_day UNIQUE (google_api_key_id, usage_date)
	)`,
	`CREATE INDEX IF NOT EXISTS google_api_usage_day_last_used
		ON google_api_usage (usage_date, last_used_at)`,
	`CREATE TABLE IF NOT EXISTS channel_setting (
		id           BIGSERIAL PRIMARY KEY,
		channel_id   TEXT NOT NULL UNIQUE,
		channel_name TEXT NOT NULL DEFAULT '',
		is_deleted   SMALLINT NOT NULL DEFAULT 2,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS keyword_setting (
		id         BIGSERIAL PRIMARY KEY,
		keyword    TEXT NOT NULL UNIQUE,
		is_deleted SMALLINT NOT NULL DEFAULT 2,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS yt_channel (
		channel_id            TEXT PRIMARY KEY,
		channel_name          TEXT NOT NULL,
		channel_created_at    TIMESTAMPTZ,
		channel_description   TEXT NOT NULL DEFAULT '',
		channel_thumbnail_url TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS yt_channel_statistics (
		channel_id       TEXT NOT NULL,
		snapshot_date    DATE NOT NULL,
		subscriber_count BIGINT NOT NULL DEFAULT 0,
		view_count       BIGINT NOT NULL DEFAULT 0,
		video_count      BIGINT NOT NULL DEFAULT 0,
		PRIMARY KEY (channel_id, snapshot_date)
	)`,
	`CREATE TABLE IF NOT EXISTS yt_video (
		video_id               TEXT PRIMARY KEY,
		channel_id             TEXT NOT NULL,
		video_title            TEXT NOT NULL,
		video_published_at     TIMESTAMPTZ,
		video_thumbnail_url    TEXT NOT NULL DEFAULT '',
		video_duration         TEXT NOT NULL DEFAULT '',
		video_duration_seconds BIGINT NOT NULL DEFAULT 0,
		video_category_id      TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS yt_video_statistics (
		video_id        TEXT NOT NULL,
		channel_id      TEXT NOT NULL,
		snapshot_date   DATE NOT NULL,
		total_views     BIGINT NOT NULL DEFAULT 0,
		total_likes     BIGINT NOT NULL DEFAULT 0,
		total_favorites BIGINT NOT NULL DEFAULT 0,
		total_comments  BIGINT NOT NULL DEFAULT 0,
		PRIMARY KEY (video_id, snapshot_date)
	)`,
	`CREATE TABLE IF NOT EXISTS keywords_videos (
		keyword_id BIGINT NOT NULL REFERENCES keyword_setting (id),
		video_id   TEXT NOT NULL,
		PRIMARY KEY (video_id, keyword_id)
	)`,
}
