package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/robklaiss/foteam/internal/configs"
	"github.com/robklaiss/foteam/internal/logger"
	"go.uber.org/zap"
)

const LoadPhoto = "Repository-LoadPhoto"
const GetPhotos = "Repository-GetPhotos"
const CreateMarathon = "Repository-CreateMarathon"
const UpdateMarathon = "Repository-UpdateMarathon"
const GetMarathon = "Repository-GetMarathon"
const GetMarathons = "Repository-GetMarathons"
const GetUserMarathons = "Repository-GetUserMarathons"

const schema = `
CREATE EXTENSION IF NOT EXISTS pgcrypto;
CREATE TABLE IF NOT EXISTS marathons (
	marathonid UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	userid TEXT NOT NULL,
	name VARCHAR(100) NOT NULL,
	event_date DATE NOT NULL,
	location VARCHAR(200) NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS photos (
	photoid UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	userid TEXT NOT NULL,
	marathonid UUID REFERENCES marathons (marathonid) ON DELETE SET NULL,
	filename TEXT NOT NULL,
	url TEXT NOT NULL,
	size BIGINT NOT NULL,
	content_type TEXT NOT NULL,
	numbers TEXT[] NOT NULL DEFAULT '{}',
	uploaded_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS photos_marathon_uploaded_idx ON photos (marathonid, uploaded_at DESC);
CREATE INDEX IF NOT EXISTS photos_uploaded_idx ON photos (uploaded_at DESC, photoid DESC);
`

type DBObject struct {
	connect *sql.DB
	mapstmt map[string]*sql.Stmt
	logger  logger.PhotoLoggerInterface
}

// statements are prepared in this order on every connection.
var statements = []string{
	insertPhotoQuery,
	selectPhotosQuery,
	selectMarathonPhotosQuery,
	insertMarathonQuery,
	updateMarathonQuery,
	selectMarathonQuery,
	selectActiveMarathonsQuery,
	selectUserMarathonsQuery,
}

func NewPostgresConnection(cfg configs.DatabaseConfig, log logger.PhotoLoggerInterface) (*DBObject, error) {
	connect, err := sql.Open(cfg.Driver, buildConnectionString(cfg))
	if err != nil {
		log.Error("Postgre-Client-Open error", zap.Error(err))
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	err = connect.PingContext(ctx)
	if err != nil {
		connect.Close()
		log.Error("Postgre-Client-Ping error", zap.Error(err))
		return nil, err
	}
	_, err = connect.ExecContext(ctx, schema)
	if err != nil {
		connect.Close()
		log.Error("Failed to bootstrap Postgre schema", zap.Error(err))
		return nil, err
	}
	dbObject, err := newDBObject(connect, log)
	if err != nil {
		connect.Close()
		log.Error("Failed to prepare Postgre statements", zap.Error(err))
		return nil, err
	}
	log.Info("Successful connect to Postgre-Client", zap.String("host", cfg.Host))
	return dbObject, nil
}
func newDBObject(connect *sql.DB, log logger.PhotoLoggerInterface) (*DBObject, error) {
	db := &DBObject{connect: connect, mapstmt: make(map[string]*sql.Stmt), logger: log}
	for _, query := range statements {
		stmt, err := connect.Prepare(query)
		if err != nil {
			db.closeStatements()
			return nil, fmt.Errorf("prepare %q: %w", query, err)
		}
		db.mapstmt[query] = stmt
	}
	return db, nil
}
func (db *DBObject) closeStatements() {
	for _, stmt := range db.mapstmt {
		stmt.Close()
	}
}
func (db *DBObject) Close() {
	db.closeStatements()
	db.connect.Close()
	db.logger.Info("Successful close Postgre-Client")
}
func (db *DBObject) Ping(ctx context.Context) error {
	return db.connect.PingContext(ctx)
}
func buildConnectionString(cfg configs.DatabaseConfig) string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, cfg.SSLMode)
}
