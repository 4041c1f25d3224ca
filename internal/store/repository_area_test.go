// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/go-gate-keeper/internal/logger"
	"github.com/MKhiriev/go-gate-keeper/models"
)

func newTestAreaRepo(t *testing.T) (*areaRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &areaRepository{
		db:     &DB{DB: db, driver: "pgx", logger: l},
		logger: l,
	}
	return repo, mock, db
}

func areaColumnNames() []string {
	return []string{"area_id", "name", "description", "status"}
}

func TestGetAreaByID_Success(t *testing.T) {
	repo, mock, db := newTestAreaRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(areaColumnNames()).
		AddRow("AREA001", "Assembly Line A", "main production floor", "Active")

	mock.ExpectQuery("SELECT area_id, name, description, status").
		WithArgs("AREA001").
		WillReturnRows(rows)

	area, err := repo.GetByID(context.Background(), "AREA001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if area.AreaID != "AREA001" {
		t.Errorf("expected area_id AREA001, got %s", area.AreaID)
	}
	if area.Name != "Assembly Line A" {
		t.Errorf("expected name 'Assembly Line A', got %s", area.Name)
	}
	if area.Status != models.AreaActive {
		t.Errorf("expected Active status, got %s", area.Status)
	}
}

func TestGetAreaByID_NotFound(t *testing.T) {
	repo, mock, db := newTestAreaRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT area_id, name, description, status").
		WithArgs("NOPE").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "NOPE")
	if !errors.Is(err, ErrAreaNotFound) {
		t.Errorf("expected ErrAreaNotFound, got %v", err)
	}
}

func TestGetAllAreas_Success(t *testing.T) {
	repo, mock, db := newTestAreaRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(areaColumnNames()).
		AddRow("AREA001", "Assembly Line A", "main production floor", "Active").
		AddRow("AREA002", "Warehouse", "finished goods storage", "Inactive")

	mock.ExpectQuery("SELECT area_id, name, description, status").
		WillReturnRows(rows)

	areas, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(areas) != 2 {
		t.Fatalf("expected 2 areas, got %d", len(areas))
	}
	if areas[1].Status != models.AreaInactive {
		t.Errorf("expected second area Inactive, got %s", areas[1].Status)
	}
}

func TestGetAllAreas_QueryError(t *testing.T) {
	repo, mock, db := newTestAreaRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT area_id, name, description, status").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetAll(context.Background())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Errorf("expected ErrExecutingQuery, got %v", err)
	}
}
