package models

import (
	"time"

	"github.com/m04kA/CTRS-ReservationService/internal/domain"
)

// Request модели

// CreateTableRequest запрос на создание стола
type CreateTableRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// ToDomainTable конвертирует request в domain модель
func (r *CreateTableRequest) ToDomainTable() *domain.Table {
	return &domain.Table{
		ID:       r.ID,
		Name:     r.Name,
		Capacity: r.Capacity,
	}
}

// Response модели

// TableResponse ответ с данными стола
type TableResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableListResponse ответ со списком столов
type TableListResponse struct {
	Tables []TableResponse `json:"tables"`
}

// Методы конвертации

// FromDomainTable конвертирует domain модель в DTO
func FromDomainTable(t *domain.Table) *TableResponse {
	if t == nil {
		return nil
	}

	return &TableResponse{
		ID:        t.ID,
		Name:      t.Name,
		Capacity:  t.Capacity,
		CreatedAt: t.CreatedAt,
	}
}

// FromDomainTableList конвертирует список domain моделей в DTO
func FromDomainTableList(tables []*domain.Table) *TableListResponse {
	resp := &TableListResponse{
		Tables: make([]TableResponse, 0, len(tables)),
	}

	for _, table := range tables {
		if tableResp := FromDomainTable(table); tableResp != nil {
			resp.Tables = append(resp.Tables, *tableResp)
		}
	}

	return resp
}
