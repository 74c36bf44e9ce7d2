package repository

import (
	"keude/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	FindByKind(kind model.DocumentKind) ([]model.Document, error)
	FindByID(id uuid.UUID) (*model.Document, error)
	Create(doc *model.Document) error
	Update(doc *model.Document) error
	Delete(id uuid.UUID) error
	CountByKind(kind model.DocumentKind) (int64, error)
}

type documentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) DocumentRepository {
	return &documentRepo{db}
}

func (r *documentRepo) FindByKind(kind model.DocumentKind) ([]model.Document, error) {
	var docs []model.Document
	err := r.db.Preload("Items").Where("kind = ?", kind).Order("date DESC, created_at DESC").Find(&docs).Error
	return docs, err
}

func (r *documentRepo) FindByID(id uuid.UUID) (*model.Document, error) {
	var doc model.Document
	if err := r.db.Preload("Items").First(&doc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepo) Create(doc *model.Document) error {
	return r.db.Create(doc).Error
}

// Update replaces the header and rewrites the item rows, mirroring how the
// frontend always submits the full item list.
func (r *documentRepo) Update(doc *model.Document) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("document_id = ?", doc.ID).Delete(&model.DocumentItem{}).Error; err != nil {
			return err
		}
		for i := range doc.Items {
			doc.Items[i].ID = uuid.Nil
			doc.Items[i].DocumentID = doc.ID
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(doc).Error
	})
}

func (r *documentRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("document_id = ?", id).Delete(&model.DocumentItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.Document{}, "id = ?", id).Error
	})
}

// CountByKind backs the running document numbers (QT-0001, INV-0001, RC-0001).
func (r *documentRepo) CountByKind(kind model.DocumentKind) (int64, error) {
	var count int64
	err := r.db.Model(&model.Document{}).Unscoped().Where("kind = ?", kind).Count(&count).Error
	return count, err
}
