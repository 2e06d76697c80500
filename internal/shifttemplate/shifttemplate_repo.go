package shifttemplate

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ListFilter enumerates the predicates supported by FindAll.
type ListFilter struct {
	Active         *bool
	IncludeDeleted bool
}

//go:generate mockgen -source=shifttemplate_repo.go -destination=mock/shifttemplate_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, t *ShiftTemplate) error
	FindByID(ctx context.Context, id string) (*ShiftTemplate, error)
	FindByIDIncludingDeleted(ctx context.Context, id string) (*ShiftTemplate, error)
	FindAll(ctx context.Context, filter ListFilter) ([]ShiftTemplate, error)
	FindAllActive(ctx context.Context) ([]ShiftTemplate, error)
	Update(ctx context.Context, t *ShiftTemplate) error
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
	DeactivateInstances(ctx context.Context, templateID string) (int64, error)
	CountInstances(ctx context.Context, templateID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, t *ShiftTemplate) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*ShiftTemplate, error) {
	var t ShiftTemplate
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) FindByIDIncludingDeleted(ctx context.Context, id string) (*ShiftTemplate, error) {
	var t ShiftTemplate
	err := r.db.WithContext(ctx).Unscoped().First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]ShiftTemplate, error) {
	db := r.db.WithContext(ctx)
	if filter.IncludeDeleted {
		db = db.Unscoped()
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}

	var templates []ShiftTemplate
	err := db.Order("start_time ASC, name ASC").Find(&templates).Error
	return templates, err
}

func (r *repository) FindAllActive(ctx context.Context) ([]ShiftTemplate, error) {
	var templates []ShiftTemplate
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("start_time ASC").
		Find(&templates).Error
	return templates, err
}

func (r *repository) Update(ctx context.Context, t *ShiftTemplate) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&ShiftTemplate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"active":     false,
			"deleted_at": time.Now().UTC(),
		}).Error
}

func (r *repository) Restore(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Model(&ShiftTemplate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"active":     true,
			"deleted_at": nil,
		}).Error
}

func (r *repository) HardDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Delete(&ShiftTemplate{}, "id = ?", id).Error
}

// DeactivateInstances flips every instance generated from the template to
// inactive. Instances are deliberately kept, only deactivated.
func (r *repository) DeactivateInstances(ctx context.Context, templateID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Table("shift_instances").
		Where("template_id = ?", templateID).
		Updates(map[string]interface{}{
			"active":     false,
			"updated_at": time.Now().UTC(),
		})
	return res.RowsAffected, res.Error
}

func (r *repository) CountInstances(ctx context.Context, templateID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("shift_instances").
		Where("template_id = ?", templateID).
		Count(&count).Error
	return count, err
}
