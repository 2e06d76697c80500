package assignment

import (
	"context"

	"gorm.io/gorm"
)

type ListFilter struct {
	ShiftInstanceID *string
	DisponentID     *string
	Status          *string
}

//go:generate mockgen -source=assignment_repo.go -destination=mock/assignment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Assignment) error
	FindByID(ctx context.Context, id string) (*Assignment, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Assignment, error)
	Update(ctx context.Context, a *Assignment) error
	Delete(ctx context.Context, id string) error
	DeleteByShiftInstance(ctx context.Context, shiftInstanceID string) (int64, error)
	SwapShiftInstanceIDs(ctx context.Context, a, b *Assignment) error
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

func (r *repository) Create(ctx context.Context, a *Assignment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Assignment, error) {
	var a Assignment
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Assignment, error) {
	db := r.db.WithContext(ctx)
	if filter.ShiftInstanceID != nil {
		db = db.Where("shift_instance_id = ?", *filter.ShiftInstanceID)
	}
	if filter.DisponentID != nil {
		db = db.Where("disponent_id = ?", *filter.DisponentID)
	}
	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}

	var assignments []Assignment
	err := db.Order("created_at ASC").Find(&assignments).Error
	return assignments, err
}

func (r *repository) Update(ctx context.Context, a *Assignment) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Assignment{}, "id = ?", id).Error
}

func (r *repository) DeleteByShiftInstance(ctx context.Context, shiftInstanceID string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&Assignment{}, "shift_instance_id = ?", shiftInstanceID)
	return res.RowsAffected, res.Error
}

// SwapShiftInstanceIDs exchanges the shift references of two assignments
// in one statement. A single UPDATE keeps the unique pair constraint from
// firing on the intermediate state a row-by-row exchange would create.
func (r *repository) SwapShiftInstanceIDs(ctx context.Context, a, b *Assignment) error {
	query := `
UPDATE assignments
SET
	shift_instance_id = CASE id
		WHEN ? THEN ?::uuid
		WHEN ? THEN ?::uuid
	END,
	updated_at = NOW()
WHERE id IN (?, ?)
`
	return r.db.WithContext(ctx).Exec(
		query,
		a.ID, b.ShiftInstanceID,
		b.ID, a.ShiftInstanceID,
		a.ID, b.ID,
	).Error
}
