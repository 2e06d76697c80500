package person

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ListFilter enumerates the predicates supported by FindAll. Nil pointer
// fields are not applied.
type ListFilter struct {
	Role           *string
	Active         *bool
	IncludeDeleted bool
}

//go:generate mockgen -source=person_repo.go -destination=mock/person_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, p *Person) error
	FindByID(ctx context.Context, id string) (*Person, error)
	FindByIDIncludingDeleted(ctx context.Context, id string) (*Person, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Person, error)
	FindOptions(ctx context.Context) ([]Person, error)
	Update(ctx context.Context, p *Person) error
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
	CountAssignments(ctx context.Context, personID string) (int64, error)
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

func (r *repository) Create(ctx context.Context, p *Person) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Person, error) {
	var p Person
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindByIDIncludingDeleted(ctx context.Context, id string) (*Person, error) {
	var p Person
	err := r.db.WithContext(ctx).Unscoped().First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Person, error) {
	db := r.db.WithContext(ctx)
	if filter.IncludeDeleted {
		db = db.Unscoped()
	}
	if filter.Role != nil {
		db = db.Where("role = ?", *filter.Role)
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}

	var persons []Person
	err := db.Order("name ASC").Find(&persons).Error
	return persons, err
}

// FindOptions returns the slim active-person list used by assignment
// dropdowns and the auto-assign candidate pool.
func (r *repository) FindOptions(ctx context.Context) ([]Person, error) {
	var persons []Person
	err := r.db.WithContext(ctx).
		Select("id", "name", "email", "role", "active", "home_location").
		Where("active = ?", true).
		Order("name ASC").
		Find(&persons).Error
	return persons, err
}

func (r *repository) Update(ctx context.Context, p *Person) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&Person{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"active":     false,
			"deleted_at": time.Now().UTC(),
		}).Error
}

func (r *repository) Restore(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Model(&Person{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"active":     true,
			"deleted_at": nil,
		}).Error
}

func (r *repository) HardDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Delete(&Person{}, "id = ?", id).Error
}

func (r *repository) CountAssignments(ctx context.Context, personID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("assignments").
		Where("disponent_id = ?", personID).
		Count(&count).Error
	return count, err
}
