package postgres

import (
	"context"

	"acorn/internal/domain/entity"
	"acorn/internal/domain/repository"
	"acorn/internal/infra/persistence/model"
	"acorn/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository keeps the ILIKE search on raw gorm and reads the rest through the query builder.
type customerRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db, q: query.Use(db)}
}

func (repo *customerRepository) filtered(ctx context.Context, term string) *gorm.DB {
	pattern := containsPattern(term)

	return repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
}

func (repo *customerRepository) FindFiltered(ctx context.Context, term string, limit, offset int) ([]*entity.Customer, error) {
	limit, offset = normalizePaging(limit, offset)

	var rows []model.CustomerModel
	err := repo.filtered(ctx, term).
		Order("name ASC").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find filtered customers")
	}

	customers := make([]*entity.Customer, 0, len(rows))
	for i := range rows {
		customers = append(customers, toCustomerDomain(&rows[i]))
	}

	return customers, nil
}

func (repo *customerRepository) CountFiltered(ctx context.Context, term string) (int64, error) {
	var count int64
	if err := repo.filtered(ctx, term).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count filtered customers")
	}

	return count, nil
}

func (repo *customerRepository) ListOptions(ctx context.Context, limit int) ([]*entity.CustomerOption, error) {
	limit, _ = normalizePaging(limit, 0)

	c := repo.q.CustomerModel
	rows, err := c.WithContext(ctx).
		Select(c.ID, c.Name).
		Order(c.Name, c.ID).
		Limit(limit).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer options")
	}

	options := make([]*entity.CustomerOption, 0, len(rows))
	for _, row := range rows {
		options = append(options, &entity.CustomerOption{ID: row.ID, Name: row.Name})
	}

	return options, nil
}

func (repo *customerRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.q.CustomerModel.WithContext(ctx).Count()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count customers")
	}

	return count, nil
}

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	return &entity.Customer{
		ID:       data.ID,
		Name:     data.Name,
		Email:    data.Email,
		ImageURL: data.ImageURL,
	}
}
