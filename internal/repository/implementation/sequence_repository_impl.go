package implementation

import (
	"context"
	"errors"

	"contractdesk-be/internal/model"
	"contractdesk-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SequenceRepositoryImpl struct {
	db *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) contract.SequenceRepository {
	return &SequenceRepositoryImpl{db: db}
}

// Next locks the counter row and increments it. Callers run inside a
// unit-of-work transaction, so the row lock holds until commit and two
// writers can never observe the same value.
func (r *SequenceRepositoryImpl) Next(ctx context.Context, name string) (int64, error) {
	var seq model.Sequence
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", name).
		First(&seq).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seq = model.Sequence{Name: name, Value: 0}
		if err := r.db.WithContext(ctx).Create(&seq).Error; err != nil {
			return 0, err
		}
	} else if err != nil {
		return 0, err
	}

	seq.Value++
	err = r.db.WithContext(ctx).
		Model(&model.Sequence{}).
		Where("name = ?", name).
		Update("value", seq.Value).Error
	if err != nil {
		return 0, err
	}
	return seq.Value, nil
}
