package implementation

import (
	"context"
	"errors"

	"mindshift-be/internal/entity"
	"mindshift-be/internal/mapper"
	"mindshift-be/internal/model"
	"mindshift-be/internal/repository/contract"
	"mindshift-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoicePreferenceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VoiceMapper
}

func NewVoicePreferenceRepository(db *gorm.DB) contract.VoicePreferenceRepository {
	return &VoicePreferenceRepositoryImpl{
		db:     db,
		mapper: mapper.NewVoiceMapper(),
	}
}

func (r *VoicePreferenceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VoicePreferenceRepositoryImpl) Upsert(ctx context.Context, pref *entity.VoicePreference) error {
	m := r.mapper.PreferenceToModel(pref)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"voice_name", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*pref = *r.mapper.PreferenceToEntity(m)
	return nil
}

func (r *VoicePreferenceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.VoicePreference, error) {
	var m model.VoicePreference
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PreferenceToEntity(&m), nil
}
