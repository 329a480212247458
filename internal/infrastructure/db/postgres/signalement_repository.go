package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/marwa1454/formulaire/internal/core/domain"
	"github.com/marwa1454/formulaire/internal/core/ports"
)

// listOrder keeps new rows at the front so page boundaries for older rows
// stay stable under concurrent inserts. The id tiebreak makes ordering
// deterministic when two rows share a create timestamp.
const listOrder = "created_at DESC, id DESC"

type SignalementRepository struct {
	db *gorm.DB
}

func NewSignalementRepository(db *gorm.DB) *SignalementRepository {
	return &SignalementRepository{db: db}
}

func (r *SignalementRepository) Create(ctx context.Context, s *domain.Signalement) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SignalementRepository) FindByID(ctx context.Context, id uint) (*domain.Signalement, error) {
	var s domain.Signalement
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSignalementNotFound
		}
		return nil, err
	}
	return &s, nil
}

// filtered applies the filter conjunction shared by List and Count so the
// two can never drift apart. LOWER(...) LIKE is used instead of ILIKE so
// the same query runs under the sqlite test driver.
func filtered(q *gorm.DB, f ports.ListFilter) *gorm.DB {
	if f.TypeEvenement != "" {
		q = q.Where("type_evenement = ?", f.TypeEvenement)
	}
	if f.Gravite != "" {
		q = q.Where("gravite = ?", f.Gravite)
	}
	if f.NomAgent != "" {
		q = q.Where("LOWER(nom_agent) LIKE ?", "%"+strings.ToLower(f.NomAgent)+"%")
	}
	if f.SourceInformation != "" {
		q = q.Where("source_information = ?", f.SourceInformation)
	}
	if f.DateDebut != "" {
		q = q.Where("date_signalement >= ?", f.DateDebut)
	}
	if f.DateFin != "" {
		q = q.Where("date_signalement <= ?", f.DateFin)
	}
	return q
}

func (r *SignalementRepository) List(ctx context.Context, f ports.ListFilter) ([]domain.Signalement, error) {
	items := []domain.Signalement{}
	err := filtered(r.db.WithContext(ctx), f).
		Order(listOrder).
		Offset(f.Skip).
		Limit(f.Limit).
		Find(&items).Error
	return items, err
}

func (r *SignalementRepository) Count(ctx context.Context, f ports.ListFilter) (int64, error) {
	var n int64
	err := filtered(r.db.WithContext(ctx).Model(&domain.Signalement{}), f).Count(&n).Error
	return n, err
}

func (r *SignalementRepository) Search(ctx context.Context, term string, limit int) ([]domain.Signalement, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	items := []domain.Signalement{}
	err := r.db.WithContext(ctx).
		Where(
			"LOWER(lieu) LIKE ? OR LOWER(commentaire_complementaire) LIKE ? OR LOWER(nom_agent) LIKE ? OR LOWER(id_agent) LIKE ?",
			pattern, pattern, pattern, pattern,
		).
		Order(listOrder).
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *SignalementRepository) FindSince(ctx context.Context, minDate string, limit int) ([]domain.Signalement, error) {
	items := []domain.Signalement{}
	err := r.db.WithContext(ctx).
		Where("date_signalement >= ?", minDate).
		Order(listOrder).
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *SignalementRepository) FindByAgent(ctx context.Context, idAgent string, limit int) ([]domain.Signalement, error) {
	items := []domain.Signalement{}
	err := r.db.WithContext(ctx).
		Where("id_agent = ?", idAgent).
		Order(listOrder).
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *SignalementRepository) Save(ctx context.Context, s *domain.Signalement) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *SignalementRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&domain.Signalement{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Stats runs the aggregate counts. The sub-queries are not snapshot
// consistent with each other; each is an independent read.
func (r *SignalementRepository) Stats(ctx context.Context, w ports.StatsWindows) (*ports.StatsResult, error) {
	db := r.db.WithContext(ctx)
	result := &ports.StatsResult{
		ParGravite: make(map[string]int64),
		ParType:    make(map[string]int64),
	}

	if err := db.Model(&domain.Signalement{}).Count(&result.Total).Error; err != nil {
		return nil, err
	}

	type bucket struct {
		Label string
		N     int64
	}

	var byGravite []bucket
	if err := db.Model(&domain.Signalement{}).
		Select("gravite AS label, COUNT(*) AS n").
		Group("gravite").
		Scan(&byGravite).Error; err != nil {
		return nil, err
	}
	for _, b := range byGravite {
		result.ParGravite[b.Label] = b.N
	}

	var byType []bucket
	if err := db.Model(&domain.Signalement{}).
		Select("type_evenement AS label, COUNT(*) AS n").
		Group("type_evenement").
		Scan(&byType).Error; err != nil {
		return nil, err
	}
	for _, b := range byType {
		result.ParType[b.Label] = b.N
	}

	counts := []struct {
		dst  *int64
		cond string
		arg  string
	}{
		{&result.Aujourdhui, "date_signalement = ?", w.Today},
		{&result.Hier, "date_signalement = ?", w.Yesterday},
		{&result.CetteSemaine, "date_signalement >= ?", w.WeekStart},
		{&result.CeMois, "date_signalement >= ?", w.MonthStart},
	}
	for _, c := range counts {
		if err := db.Model(&domain.Signalement{}).Where(c.cond, c.arg).Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	return result, nil
}
