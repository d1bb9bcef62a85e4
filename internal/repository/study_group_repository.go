package repository

import (
	"strings"
	"time"

	"github.com/fadilmartias/studylink/internal/model"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	SortLatest   = "latest"
	SortPopular  = "popular"
	SortDeadline = "deadline"
)

type StudyGroupFilter struct {
	Region   string
	Search   string
	Sort     string
	Page     int
	PageSize int
	// Today is the first day still open when sorting by deadline.
	Today time.Time
}

type StudyGroupRepository struct {
	db *gorm.DB
}

func NewStudyGroupRepository(db *gorm.DB) *StudyGroupRepository {
	return &StudyGroupRepository{db}
}

func (r *StudyGroupRepository) CreateGroup(group *model.StudyGroup, leader *model.StudyMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Members", "Creator").Create(group).Error; err != nil {
			return err
		}
		if len(group.Tags) > 0 {
			if err := tx.Model(group).Association("Tags").Replace(group.Tags); err != nil {
				return err
			}
		}
		leader.StudyGroupID = group.ID
		return tx.Create(leader).Error
	})
}

func (r *StudyGroupRepository) UpdateGroup(group *model.StudyGroup) error {
	return r.db.Omit("Tags", "Members", "Creator", "Interests", "Embedding").Save(group).Error
}

func (r *StudyGroupRepository) ReplaceTags(group *model.StudyGroup, tags []model.Tag) error {
	if err := r.db.Model(group).Association("Tags").Replace(tags); err != nil {
		return err
	}
	group.Tags = tags
	return nil
}

func (r *StudyGroupRepository) DeleteGroup(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM study_group_tags WHERE study_group_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.StudyGroup{}, "id = ?", id).Error
	})
}

func (r *StudyGroupRepository) FindGroupByID(id uuid.UUID) (*model.StudyGroup, error) {
	var g model.StudyGroup
	err := r.db.
		Preload("Creator").
		Preload("Tags").
		Preload("Members").
		First(&g, "id = ?", id).Error
	return &g, err
}

func (r *StudyGroupRepository) IncrementViewCount(id uuid.UUID) error {
	return r.db.Model(&model.StudyGroup{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *StudyGroupRepository) FindGroups(f StudyGroupFilter) ([]model.StudyGroup, int64, error) {
	q := r.db.Model(&model.StudyGroup{})

	if f.Region != "" {
		q = q.Where("study_groups.region = ?", f.Region)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Joins("JOIN users creator ON creator.id = study_groups.creator_id").
			Where(`(LOWER(study_groups.title) LIKE ? OR LOWER(study_groups.topic) LIKE ?
				OR LOWER(study_groups.description) LIKE ? OR LOWER(creator.nickname) LIKE ?
				OR LOWER(study_groups.region) LIKE ?
				OR EXISTS (SELECT 1 FROM study_group_tags sgt JOIN tags t ON t.id = sgt.tag_id
					WHERE sgt.study_group_id = study_groups.id AND t.name LIKE ?))`,
				like, like, like, like, like, like)
	}

	if f.Sort == SortDeadline {
		q = q.Where("study_groups.recruitment_deadline >= ?", f.Today.Format(time.DateOnly))
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch f.Sort {
	case SortPopular:
		q = q.Order("(SELECT COUNT(*) FROM study_members sm WHERE sm.study_group_id = study_groups.id) DESC").
			Order("study_groups.created_at DESC")
	case SortDeadline:
		q = q.Order("study_groups.recruitment_deadline ASC")
	default:
		q = q.Order("study_groups.created_at DESC")
	}

	var groups []model.StudyGroup
	err := q.
		Preload("Creator").
		Preload("Tags").
		Preload("Members").
		Preload("Interests").
		Offset((f.Page - 1) * f.PageSize).
		Limit(f.PageSize).
		Find(&groups).Error
	return groups, total, err
}

func (r *StudyGroupRepository) FindAllWithTags() ([]model.StudyGroup, error) {
	var groups []model.StudyGroup
	err := r.db.Preload("Creator").Preload("Tags").Order("created_at ASC").Find(&groups).Error
	return groups, err
}

func (r *StudyGroupRepository) FindGroupsByCreator(userID uuid.UUID) ([]model.StudyGroup, error) {
	var groups []model.StudyGroup
	err := r.db.
		Preload("Creator").
		Preload("Tags").
		Preload("Members").
		Where("creator_id = ?", userID).
		Order("created_at DESC").
		Find(&groups).Error
	return groups, err
}

func (r *StudyGroupRepository) UpdateEmbedding(id uuid.UUID, embedding pgvector.Vector) error {
	return r.db.Model(&model.StudyGroup{}).
		Where("id = ?", id).
		UpdateColumn("embedding", embedding).Error
}

// SearchByEmbedding orders groups by cosine distance to embedding.
func (r *StudyGroupRepository) SearchByEmbedding(embedding pgvector.Vector, topK int) ([]model.StudyGroup, error) {
	var groups []model.StudyGroup
	err := r.db.
		Preload("Creator").
		Preload("Tags").
		Where("embedding IS NOT NULL").
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "embedding <=> ?",
			Vars:               []interface{}{embedding},
			WithoutParentheses: true,
		}}).
		Limit(topK).
		Find(&groups).Error
	return groups, err
}
