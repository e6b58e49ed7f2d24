package dao

import (
	"Pinboard/models"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagDAO struct {
	Repo[models.Tag]
}

type PinTagDAO struct {
	Repo[models.PinTag]
}

func NewTagDAO(db *gorm.DB) *TagDAO {
	return &TagDAO{
		Repo: NewRepo[models.Tag](db),
	}
}

func NewPinTagDAO(db *gorm.DB) *PinTagDAO {
	return &PinTagDAO{
		Repo: NewRepo[models.PinTag](db),
	}
}

func (d *TagDAO) WithTx(tx *gorm.DB) *TagDAO {
	nd := *d
	nd.Db = tx
	return &nd
}

func (d *PinTagDAO) WithTx(tx *gorm.DB) *PinTagDAO {
	nd := *d
	nd.Db = tx
	return &nd
}

// FindByName 按规范化名称精确查询，不存在返回 nil
func (d *TagDAO) FindByName(ctx context.Context, name string) (*models.Tag, error) {
	var tag models.Tag
	err := d.Db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// BatchEnsure 批量 find-or-create
// 并发创建同名标签靠 uk_tag_name + OnConflict DoNothing 兜底，插完统一回查拿全量 ID
func (d *TagDAO) BatchEnsure(ctx context.Context, names []string) (map[string]*models.Tag, error) {
	result := make(map[string]*models.Tag, len(names))
	if len(names) == 0 {
		return result, nil
	}

	now := time.Now()
	toCreate := make([]*models.Tag, 0, len(names))
	for _, name := range names {
		toCreate = append(toCreate, &models.Tag{Name: name, CreatedAt: now})
	}

	if err := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&toCreate).Error; err != nil {
		return nil, err
	}

	// 冲突行拿不到 ID，回查一次
	var tags []*models.Tag
	if err := d.Db.WithContext(ctx).
		Where("name IN ?", names).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	for _, tag := range tags {
		result[tag.Name] = tag
	}
	return result, nil
}

// ListNamesByPinID 取 Pin 的标签名列表
func (d *TagDAO) ListNamesByPinID(ctx context.Context, pinID int64) ([]string, error) {
	var names []string
	err := d.Db.WithContext(ctx).
		Table("tags").
		Joins("INNER JOIN pin_tags ON pin_tags.tag_id = tags.id").
		Where("pin_tags.pin_id = ?", pinID).
		Order("tags.name").
		Pluck("tags.name", &names).Error
	return names, err
}

// BatchCreate 批量写 Pin-标签关联，重复关联直接忽略
func (d *PinTagDAO) BatchCreate(ctx context.Context, pinID int64, tagIDs []uint64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]*models.PinTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, &models.PinTag{PinID: pinID, TagID: tagID, CreatedAt: now})
	}
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

// ListPinIDsByTag 标签下的 Pin ID 集合
func (d *PinTagDAO) ListPinIDsByTag(ctx context.Context, tagID uint64) ([]int64, error) {
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.PinTag{}).
		Where("tag_id = ?", tagID).
		Pluck("pin_id", &ids).Error
	return ids, err
}
