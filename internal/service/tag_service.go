package service

import (
	"errors"
	"fmt"
	"strings"

	"recipe-go/internal/dto"
	"recipe-go/internal/models"
	"recipe-go/internal/repository"
	"recipe-go/internal/utils"

	"gorm.io/gorm"
)

// TagService 标签服务,所有操作以请求用户为边界
type TagService struct {
	tagRepo *repository.TagRepository
}

// NewTagService 创建标签服务
func NewTagService(tagRepo *repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

// Create 为用户创建标签,归属用户由服务端指定
func (s *TagService) Create(userID uint, name string) (*models.Tag, error) {
	name = strings.TrimSpace(name)
	input := struct {
		Name string `validate:"required,notblank,max=255"`
	}{Name: name}
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	tag := &models.Tag{
		Name:   name,
		UserID: userID,
	}

	if err := s.tagRepo.Create(tag); err != nil {
		return nil, fmt.Errorf("创建标签失败: %w", err)
	}

	return tag, nil
}

// List 获取用户的标签,按名称倒序
func (s *TagService) List(userID uint) ([]dto.TagResponse, error) {
	tags, err := s.tagRepo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TagResponse, len(tags))
	for i, tag := range tags {
		responses[i] = dto.TagResponse{
			ID:   tag.ID,
			Name: tag.Name,
		}
	}

	return responses, nil
}

// Get 获取用户自己的标签
func (s *TagService) Get(userID, id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByIDForUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tag, nil
}

// Update 更新用户自己的标签
func (s *TagService) Update(userID, id uint, req *dto.UpdateTagRequest) (*models.Tag, error) {
	tag, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.New("名称不能为空")
		}
		tag.Name = name
	}

	if err := s.tagRepo.Update(tag); err != nil {
		return nil, fmt.Errorf("更新标签失败: %w", err)
	}

	return tag, nil
}

// Delete 删除用户自己的标签
func (s *TagService) Delete(userID, id uint) error {
	deleted, err := s.tagRepo.DeleteForUser(id, userID)
	if err != nil {
		return fmt.Errorf("删除标签失败: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
