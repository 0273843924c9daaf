package service

import (
	"strings"

	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/repository"
)

// CategoryService 分类服务
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// List 分类列表
func (s *CategoryService) List() ([]models.Category, error) {
	return s.repo.List()
}

// Create 创建分类，名称不区分大小写唯一
func (s *CategoryService) Create(name, description string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	exist, err := s.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrCategoryExists
	}
	category := &models.Category{
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}
