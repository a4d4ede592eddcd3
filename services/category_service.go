package services

import (
	"regexp"
	"strings"

	"github.com/Antdol/LittleLemonAPI/entity"
	"github.com/Antdol/LittleLemonAPI/pkg/apperr"
	"github.com/Antdol/LittleLemonAPI/repository"
	"github.com/Antdol/LittleLemonAPI/utils"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

type CategoryIn struct {
	Slug  string `json:"slug"`
	Title string `json:"title" binding:"required"`
}

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a slug from a title when none is given.
func Slugify(title string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(title), "-"), "-")
}

func (s *CategoryService) List() ([]entity.Category, error) {
	cats, err := s.Repo.List()
	return cats, errors.Wrap(err, "list categories")
}

func (s *CategoryService) Create(in *CategoryIn) (*entity.Category, error) {
	title := utils.CleanText(in.Title)
	if title == "" {
		return nil, apperr.Validation("title: this field may not be blank")
	}
	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = Slugify(title)
	}
	if !slugRe.MatchString(slug) {
		return nil, apperr.Validation("slug: use lowercase letters, digits and hyphens")
	}

	c := &entity.Category{Slug: slug, Title: title}
	if err := s.Repo.Create(c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Validation("a category with this slug already exists")
		}
		return nil, errors.Wrap(err, "create category")
	}
	return c, nil
}
