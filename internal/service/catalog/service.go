// Package catalog управляет категориями и товарами меню.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/cardapio/internal/catalog/seed"
	"github.com/vladislavdragonenkov/cardapio/internal/domain"
)

// ProductInput: поля товара, которые задаёт администратор.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	ImageRef    string
	// CategoryID пустой: товар попадает в первую категорию.
	CategoryID string
}

// Service реализует операции каталога поверх CatalogRepository.
type Service struct {
	repo   domain.CatalogRepository
	logger *log.Entry
	now    func() time.Time
	newID  func() string
}

// NewService создаёт сервис каталога.
func NewService(repo domain.CatalogRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.WithField("component", "catalog-service")
	}
	return &Service{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  func() string { return uuid.NewString() },
	}
}

// EnsureSeed заполняет пустой каталог меню menu. Категории создаются, только если
// их нет совсем; товары, только если нет ни одного товара. Возвращает число
// созданных товаров.
func (s *Service) EnsureSeed(ctx context.Context, menu seed.Menu) (int, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return 0, err
	}
	byName := make(map[string]domain.Category, len(categories))
	for _, category := range categories {
		byName[strings.ToLower(category.Name)] = category
	}

	if len(categories) == 0 {
		names := make([]string, 0, len(menu.Categories)+1)
		for _, category := range menu.Categories {
			names = append(names, category.Name)
		}
		if len(names) == 0 {
			names = append(names, domain.DefaultCategoryName)
		}
		for _, name := range names {
			if _, ok := byName[strings.ToLower(strings.TrimSpace(name))]; ok {
				continue
			}
			created, err := s.CreateCategory(ctx, name)
			if err != nil {
				return 0, fmt.Errorf("seed category %q: %w", name, err)
			}
			byName[strings.ToLower(created.Name)] = created
		}
	}

	products, err := s.repo.ListProducts(ctx, "")
	if err != nil {
		return 0, err
	}
	if len(products) > 0 {
		return 0, nil
	}

	created := 0
	for _, category := range menu.Categories {
		target, ok := byName[strings.ToLower(strings.TrimSpace(category.Name))]
		if !ok {
			target, err = s.CreateCategory(ctx, category.Name)
			if err != nil {
				return created, fmt.Errorf("seed category %q: %w", category.Name, err)
			}
			byName[strings.ToLower(target.Name)] = target
		}
		for _, item := range category.Products {
			product, err := item.Domain(target.ID)
			if err != nil {
				return created, err
			}
			if _, err := s.createProduct(ctx, product); err != nil {
				return created, fmt.Errorf("seed product %q: %w", item.Name, err)
			}
			created++
		}
	}

	if created > 0 {
		s.logger.WithField("products", created).Info("catalog seeded")
	}
	return created, nil
}

// CreateCategory добавляет категорию.
func (s *Service) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, domain.ErrCategoryNameRequired
	}
	category := domain.Category{ID: s.newID(), Name: name, CreatedAt: s.now()}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return domain.Category{}, err
	}
	return category, nil
}

// ListCategories возвращает категории в порядке создания.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

// DeleteCategory удаляет категорию. Последнюю категорию и категорию с товарами
// удалить нельзя.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("category_id", id).Info("category deleted")
	return nil
}

// CreateProduct добавляет товар.
func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (domain.Product, error) {
	product := domain.Product{
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		ImageRef:    strings.TrimSpace(in.ImageRef),
		CategoryID:  strings.TrimSpace(in.CategoryID),
	}
	if err := product.Validate(); err != nil {
		return domain.Product{}, err
	}
	if product.CategoryID == "" {
		categoryID, err := s.firstCategoryID(ctx)
		if err != nil {
			return domain.Product{}, err
		}
		product.CategoryID = categoryID
	}
	return s.createProduct(ctx, product)
}

func (s *Service) createProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	now := s.now()
	product.ID = s.newID()
	product.CreatedAt = now
	product.UpdatedAt = now
	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

// UpdateProduct перезаписывает редактируемые поля товара. Пустой ImageRef
// сохраняет текущее изображение, пустой CategoryID, текущую категорию.
// Корзины с этим товаром не меняются: в них лежат снимки.
func (s *Service) UpdateProduct(ctx context.Context, id string, in ProductInput) (domain.Product, error) {
	current, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	updated := current
	updated.Name = in.Name
	updated.Description = strings.TrimSpace(in.Description)
	updated.Price = in.Price
	if ref := strings.TrimSpace(in.ImageRef); ref != "" {
		updated.ImageRef = ref
	}
	if categoryID := strings.TrimSpace(in.CategoryID); categoryID != "" {
		updated.CategoryID = categoryID
	}
	if err := updated.Validate(); err != nil {
		return domain.Product{}, err
	}
	updated.UpdatedAt = s.now()

	if err := s.repo.UpdateProduct(ctx, updated); err != nil {
		return domain.Product{}, err
	}
	return updated, nil
}

// GetProduct возвращает товар по id.
func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

// ListProducts возвращает товары категории; пустой categoryID, все товары.
func (s *Service) ListProducts(ctx context.Context, categoryID string) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx, strings.TrimSpace(categoryID))
}

// DeleteProduct удаляет товар.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("product_id", id).Info("product deleted")
	return nil
}

// Menu группирует товары по категориям. Категории без товаров пропускаются.
func (s *Service) Menu(ctx context.Context) ([]domain.MenuSection, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.repo.ListProducts(ctx, "")
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]domain.Product, len(categories))
	for _, product := range products {
		byCategory[product.CategoryID] = append(byCategory[product.CategoryID], product)
	}

	sections := make([]domain.MenuSection, 0, len(categories))
	for _, category := range categories {
		items := byCategory[category.ID]
		if len(items) == 0 {
			continue
		}
		sections = append(sections, domain.MenuSection{Category: category, Products: items})
	}
	return sections, nil
}

func (s *Service) firstCategoryID(ctx context.Context) (string, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return "", err
	}
	if len(categories) == 0 {
		return "", domain.ErrCategoryNotFound
	}
	return categories[0].ID, nil
}
