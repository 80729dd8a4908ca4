package domain

import (
	"context"
	"time"
)

// CatalogRepository описывает требования к хранилищу категорий и товаров.
type CatalogRepository interface {
	// CreateCategory сохраняет новую категорию.
	CreateCategory(ctx context.Context, category Category) error
	// ListCategories возвращает категории в порядке создания.
	ListCategories(ctx context.Context) ([]Category, error)
	// DeleteCategory удаляет категорию. Последнюю категорию и категорию с товарами
	// удалить нельзя (ErrInvalidCategoryOperation).
	DeleteCategory(ctx context.Context, id string) error
	// CreateProduct сохраняет новый товар; категория должна существовать.
	CreateProduct(ctx context.Context, product Product) error
	// UpdateProduct перезаписывает товар целиком.
	UpdateProduct(ctx context.Context, product Product) error
	// GetProduct возвращает товар или ErrProductNotFound.
	GetProduct(ctx context.Context, id string) (Product, error)
	// ListProducts возвращает товары; пустой categoryID, все.
	ListProducts(ctx context.Context, categoryID string) ([]Product, error)
	// DeleteProduct удаляет товар или возвращает ErrProductNotFound.
	DeleteProduct(ctx context.Context, id string) error
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет заказ и его позиции одной атомарной записью.
	Create(ctx context.Context, order Order) error
	// Get возвращает заказ по идентификатору или ErrOrderNotFound.
	Get(ctx context.Context, id string) (Order, error)
	// List возвращает заказы по фильтру, новые первыми.
	List(ctx context.Context, filter OrderFilter) ([]Order, error)
	// MarkDelivered переводит заказ в delivered. Повторный вызов ничего не меняет.
	MarkDelivered(ctx context.Context, id string, at time.Time) (Order, error)
	// Delete удаляет заказ или возвращает ErrOrderNotFound.
	Delete(ctx context.Context, id string) error
}

// ConfigRepository хранит единственную запись StoreConfig.
type ConfigRepository interface {
	// Get возвращает текущие настройки; при отсутствии записи, DefaultStoreConfig.
	Get(ctx context.Context) (StoreConfig, error)
	// Save перезаписывает настройки целиком (last-writer-wins).
	Save(ctx context.Context, cfg StoreConfig) error
	// Patch атомарно меняет только поля патча и возвращает запись до и после.
	// Параллельные патчи разных полей не затирают друг друга.
	Patch(ctx context.Context, patch StoreConfigPatch) (before, after StoreConfig, err error)
}

// CartRepository хранит корзины клиентских сессий.
type CartRepository interface {
	// Get возвращает корзину сессии; для неизвестной сессии, пустую корзину.
	Get(ctx context.Context, sessionID string) (Cart, error)
	Save(ctx context.Context, cart Cart) error
	Delete(ctx context.Context, sessionID string) error
	// Take атомарно забирает корзину сессии: возвращает её и удаляет.
	// Из двух одновременных вызовов непустую корзину получает только один.
	Take(ctx context.Context, sessionID string) (Cart, error)
	// DeleteExpired удаляет корзины, не менявшиеся с before, не более limit штук.
	DeleteExpired(ctx context.Context, before time.Time, limit int) (int, error)
}
