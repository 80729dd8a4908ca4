package domain

import "errors"

var (
	// ErrMissingFields: не заполнены имя клиента, адрес или способ оплаты.
	ErrMissingFields = errors.New("customer name, address and payment method are required")
	// ErrInvalidPaymentMethod: способ оплаты не входит в поддерживаемый список.
	ErrInvalidPaymentMethod = errors.New("unsupported payment method")
	// ErrEmptyCart: попытка оформить заказ с пустой корзиной.
	ErrEmptyCart = errors.New("cart must contain at least one item")
	// ErrStoreClosed: магазин закрыт, приём заказов остановлен.
	ErrStoreClosed = errors.New("store is closed")
	// ErrInvalidTheme: тема оформления не light/dark.
	ErrInvalidTheme = errors.New("theme must be light or dark")
	// ErrContactRequired: номер для связи пустой после нормализации.
	ErrContactRequired = errors.New("contact number must contain digits")
	// ErrProductNameRequired: у товара нет названия.
	ErrProductNameRequired = errors.New("product name is required")
	// ErrProductPriceNegative: отрицательная цена товара.
	ErrProductPriceNegative = errors.New("product price must be non-negative")
	// ErrCategoryNameRequired: у категории нет названия.
	ErrCategoryNameRequired = errors.New("category name is required")
	// ErrSessionRequired: запрос без идентификатора клиентской сессии.
	ErrSessionRequired = errors.New("session id is required")
	// ErrInvalidCategoryOperation: удаление последней категории или категории с товарами.
	ErrInvalidCategoryOperation = errors.New("invalid category operation")

	// ErrUnauthorized: нет или неверный токен администратора.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound: общий признак отсутствующей записи.
	ErrNotFound = errors.New("not found")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = notFound("order not found")
	// ErrProductNotFound возвращается, если товар не найден в каталоге.
	ErrProductNotFound = notFound("product not found")
	// ErrCategoryNotFound возвращается, если категория не найдена.
	ErrCategoryNotFound = notFound("category not found")

	// ErrOrderAlreadyExists: повторная вставка заказа с тем же ID.
	ErrOrderAlreadyExists = errors.New("order already exists")
	// ErrOutboxPublish: ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
	// ErrStorage: сбой хранилища; прерывает только текущее действие.
	ErrStorage = errors.New("storage failure")
)

type notFoundError struct {
	msg string
}

func notFound(msg string) error { return &notFoundError{msg: msg} }

func (e *notFoundError) Error() string { return e.msg }

func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }

// IsNotFound проверяет, относится ли ошибка к отсутствующей записи.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation проверяет, является ли ошибка нарушением бизнес-правил (а не сбоем инфраструктуры).
func IsValidation(err error) bool {
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrInvalidPaymentMethod),
		errors.Is(err, ErrEmptyCart),
		errors.Is(err, ErrStoreClosed),
		errors.Is(err, ErrInvalidTheme),
		errors.Is(err, ErrContactRequired),
		errors.Is(err, ErrProductNameRequired),
		errors.Is(err, ErrProductPriceNegative),
		errors.Is(err, ErrCategoryNameRequired),
		errors.Is(err, ErrSessionRequired),
		errors.Is(err, ErrInvalidCategoryOperation):
		return true
	default:
		return false
	}
}
