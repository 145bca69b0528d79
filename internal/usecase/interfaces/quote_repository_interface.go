package interfaces

import "taskloop/internal/domain/entities"

type IQuoteRepository interface {
	IRepository[entities.Quote]
}
