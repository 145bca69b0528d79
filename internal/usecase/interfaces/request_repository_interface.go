package interfaces

import "taskloop/internal/domain/entities"

type IRequestRepository interface {
	IRepository[entities.Request]
}
