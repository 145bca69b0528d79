package interfaces

import "taskloop/internal/domain/entities"

type IJobRepository interface {
	IRepository[entities.Job]
}
