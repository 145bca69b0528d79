package interfaces

import "taskloop/internal/domain/entities"

type IClientRepository interface {
	IRepository[entities.Client]
}
