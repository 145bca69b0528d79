package entities

import "time"

// Entity is implemented by every record a repository stores.
type Entity interface {
	EntityID() string
	Created() time.Time
}
