package common

// Keys under which the stores keep their state in the key-value repository.
const (
	AuthStoreKey  = "auth-store"
	TasksStoreKey = "tasks-store"
)
