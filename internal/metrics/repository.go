package metrics

import "time"

var repositoryOperations = newOperationVec("repository", "storage",
	[]float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30}, "backend", "operation")

// Repository records operations of one storage backend ("file", "clickhouse").
type Repository struct {
	backend string
}

func NewRepository(backend string) *Repository {
	return &Repository{backend: orUnknown(backend)}
}

func (m Repository) Observe(operation string, err error, started time.Time) {
	repositoryOperations.observe(err, started, m.backend, operation)
}
