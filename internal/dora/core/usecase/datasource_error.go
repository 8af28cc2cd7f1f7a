package usecase

import "fmt"

// DataSourceError marks a warehouse failure for one metric query. Metric
// computations fail closed: the handler maps this to a 5xx response, and
// nothing is retried at this layer.
type DataSourceError struct {
	Metric string
	Err    error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source failed for %s: %v", e.Metric, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}
