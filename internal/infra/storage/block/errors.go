package block

import "errors"

var (
	// ErrStylistNotFound возвращается, когда блокировка ссылается на несуществующего мастера
	ErrStylistNotFound = errors.New("block.repository: stylist not found")

	ErrBuildQuery = errors.New("block.repository: failed to build query")
	ErrExecQuery  = errors.New("block.repository: failed to execute query")
	ErrScanRow    = errors.New("block.repository: failed to scan row")
)
