package block

import "github.com/m04kA/salon-booking/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
