package appointment

import "github.com/DennizCann/RandevuApp-sub000/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics: подходит и *sql.DB, и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
