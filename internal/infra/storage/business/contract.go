package business

import "github.com/DennizCann/RandevuApp-sub000/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
