package schedule

import (
	"github.com/itpmanager/ITP-SchedulingService/pkg/dbmetrics"
)

type DBExecutor = dbmetrics.DBExecutor
