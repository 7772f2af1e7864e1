package audit_logs

import (
	"github.com/tom-mcmillan/nwsl-api/internal/util/logger"
)

var auditLogRepository = &AuditLogRepository{}
var auditLogService = &AuditLogService{
	auditLogRepository,
	logger.GetLogger(),
}

func GetAuditLogService() *AuditLogService {
	return auditLogService
}
