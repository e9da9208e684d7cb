package converter

import (
	"github.com/Swastik2002/TrustMed/internal/delivery/dto"
	"github.com/Swastik2002/TrustMed/internal/domain/entity"
)

// AuditLogToResponse converts an audit log entity to its response DTO.
func AuditLogToResponse(log *entity.AuditLog) dto.AuditLogResponse {
	response := dto.AuditLogResponse{
		ID:        log.ID,
		UserID:    log.UserID,
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
	if log.User != nil {
		response.UserName = log.User.Name
	}
	return response
}

// AuditLogsToListResponse converts a slice of audit log entities to a list
// response.
func AuditLogsToListResponse(logs []entity.AuditLog) dto.AuditLogListResponse {
	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, AuditLogToResponse(&logs[i]))
	}
	return dto.AuditLogListResponse{
		Logs:  responses,
		Total: len(responses),
	}
}
