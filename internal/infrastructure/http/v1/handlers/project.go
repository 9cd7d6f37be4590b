package handlers

import (
	"crmdesk/internal/domain/records/project"
	"crmdesk/internal/infrastructure/http/v1/dto"
)

// ProjectHandler serves HTTP requests for project records.
type ProjectHandler = RecordHandler[*project.Project, dto.CreateProjectRequest, dto.UpdateProjectRequest]

// NewProjectHandler hides the generic handler setup from the router.
func NewProjectHandler(base *BaseHandler, svc *project.Service) *ProjectHandler {
	return NewRecordHandler(base, RecordHandlerConfig[*project.Project, dto.CreateProjectRequest, dto.UpdateProjectRequest]{
		Service:    svc.RecordService,
		EntityName: "project",
		MapCreateDTO: func(req dto.CreateProjectRequest) *project.Project {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateProjectRequest, existing *project.Project) *project.Project {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(p *project.Project) any {
			return dto.FromProject(p)
		},
	})
}
