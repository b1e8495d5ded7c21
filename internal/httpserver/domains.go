package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	extractHTTP "mail-task-planner/internal/extract/delivery/http"
	extractUC "mail-task-planner/internal/extract/usecase"
	"mail-task-planner/internal/middleware"
	scheduleHTTP "mail-task-planner/internal/schedule/delivery/http"
	scheduleUC "mail-task-planner/internal/schedule/usecase"
	"mail-task-planner/internal/task"
	taskHTTP "mail-task-planner/internal/task/delivery/http"
	taskRepoMemory "mail-task-planner/internal/task/repository/memory"
	taskRepoPostgre "mail-task-planner/internal/task/repository/postgre"
	taskUC "mail-task-planner/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.postgresDB, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) (task.UseCase, error) {
	repo := taskRepoMemory.New()
	if srv.postgresDB != nil {
		repo = taskRepoPostgre.New(srv.postgresDB, srv.l)
		srv.l.Infof(ctx, "Task domain: postgres store")
	} else {
		srv.l.Infof(ctx, "Task domain: in-memory store")
	}

	uc := taskUC.New(srv.l, repo, srv.normalizer)

	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return uc, nil
}

// setupExtractDomain initializes the extract domain and registers its routes.
func (srv *HTTPServer) setupExtractDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := extractUC.New(srv.l, srv.normalizer, srv.cfg.Extract.CacheSize)

	h := extractHTTP.New(srv.l, uc)
	extractHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Extract domain registered")
	return nil
}

// setupScheduleDomain initializes the schedule domain and registers its routes.
func (srv *HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, tasks task.UseCase) error {
	var calendar scheduleUC.CalendarClient
	if srv.calendar != nil {
		calendar = srv.calendar
		srv.l.Infof(ctx, "Schedule domain: calendar export enabled")
	} else {
		srv.l.Infof(ctx, "Schedule domain: calendar export disabled")
	}

	uc := scheduleUC.New(srv.l, srv.normalizer, calendar, srv.cfg.Scheduler.Timezone, srv.cfg.Scheduler.WorkHoursPerDay)

	h := scheduleHTTP.New(srv.l, uc, tasks, srv.normalizer)
	scheduleHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Schedule domain registered")
	return nil
}
