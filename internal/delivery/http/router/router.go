// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sippec/internal/delivery/http/middleware"
	"sippec/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	GroupHandler        *handler.GroupHandler
	CourseHandler       *handler.CourseHandler
	ClassroomHandler    *handler.ClassroomHandler
	ExamHandler         *handler.ExamHandler
	NotificationHandler *handler.NotificationHandler
	StaffHandler        *handler.StaffHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	guard := r.params.AuthMiddleware.Authenticate

	e.GET("/health", handler.HealthCheck)

	// Authentication
	e.POST("/login", r.params.AuthHandler.Login)
	e.POST("/auth/google", r.params.AuthHandler.GoogleLogin)

	// Accounts
	e.POST("/users", r.params.UserHandler.Register)
	e.GET("/users", r.params.UserHandler.List)
	e.PUT("/users/:id", r.params.UserHandler.Update)
	e.POST("/users/device-token", r.params.UserHandler.RegisterDeviceToken, guard)

	// Reference data
	e.POST("/groups", r.params.GroupHandler.Create)
	e.GET("/groups", r.params.GroupHandler.List)
	e.POST("/courses", r.params.CourseHandler.Create)
	e.GET("/courses", r.params.CourseHandler.List)
	e.POST("/classrooms", r.params.ClassroomHandler.Create)
	e.GET("/classrooms", r.params.ClassroomHandler.List)

	// Exam schedule; writes require an authenticated account
	e.POST("/exams", r.params.ExamHandler.Create, guard)
	e.GET("/exams", r.params.ExamHandler.List)
	e.PUT("/exams/:id", r.params.ExamHandler.Update, guard)

	// Notifications
	e.POST("/notifications", r.params.NotificationHandler.Send)
	e.GET("/notifications", r.params.NotificationHandler.List)

	// Teaching staff browse and live timetable lookups
	e.GET("/faculties", r.params.StaffHandler.Faculties)
	e.GET("/departments/:faculty", r.params.StaffHandler.Departments)
	e.GET("/teachers/:faculty/:department", r.params.StaffHandler.Teachers)
	e.GET("/teacher-courses/:id", r.params.StaffHandler.TeacherCourses)
}
