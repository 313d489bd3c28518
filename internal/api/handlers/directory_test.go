package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"orgbook-backend/internal/api/handlers"
	"orgbook-backend/internal/database/models"
	"orgbook-backend/internal/mocks"
	"orgbook-backend/internal/service"
	"orgbook-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newDirectoryRouter(t *testing.T) (*mocks.MockDirectoryServiceInterface, *testutils.HTTPTestSuite) {
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockDirectoryServiceInterface(ctrl)
	handler := handlers.NewDirectoryHandler(directory)
	health := handlers.NewHealthHandler(directory, "test")

	router := gin.New()
	router.GET("/directory", handler.GetDirectory)
	router.GET("/departments", handler.ListDepartments)
	router.DELETE("/departments/:name", handler.DeleteDepartment)
	router.GET("/managers", handler.ListManagers)
	router.GET("/organization", handler.GetOrganization)
	router.GET("/health", health.Health)
	router.GET("/health/ready", health.Ready)
	router.GET("/health/live", health.Live)
	return directory, testutils.SetupHTTPTest(router)
}

func TestDirectoryHandler_GetDirectory(t *testing.T) {
	directory, h := newDirectoryRouter(t)
	snap := &models.Snapshot{
		Employees: []models.Employee{
			{ID: "emp-1", Name: "Jane", Department: "Eng", ReportsTo: "Boss", Topics: []string{}, Teams: []string{}},
		},
		Topics: []models.Topic{},
		Teams:  []models.Team{},
	}
	directory.EXPECT().Snapshot().Return(snap)

	w := h.MakeRequest(http.MethodGet, "/directory", nil)

	var got handlers.DirectoryResponse
	testutils.AssertJSONResponse(t, w, http.StatusOK, &got)
	assert.Equal(t, snap.Employees, got.Employees)
	assert.Equal(t, []string{"Eng"}, got.Departments)
	assert.Equal(t, []string{"Boss"}, got.Managers)
}

func TestDirectoryHandler_Departments(t *testing.T) {
	directory, h := newDirectoryRouter(t)
	directory.EXPECT().Departments().Return([]string{"Eng", "Sales"})
	directory.EXPECT().Managers().Return([]string{"Boss"})
	directory.EXPECT().DeleteDepartment("Sales Ops").Return(3)

	w := h.MakeRequest(http.MethodGet, "/departments", nil)
	assert.JSONEq(t, `["Eng","Sales"]`, w.Body.String())

	w = h.MakeRequest(http.MethodGet, "/managers", nil)
	assert.JSONEq(t, `["Boss"]`, w.Body.String())

	w = h.MakeRequest(http.MethodDelete, "/departments/Sales%20Ops", nil)
	var got handlers.DeleteDepartmentResponse
	testutils.AssertJSONResponse(t, w, http.StatusOK, &got)
	assert.Equal(t, handlers.DeleteDepartmentResponse{Department: "Sales Ops", Removed: 3}, got)
}

func TestDirectoryHandler_Organization(t *testing.T) {
	directory, h := newDirectoryRouter(t)
	directory.EXPECT().OrganizedEmployees(service.EmployeeFilter{Manager: "Boss"}).Return([]service.DepartmentGroup{
		{Department: "Eng", Managers: []service.ManagerGroup{{Manager: "Boss", Employees: []models.Employee{}}}},
	})

	w := h.MakeRequest(http.MethodGet, "/organization?manager=Boss", nil)

	var got []service.DepartmentGroup
	testutils.AssertJSONResponse(t, w, http.StatusOK, &got)
	assert.Equal(t, "Eng", got[0].Department)
}

func TestHealthHandler(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		directory, h := newDirectoryRouter(t)
		directory.EXPECT().Ping().Return(nil).Times(2)
		directory.EXPECT().Snapshot().Return(&models.Snapshot{
			Employees: []models.Employee{{ID: "e1", Name: "Ann"}},
		})

		w := h.MakeRequest(http.MethodGet, "/health", nil)
		var got handlers.HealthResponse
		testutils.AssertJSONResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, "healthy", got.Status)
		assert.Equal(t, "test", got.Version)
		assert.Equal(t, "healthy", got.Services["storage"])
		assert.Equal(t, 1, got.Collections["employees"])
		assert.Equal(t, 0, got.Collections["teams"])

		w = h.MakeRequest(http.MethodGet, "/health/ready", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("storage down", func(t *testing.T) {
		directory, h := newDirectoryRouter(t)
		directory.EXPECT().Ping().Return(errors.New("disk gone")).Times(2)

		w := h.MakeRequest(http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "disk gone")

		w = h.MakeRequest(http.MethodGet, "/health/ready", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("live", func(t *testing.T) {
		_, h := newDirectoryRouter(t)
		w := h.MakeRequest(http.MethodGet, "/health/live", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
