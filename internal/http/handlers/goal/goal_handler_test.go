package goal_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"growth-tracker/internal/http/api"
	"growth-tracker/internal/http/handlers"
	"growth-tracker/internal/http/handlers/goal"
	"growth-tracker/internal/http/handlers/mocks"
	repo "growth-tracker/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Create

func TestGoalHandler_Create_Success(t *testing.T) {
	mockService := mocks.NewMockGoalService(t)
	h := goal.NewGoalHandler(handlers.NewLogger(), mockService)

	reqBody := goal.CreateRequest{
		EmployeeID: "emp-1",
		Title:      "Learn Go",
	}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/goals/create", bytes.NewReader(body))
	w := httptest.NewRecorder()

	expected := &api.GoalSchema{
		GoalID:     "goal-1",
		EmployeeID: "emp-1",
		Title:      "Learn Go",
		Status:     "Draft",
	}
	mockService.On("Create", mock.Anything, "emp-1", (*string)(nil), "Learn Go", (*string)(nil)).
		Return(expected, nil)

	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp api.GoalResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, *expected, resp.Goal)
}

func TestGoalHandler_Create_ValidationError(t *testing.T) {
	mockService := mocks.NewMockGoalService(t)
	h := goal.NewGoalHandler(handlers.NewLogger(), mockService)

	reqBody := goal.CreateRequest{
		EmployeeID: "emp-1",
		Title:      "", // trigger validation error
	}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/goals/create", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

func TestGoalHandler_Create_BadJSON(t *testing.T) {
	mockService := mocks.NewMockGoalService(t)
	h := goal.NewGoalHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/goals/create", bytes.NewReader([]byte("{invalid json")))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

// Approve

func TestGoalHandler_Approve_Success(t *testing.T) {
	mockService := mocks.NewMockGoalService(t)
	h := goal.NewGoalHandler(handlers.NewLogger(), mockService)

	reqBody := goal.ApproveRequest{GoalID: "goal-1", ManagerID: "mgr-1"}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/goals/approve", bytes.NewReader(body))
	w := httptest.NewRecorder()

	managerID := "mgr-1"
	expected := &api.GoalSchema{
		GoalID:     "goal-1",
		EmployeeID: "emp-1",
		ManagerID:  &managerID,
		Status:     "Approved",
	}
	mockService.On("Approve", mock.Anything, "goal-1", "mgr-1").Return(expected, nil)

	h.Approve(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.GoalResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, "Approved", resp.Goal.Status)
}

func TestGoalHandler_Approve_NotPending(t *testing.T) {
	mockService := mocks.NewMockGoalService(t)
	h := goal.NewGoalHandler(handlers.NewLogger(), mockService)

	reqBody := goal.ApproveRequest{GoalID: "goal-1", ManagerID: "mgr-1"}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/goals/approve", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Approve", mock.Anything, "goal-1", "mgr-1").
		Return(nil, repo.ErrGoalNotPending)

	h.Approve(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeInvalidState, resp.Error.Code)
}

func TestGoalHandler_Approve_InsufficientRole(t *testing.T) {
	mockService := mocks.NewMockGoalService(t)
	h := goal.NewGoalHandler(handlers.NewLogger(), mockService)

	reqBody := goal.ApproveRequest{GoalID: "goal-1", ManagerID: "emp-2"}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/goals/approve", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Approve", mock.Anything, "goal-1", "emp-2").
		Return(nil, repo.ErrInsufficientRole)

	h.Approve(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeInsufficientRole, resp.Error.Code)
}

func TestGoalHandler_Approve_NoPermission(t *testing.T) {
	mockService := mocks.NewMockGoalService(t)
	h := goal.NewGoalHandler(handlers.NewLogger(), mockService)

	reqBody := goal.ApproveRequest{GoalID: "goal-1", ManagerID: "mgr-2"}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/goals/approve", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Approve", mock.Anything, "goal-1", "mgr-2").
		Return(nil, repo.ErrNoPermission)

	h.Approve(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNoPermission, resp.Error.Code)
}

func TestGoalHandler_Approve_NotFound(t *testing.T) {
	mockService := mocks.NewMockGoalService(t)
	h := goal.NewGoalHandler(handlers.NewLogger(), mockService)

	reqBody := goal.ApproveRequest{GoalID: "ghost", ManagerID: "mgr-1"}
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/goals/approve", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Approve", mock.Anything, "ghost", "mgr-1").
		Return(nil, repo.ErrNotFound)

	h.Approve(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

func TestGoalHandler_Approve_MissingFields(t *testing.T) {
	mockService := mocks.NewMockGoalService(t)
	h := goal.NewGoalHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(goal.ApproveRequest{GoalID: "goal-1"})
	req := httptest.NewRequest(http.MethodPost, "/goals/approve", bytes.NewReader(body))
	w := httptest.NewRecorder()

	h.Approve(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

// Submit

func TestGoalHandler_Submit_Success(t *testing.T) {
	mockService := mocks.NewMockGoalService(t)
	h := goal.NewGoalHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(goal.SubmitRequest{GoalID: "goal-1"})
	req := httptest.NewRequest(http.MethodPost, "/goals/submit", bytes.NewReader(body))
	w := httptest.NewRecorder()

	expected := &api.GoalSchema{GoalID: "goal-1", EmployeeID: "emp-1", Status: "Pending_Approval"}
	mockService.On("Submit", mock.Anything, "goal-1").Return(expected, nil)

	h.Submit(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.GoalResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, "Pending_Approval", resp.Goal.Status)
}

func TestGoalHandler_Submit_NotDraft(t *testing.T) {
	mockService := mocks.NewMockGoalService(t)
	h := goal.NewGoalHandler(handlers.NewLogger(), mockService)

	body, _ := json.Marshal(goal.SubmitRequest{GoalID: "goal-1"})
	req := httptest.NewRequest(http.MethodPost, "/goals/submit", bytes.NewReader(body))
	w := httptest.NewRecorder()

	mockService.On("Submit", mock.Anything, "goal-1").
		Return(nil, repo.ErrInvalidTransition)

	h.Submit(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeInvalidState, resp.Error.Code)
}

// Get

func TestGoalHandler_Get_Success(t *testing.T) {
	mockService := mocks.NewMockGoalService(t)
	h := goal.NewGoalHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/goals/get?goal_id=goal-1", nil)
	w := httptest.NewRecorder()

	expected := &api.GoalSchema{GoalID: "goal-1", EmployeeID: "emp-1", Status: "Draft"}
	mockService.On("Get", mock.Anything, "goal-1").Return(expected, nil)

	h.Get(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.GoalResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, *expected, resp.Goal)
}

func TestGoalHandler_Get_MissingGoalID(t *testing.T) {
	mockService := mocks.NewMockGoalService(t)
	h := goal.NewGoalHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/goals/get", nil)
	w := httptest.NewRecorder()

	h.Get(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

func TestGoalHandler_Get_InternalError(t *testing.T) {
	mockService := mocks.NewMockGoalService(t)
	h := goal.NewGoalHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/goals/get?goal_id=goal-1", nil)
	w := httptest.NewRecorder()

	mockService.On("Get", mock.Anything, "goal-1").Return(nil, errors.New("db error"))

	h.Get(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}

// GetByEmployee

func TestGoalHandler_GetByEmployee_Success(t *testing.T) {
	mockService := mocks.NewMockGoalService(t)
	h := goal.NewGoalHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/goals/byEmployee?employee_id=emp-1", nil)
	w := httptest.NewRecorder()

	expected := []api.GoalSchema{
		{GoalID: "goal-1", EmployeeID: "emp-1", Status: "Draft"},
		{GoalID: "goal-2", EmployeeID: "emp-1", Status: "Approved"},
	}
	mockService.On("GetByEmployee", mock.Anything, "emp-1").Return(expected, nil)

	h.GetByEmployee(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.GoalsResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.Equal(t, expected, resp.Goals)
}
