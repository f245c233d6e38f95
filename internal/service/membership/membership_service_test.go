package membership_test

import (
	"context"
	"errors"
	"testing"

	"growth-tracker/internal/models"
	repo "growth-tracker/internal/repository"
	"growth-tracker/internal/service/membership"
	"growth-tracker/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTeamMembershipService_Create_Success(t *testing.T) {
	ctx := context.Background()
	managerID := "mgr-1"
	employeeID := "emp-1"

	membershipProv := mocks.NewMembershipProvider(t)
	userGetter := mocks.NewUserGetter(t)
	trm := &mocks.MockManager{}
	trm.Test(t)
	t.Cleanup(func() { trm.AssertExpectations(t) })

	manager := &models.User{ID: managerID, Role: models.RoleManager}
	employee := &models.User{ID: employeeID, Role: models.RoleEmployee}

	userGetter.On("GetById", ctx, managerID).Return(manager, nil).Once()
	userGetter.On("GetById", ctx, employeeID).Return(employee, nil).Once()
	membershipProv.On("Get", ctx, managerID, employeeID).
		Return((*models.TeamMembership)(nil), repo.ErrNotFound).Once()
	membershipProv.On("GetByEmployee", ctx, managerID).
		Return([]*models.TeamMembership{}, nil).Once()
	membershipProv.On("Create", ctx, mock.AnythingOfType("*models.TeamMembership")).
		Return("mem-1", nil).Once()

	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).Return(nil).Once()

	svc := membership.NewTeamMembershipService(trm, membershipProv, userGetter)
	resp, err := svc.Create(ctx, managerID, employeeID)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "mem-1", resp.MembershipID)
	assert.Equal(t, managerID, resp.ManagerID)
	assert.Equal(t, employeeID, resp.EmployeeID)
}

func TestTeamMembershipService_Create_SelfManagement(t *testing.T) {
	ctx := context.Background()
	userID := "user-1"

	membershipProv := mocks.NewMembershipProvider(t)
	userGetter := mocks.NewUserGetter(t)
	trm := &mocks.MockManager{}
	trm.Test(t)
	t.Cleanup(func() { trm.AssertExpectations(t) })

	user := &models.User{ID: userID, Role: models.RoleManager}
	userGetter.On("GetById", ctx, userID).Return(user, nil).Twice()

	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), repo.ErrSelfManagement)
		}).Return(repo.ErrSelfManagement).Once()

	svc := membership.NewTeamMembershipService(trm, membershipProv, userGetter)
	resp, err := svc.Create(ctx, userID, userID)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrSelfManagement)
	membershipProv.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTeamMembershipService_Create_InsufficientRole(t *testing.T) {
	ctx := context.Background()
	managerID := "emp-2"
	employeeID := "emp-3"

	membershipProv := mocks.NewMembershipProvider(t)
	userGetter := mocks.NewUserGetter(t)
	trm := &mocks.MockManager{}
	trm.Test(t)
	t.Cleanup(func() { trm.AssertExpectations(t) })

	// an Employee cannot own a membership edge
	userGetter.On("GetById", ctx, managerID).
		Return(&models.User{ID: managerID, Role: models.RoleEmployee}, nil).Once()
	userGetter.On("GetById", ctx, employeeID).
		Return(&models.User{ID: employeeID, Role: models.RoleEmployee}, nil).Once()

	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), repo.ErrInsufficientRole)
		}).Return(repo.ErrInsufficientRole).Once()

	svc := membership.NewTeamMembershipService(trm, membershipProv, userGetter)
	resp, err := svc.Create(ctx, managerID, employeeID)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrInsufficientRole)
	membershipProv.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTeamMembershipService_Create_Duplicate(t *testing.T) {
	ctx := context.Background()
	managerID := "mgr-1"
	employeeID := "emp-1"

	membershipProv := mocks.NewMembershipProvider(t)
	userGetter := mocks.NewUserGetter(t)
	trm := &mocks.MockManager{}
	trm.Test(t)
	t.Cleanup(func() { trm.AssertExpectations(t) })

	userGetter.On("GetById", ctx, managerID).
		Return(&models.User{ID: managerID, Role: models.RoleManager}, nil).Once()
	userGetter.On("GetById", ctx, employeeID).
		Return(&models.User{ID: employeeID, Role: models.RoleEmployee}, nil).Once()
	membershipProv.On("Get", ctx, managerID, employeeID).
		Return(&models.TeamMembership{ID: "mem-1", ManagerID: managerID, EmployeeID: employeeID}, nil).Once()

	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), repo.ErrMembershipExists)
		}).Return(repo.ErrMembershipExists).Once()

	svc := membership.NewTeamMembershipService(trm, membershipProv, userGetter)
	resp, err := svc.Create(ctx, managerID, employeeID)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrMembershipExists)
	membershipProv.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTeamMembershipService_Create_ManagerNotFound(t *testing.T) {
	ctx := context.Background()

	membershipProv := mocks.NewMembershipProvider(t)
	userGetter := mocks.NewUserGetter(t)
	trm := &mocks.MockManager{}
	trm.Test(t)
	t.Cleanup(func() { trm.AssertExpectations(t) })

	userGetter.On("GetById", ctx, "ghost").
		Return((*models.User)(nil), repo.ErrNotFound).Once()

	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), repo.ErrNotFound)
		}).Return(repo.ErrNotFound).Once()

	svc := membership.NewTeamMembershipService(trm, membershipProv, userGetter)
	resp, err := svc.Create(ctx, "ghost", "emp-1")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

// A manages nobody yet, but B already manages A. Adding A->B would make B
// transitively their own manager.
func TestTeamMembershipService_Create_CycleRejected_DirectInverse(t *testing.T) {
	ctx := context.Background()
	managerID := "user-a"
	employeeID := "user-b"

	membershipProv := mocks.NewMembershipProvider(t)
	userGetter := mocks.NewUserGetter(t)
	trm := &mocks.MockManager{}
	trm.Test(t)
	t.Cleanup(func() { trm.AssertExpectations(t) })

	userGetter.On("GetById", ctx, managerID).
		Return(&models.User{ID: managerID, Role: models.RoleManager}, nil).Once()
	userGetter.On("GetById", ctx, employeeID).
		Return(&models.User{ID: employeeID, Role: models.RoleManager}, nil).Once()
	membershipProv.On("Get", ctx, managerID, employeeID).
		Return((*models.TeamMembership)(nil), repo.ErrNotFound).Once()
	membershipProv.On("GetByEmployee", ctx, managerID).
		Return([]*models.TeamMembership{
			{ID: "mem-ba", ManagerID: employeeID, EmployeeID: managerID},
		}, nil).Once()

	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), repo.ErrCircularReporting)
		}).Return(repo.ErrCircularReporting).Once()

	svc := membership.NewTeamMembershipService(trm, membershipProv, userGetter)
	resp, err := svc.Create(ctx, managerID, employeeID)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrCircularReporting)
	membershipProv.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Existing chain: C manages B, B manages A. Proposing A->C closes the loop
// two hops up, so the walk has to follow edges transitively to find it.
func TestTeamMembershipService_Create_CycleRejected_TransitiveChain(t *testing.T) {
	ctx := context.Background()
	a, b, c := "user-a", "user-b", "user-c"

	membershipProv := mocks.NewMembershipProvider(t)
	userGetter := mocks.NewUserGetter(t)
	trm := &mocks.MockManager{}
	trm.Test(t)
	t.Cleanup(func() { trm.AssertExpectations(t) })

	userGetter.On("GetById", ctx, a).
		Return(&models.User{ID: a, Role: models.RoleManager}, nil).Once()
	userGetter.On("GetById", ctx, c).
		Return(&models.User{ID: c, Role: models.RoleManager}, nil).Once()
	membershipProv.On("Get", ctx, a, c).
		Return((*models.TeamMembership)(nil), repo.ErrNotFound).Once()
	membershipProv.On("GetByEmployee", ctx, a).
		Return([]*models.TeamMembership{
			{ID: "mem-ba", ManagerID: b, EmployeeID: a},
		}, nil).Once()
	membershipProv.On("GetByEmployee", ctx, b).
		Return([]*models.TeamMembership{
			{ID: "mem-cb", ManagerID: c, EmployeeID: b},
		}, nil).Once()

	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), repo.ErrCircularReporting)
		}).Return(repo.ErrCircularReporting).Once()

	svc := membership.NewTeamMembershipService(trm, membershipProv, userGetter)
	resp, err := svc.Create(ctx, a, c)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrCircularReporting)
}

// Same chain (C manages B, B manages A), but a brand-new top manager N over C
// is fine: nothing above N points back down.
func TestTeamMembershipService_Create_NewTopManagerAllowed(t *testing.T) {
	ctx := context.Background()
	n, c := "user-n", "user-c"

	membershipProv := mocks.NewMembershipProvider(t)
	userGetter := mocks.NewUserGetter(t)
	trm := &mocks.MockManager{}
	trm.Test(t)
	t.Cleanup(func() { trm.AssertExpectations(t) })

	userGetter.On("GetById", ctx, n).
		Return(&models.User{ID: n, Role: models.RoleManager}, nil).Once()
	userGetter.On("GetById", ctx, c).
		Return(&models.User{ID: c, Role: models.RoleManager}, nil).Once()
	membershipProv.On("Get", ctx, n, c).
		Return((*models.TeamMembership)(nil), repo.ErrNotFound).Once()
	membershipProv.On("GetByEmployee", ctx, n).
		Return([]*models.TeamMembership{}, nil).Once()
	membershipProv.On("Create", ctx, mock.AnythingOfType("*models.TeamMembership")).
		Return("mem-nc", nil).Once()

	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).Return(nil).Once()

	svc := membership.NewTeamMembershipService(trm, membershipProv, userGetter)
	resp, err := svc.Create(ctx, n, c)

	assert.NoError(t, err)
	assert.Equal(t, "mem-nc", resp.MembershipID)
}

// Diamond above the proposed manager: M reports to both X and Y, and both of
// them report to Z. Z must be expanded exactly once even though it is
// reachable twice, and the walk terminates without finding a cycle.
func TestTeamMembershipService_Create_DiamondVisitedOnce(t *testing.T) {
	ctx := context.Background()
	m, x, y, z, e := "user-m", "user-x", "user-y", "user-z", "user-e"

	membershipProv := mocks.NewMembershipProvider(t)
	userGetter := mocks.NewUserGetter(t)
	trm := &mocks.MockManager{}
	trm.Test(t)
	t.Cleanup(func() { trm.AssertExpectations(t) })

	userGetter.On("GetById", ctx, m).
		Return(&models.User{ID: m, Role: models.RoleManager}, nil).Once()
	userGetter.On("GetById", ctx, e).
		Return(&models.User{ID: e, Role: models.RoleEmployee}, nil).Once()
	membershipProv.On("Get", ctx, m, e).
		Return((*models.TeamMembership)(nil), repo.ErrNotFound).Once()
	membershipProv.On("GetByEmployee", ctx, m).
		Return([]*models.TeamMembership{
			{ID: "mem-xm", ManagerID: x, EmployeeID: m},
			{ID: "mem-ym", ManagerID: y, EmployeeID: m},
		}, nil).Once()
	membershipProv.On("GetByEmployee", ctx, x).
		Return([]*models.TeamMembership{
			{ID: "mem-zx", ManagerID: z, EmployeeID: x},
		}, nil).Once()
	membershipProv.On("GetByEmployee", ctx, y).
		Return([]*models.TeamMembership{
			{ID: "mem-zy", ManagerID: z, EmployeeID: y},
		}, nil).Once()
	membershipProv.On("GetByEmployee", ctx, z).
		Return([]*models.TeamMembership{}, nil).Once()
	membershipProv.On("Create", ctx, mock.AnythingOfType("*models.TeamMembership")).
		Return("mem-me", nil).Once()

	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).Return(nil).Once()

	svc := membership.NewTeamMembershipService(trm, membershipProv, userGetter)
	resp, err := svc.Create(ctx, m, e)

	assert.NoError(t, err)
	assert.Equal(t, "mem-me", resp.MembershipID)
	membershipProv.AssertNumberOfCalls(t, "GetByEmployee", 4)
}

func TestTeamMembershipService_Create_WalkError(t *testing.T) {
	ctx := context.Background()
	managerID := "mgr-1"
	employeeID := "emp-1"

	membershipProv := mocks.NewMembershipProvider(t)
	userGetter := mocks.NewUserGetter(t)
	trm := &mocks.MockManager{}
	trm.Test(t)
	t.Cleanup(func() { trm.AssertExpectations(t) })

	walkErr := errors.New("query failed")

	userGetter.On("GetById", ctx, managerID).
		Return(&models.User{ID: managerID, Role: models.RoleManager}, nil).Once()
	userGetter.On("GetById", ctx, employeeID).
		Return(&models.User{ID: employeeID, Role: models.RoleEmployee}, nil).Once()
	membershipProv.On("Get", ctx, managerID, employeeID).
		Return((*models.TeamMembership)(nil), repo.ErrNotFound).Once()
	membershipProv.On("GetByEmployee", ctx, managerID).
		Return(([]*models.TeamMembership)(nil), walkErr).Once()

	trm.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), walkErr)
		}).Return(walkErr).Once()

	svc := membership.NewTeamMembershipService(trm, membershipProv, userGetter)
	resp, err := svc.Create(ctx, managerID, employeeID)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, walkErr)
	membershipProv.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTeamMembershipService_GetByManager_Success(t *testing.T) {
	ctx := context.Background()
	managerID := "mgr-1"

	membershipProv := mocks.NewMembershipProvider(t)
	userGetter := mocks.NewUserGetter(t)
	trm := &mocks.MockManager{}

	userGetter.On("GetById", ctx, managerID).
		Return(&models.User{ID: managerID, Role: models.RoleManager}, nil).Once()
	membershipProv.On("GetByManager", ctx, managerID).
		Return([]*models.TeamMembership{
			{ID: "mem-1", ManagerID: managerID, EmployeeID: "emp-1"},
			{ID: "mem-2", ManagerID: managerID, EmployeeID: "emp-2"},
		}, nil).Once()

	svc := membership.NewTeamMembershipService(trm, membershipProv, userGetter)
	resp, err := svc.GetByManager(ctx, managerID)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "emp-1", resp[0].EmployeeID)
	assert.Equal(t, "emp-2", resp[1].EmployeeID)
}

func TestTeamMembershipService_GetByEmployee_UserNotFound(t *testing.T) {
	ctx := context.Background()

	membershipProv := mocks.NewMembershipProvider(t)
	userGetter := mocks.NewUserGetter(t)
	trm := &mocks.MockManager{}

	userGetter.On("GetById", ctx, "ghost").
		Return((*models.User)(nil), repo.ErrNotFound).Once()

	svc := membership.NewTeamMembershipService(trm, membershipProv, userGetter)
	resp, err := svc.GetByEmployee(ctx, "ghost")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrNotFound)
	membershipProv.AssertNotCalled(t, "GetByEmployee", mock.Anything, mock.Anything)
}
