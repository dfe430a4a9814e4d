package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
)

const (
	RoleOwner    = "owner"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

type EnforceRequest struct {
	Role     string
	Resource string
	Action   string
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

// rolePolicies is the static permission table. Roles inherit downward:
// owner > manager > employee.
var rolePolicies = [][3]string{
	{RoleEmployee, "attendance", "read"},
	{RoleEmployee, "attendance", "write"},
	{RoleEmployee, "leave", "read"},
	{RoleEmployee, "leave", "write"},
	{RoleEmployee, "liability", "read"},

	{RoleManager, "employee", "read"},
	{RoleManager, "employee", "write"},
	{RoleManager, "liability", "write"},
	{RoleManager, "salary", "read"},
	{RoleManager, "salary", "write"},
	{RoleManager, "leave", "approve"},
	{RoleManager, "report", "read"},

	{RoleOwner, "liability", "approve"},
	{RoleOwner, "settings", "read"},
	{RoleOwner, "settings", "write"},
	{RoleOwner, "audit", "read"},
}

var roleInheritance = [][2]string{
	{RoleOwner, RoleManager},
	{RoleManager, RoleEmployee},
}

func NewService(enforcer *casbin.Enforcer) (Service, error) {
	for _, g := range roleInheritance {
		if _, err := enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}
	for _, p := range rolePolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}
