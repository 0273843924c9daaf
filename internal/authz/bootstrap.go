package authz

import (
	"fmt"

	"github.com/shopfront/internal/constants"
)

// roleAuthenticated 已登录用户共享的基础角色，不直接分配给用户
const roleAuthenticated = "authenticated"

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

// BuiltinRoleSeeds 系统预置角色矩阵
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: roleAuthenticated,
			Policies: []Policy{
				{Object: "/me/profile", Action: "GET"},
				{Object: "/me/profile", Action: "PUT"},
				{Object: "/categories", Action: "GET"},
				{Object: "/products", Action: "GET"},
				{Object: "/products/search", Action: "GET"},
				{Object: "/products/:id", Action: "GET"},
				{Object: "/payments/confirm/:order_id", Action: "PUT"},
			},
		},
		{
			Role:     constants.RoleCustomer,
			Inherits: []string{roleAuthenticated},
			Policies: []Policy{
				{Object: "/cart", Action: "GET"},
				{Object: "/cart/items", Action: "POST"},
				{Object: "/cart/items/:product_id", Action: "DELETE"},
				{Object: "/orders/checkout", Action: "POST"},
				{Object: "/orders/history", Action: "GET"},
				{Object: "/orders/:id", Action: "GET"},
			},
		},
		{
			Role:     constants.RoleDelivery,
			Inherits: []string{roleAuthenticated},
			Policies: []Policy{
				{Object: "/delivery/orders", Action: "GET"},
				{Object: "/delivery/deliveries/:id/status", Action: "PUT"},
			},
		},
		{
			Role:     constants.RoleAdmin,
			Inherits: []string{roleAuthenticated},
			Policies: []Policy{
				{Object: "/admin/*", Action: "*"},
			},
		},
	}
}

// BootstrapBuiltinRoles 初始化预置角色与默认策略，重复执行不会产生重复策略
func (s *Service) BootstrapBuiltinRoles() error {
	if err := s.ready(); err != nil {
		return err
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := NormalizeRole(seed.Role)
		if err != nil {
			return err
		}
		for _, parent := range seed.Inherits {
			if err := s.InheritRole(role, parent); err != nil {
				return err
			}
		}
		for _, policy := range seed.Policies {
			if err := s.GrantRolePolicy(role, policy.Object, policy.Action); err != nil {
				return fmt.Errorf("seed role %s: %w", seed.Role, err)
			}
		}
	}
	return nil
}
