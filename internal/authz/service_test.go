package authz

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	return svc
}

func TestEnforceRoleWithGrantedPolicy(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("auditor", "/admin/orders/:id", "GET"); err != nil {
		t.Fatalf("grant role policy failed: %v", err)
	}

	allow, err := svc.EnforceRole("auditor", "/api/v1/admin/orders/:id", "get")
	if err != nil {
		t.Fatalf("enforce allow failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected allow=true")
	}

	allow, err = svc.EnforceRole("auditor", "/api/v1/admin/orders/:id", "DELETE")
	if err != nil {
		t.Fatalf("enforce deny failed: %v", err)
	}
	if allow {
		t.Fatalf("expected allow=false")
	}

	if err := svc.RevokeRolePolicy("auditor", "/admin/orders/:id", "GET"); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	allow, err = svc.EnforceRole("auditor", "/admin/orders/:id", "GET")
	if err != nil {
		t.Fatalf("enforce after revoke failed: %v", err)
	}
	if allow {
		t.Fatalf("expected revoked policy to deny")
	}
}

func TestEnforceRoleEmptyRoleDenies(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	allow, err := svc.EnforceRole("", "/products", "GET")
	if err != nil {
		t.Fatalf("enforce failed: %v", err)
	}
	if allow {
		t.Fatalf("expected empty role denied")
	}
}

func TestNormalizeObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "/api/v1/admin/orders/:id", want: "/admin/orders/:id"},
		{in: "/admin/orders/:id", want: "/admin/orders/:id"},
		{in: "admin/orders", want: "/admin/orders"},
		{in: "/api/v1", want: "/"},
		{in: "", want: "/"},
	}
	for _, item := range cases {
		got := NormalizeObject(item.in)
		if got != item.want {
			t.Fatalf("normalize object failed, in=%q want=%q got=%q", item.in, item.want, got)
		}
	}
}

func TestBootstrapBuiltinRolesMatrix(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}
	// 重复初始化保持幂等
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}

	cases := []struct {
		role   string
		object string
		action string
		want   bool
	}{
		{"customer", "/api/v1/cart/items", "POST", true},
		{"customer", "/api/v1/orders/checkout", "POST", true},
		{"customer", "/api/v1/products/:id", "GET", true},
		{"customer", "/api/v1/payments/confirm/:order_id", "PUT", true},
		{"customer", "/api/v1/admin/orders", "GET", false},
		{"customer", "/api/v1/delivery/orders", "GET", false},
		{"delivery", "/api/v1/cart/items", "POST", false},
		{"delivery", "/api/v1/delivery/orders", "GET", true},
		{"delivery", "/api/v1/delivery/deliveries/:id/status", "PUT", true},
		{"delivery", "/api/v1/me/profile", "GET", true},
		{"admin", "/api/v1/admin/orders/:id/status", "PUT", true},
		{"admin", "/api/v1/admin/analytics/sales", "GET", true},
		{"admin", "/api/v1/payments/confirm/:order_id", "PUT", true},
		{"admin", "/api/v1/cart/items", "POST", false},
	}
	for _, tc := range cases {
		allow, err := svc.EnforceRole(tc.role, tc.object, tc.action)
		if err != nil {
			t.Fatalf("enforce %s %s %s failed: %v", tc.role, tc.action, tc.object, err)
		}
		if allow != tc.want {
			t.Fatalf("enforce %s %s %s: want %v got %v", tc.role, tc.action, tc.object, tc.want, allow)
		}
	}

	policies, err := svc.GetRolePolicies("delivery")
	if err != nil {
		t.Fatalf("get role policies failed: %v", err)
	}
	found := false
	for _, policy := range policies {
		if policy.Subject == "role:authenticated" && policy.Object == "/me/profile" && policy.Action == "GET" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected inherited profile policy, got %+v", policies)
	}
}

func TestNormalizeRole(t *testing.T) {
	cases := map[string]string{
		"Admin":          "role:admin",
		" role:customer": "role:customer",
		"Support Staff":  "role:support_staff",
	}
	for in, want := range cases {
		got, err := NormalizeRole(in)
		if err != nil || got != want {
			t.Fatalf("normalize role %q: want %q got %q (%v)", in, want, got, err)
		}
	}
	for _, in := range []string{"", "   ", "role:"} {
		if _, err := NormalizeRole(in); !errors.Is(err, ErrRoleRequired) {
			t.Fatalf("normalize role %q: expected ErrRoleRequired, got %v", in, err)
		}
	}
}

func TestGrantRolePolicyRequiresAction(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("auditor", "/admin/orders", " "); !errors.Is(err, ErrActionRequired) {
		t.Fatalf("expected ErrActionRequired, got %v", err)
	}
	var nilSvc *Service
	if err := nilSvc.ReloadPolicy(); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
