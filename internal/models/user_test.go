package models_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/eventhub-dev/eventhub/internal/models"
)

func TestRoleRankOrdering(t *testing.T) {
	c := qt.New(t)

	c.Assert(models.RoleSuperAdmin.Rank() > models.RoleAdmin.Rank(), qt.IsTrue)
	c.Assert(models.RoleAdmin.Rank(), qt.Equals, models.RoleCoAdmin.Rank())
	c.Assert(models.RoleCoAdmin.Rank() > models.RoleUser.Rank(), qt.IsTrue)
	c.Assert(models.Role("intruder").Rank() < models.RoleUser.Rank(), qt.IsTrue)
}

func TestRoleIsAdminTier(t *testing.T) {
	c := qt.New(t)

	c.Assert(models.RoleSuperAdmin.IsAdminTier(), qt.IsTrue)
	c.Assert(models.RoleAdmin.IsAdminTier(), qt.IsTrue)
	c.Assert(models.RoleCoAdmin.IsAdminTier(), qt.IsTrue)
	c.Assert(models.RoleUser.IsAdminTier(), qt.IsFalse)
	c.Assert(models.Role("").IsAdminTier(), qt.IsFalse)
}

func TestRoleValid(t *testing.T) {
	c := qt.New(t)

	for _, role := range []models.Role{models.RoleUser, models.RoleCoAdmin, models.RoleAdmin, models.RoleSuperAdmin} {
		c.Assert(role.Valid(), qt.IsTrue, qt.Commentf("role %q", role))
	}
	c.Assert(models.Role("moderator").Valid(), qt.IsFalse)
}

func TestIsEffectivelyApproved(t *testing.T) {
	c := qt.New(t)

	// Admin-tier accounts never wait for approval.
	c.Assert(models.IsEffectivelyApproved(models.RoleAdmin, false), qt.IsTrue)
	c.Assert(models.IsEffectivelyApproved(models.RoleCoAdmin, false), qt.IsTrue)
	c.Assert(models.IsEffectivelyApproved(models.RoleSuperAdmin, false), qt.IsTrue)

	// Plain users need the flag.
	c.Assert(models.IsEffectivelyApproved(models.RoleUser, false), qt.IsFalse)
	c.Assert(models.IsEffectivelyApproved(models.RoleUser, true), qt.IsTrue)
}
