package store_test

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/eventhub-dev/eventhub/db"
	"github.com/eventhub-dev/eventhub/internal/apperr"
	"github.com/eventhub-dev/eventhub/internal/models"
	"github.com/eventhub-dev/eventhub/internal/store"
	"github.com/eventhub-dev/eventhub/internal/testutil"
)

func newUser(t *testing.T, username string, role models.Role, approved bool) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		PasswordHash: "digest",
		Role:         role,
		IsApproved:   approved,
	}

	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}

	return user
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	c := qt.New(t)
	testutil.SetupDB(t)
	ctx := context.Background()

	newUser(t, "alice", models.RoleUser, false)

	err := store.CreateUser(ctx, &models.User{Username: "alice", PasswordHash: "other"})
	c.Assert(err, qt.ErrorIs, apperr.ErrInvalid)
}

func TestCreateUserUsernamesAreCaseSensitive(t *testing.T) {
	c := qt.New(t)
	testutil.SetupDB(t)
	ctx := context.Background()

	newUser(t, "alice", models.RoleUser, false)

	err := store.CreateUser(ctx, &models.User{Username: "Alice", PasswordHash: "digest"})
	c.Assert(err, qt.IsNil)

	got, err := store.GetUserByUsername(ctx, "Alice")
	c.Assert(err, qt.IsNil)
	c.Assert(got.Username, qt.Equals, "Alice")
}

func TestSetUserApproval(t *testing.T) {
	c := qt.New(t)
	testutil.SetupDB(t)
	ctx := context.Background()

	user := newUser(t, "alice", models.RoleUser, false)

	updated, err := store.SetUserApproval(ctx, user.ID, true)
	c.Assert(err, qt.IsNil)
	c.Assert(updated.IsApproved, qt.IsTrue)

	got, err := store.GetUser(ctx, user.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(got.IsApproved, qt.IsTrue)

	_, err = store.SetUserApproval(ctx, 9999, true)
	c.Assert(err, qt.ErrorIs, apperr.ErrNotFound)
}

func TestUpdateUserRole(t *testing.T) {
	c := qt.New(t)
	testutil.SetupDB(t)
	ctx := context.Background()

	user := newUser(t, "bob", models.RoleUser, true)

	updated, err := store.UpdateUserRole(ctx, user.ID, models.RoleCoAdmin)
	c.Assert(err, qt.IsNil)
	c.Assert(updated.Role, qt.Equals, models.RoleCoAdmin)

	_, err = store.UpdateUserRole(ctx, 9999, models.RoleCoAdmin)
	c.Assert(err, qt.ErrorIs, apperr.ErrNotFound)
}

func TestUpdateUserRoleProtectsSuperAdmin(t *testing.T) {
	c := qt.New(t)
	testutil.SetupDB(t)
	ctx := context.Background()

	root := newUser(t, "root", models.RoleSuperAdmin, true)

	_, err := store.UpdateUserRole(ctx, root.ID, models.RoleUser)
	c.Assert(err, qt.ErrorIs, apperr.ErrForbidden)

	got, err := store.GetUser(ctx, root.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(got.Role, qt.Equals, models.RoleSuperAdmin)
}

func TestDeleteUserProtectsSuperAdmin(t *testing.T) {
	c := qt.New(t)
	testutil.SetupDB(t)
	ctx := context.Background()

	root := newUser(t, "root", models.RoleSuperAdmin, true)

	err := store.DeleteUser(ctx, root.ID)
	c.Assert(err, qt.ErrorIs, apperr.ErrForbidden)

	err = store.DeleteUser(ctx, 9999)
	c.Assert(err, qt.ErrorIs, apperr.ErrNotFound)
}

func TestDeleteUserCascadesContributions(t *testing.T) {
	c := qt.New(t)
	testutil.SetupDB(t)
	ctx := context.Background()

	admin := newUser(t, "admin", models.RoleAdmin, true)
	fan := newUser(t, "fan", models.RoleUser, true)

	event := &models.Event{Title: "Launch", Description: "d", Location: "HQ", CreatedByID: admin.ID}
	c.Assert(store.CreateEvent(ctx, event), qt.IsNil)

	media := &models.Media{EventID: event.ID, UploadedByID: admin.ID, URL: "/uploads/a.png", Type: "image", Filename: "a.png"}
	c.Assert(store.CreateMedia(ctx, media), qt.IsNil)

	_, created, err := store.ToggleReaction(ctx, media.ID, fan.ID, "like")
	c.Assert(err, qt.IsNil)
	c.Assert(created, qt.IsTrue)

	// Deleting the admin removes their event, its media, and the fan's
	// reaction on that media.
	c.Assert(store.DeleteUser(ctx, admin.ID), qt.IsNil)

	_, err = store.GetUser(ctx, admin.ID)
	c.Assert(err, qt.ErrorIs, apperr.ErrNotFound)

	var events, mediaRows, reactions int64
	c.Assert(db.DB.Model(&models.Event{}).Count(&events).Error, qt.IsNil)
	c.Assert(db.DB.Model(&models.Media{}).Count(&mediaRows).Error, qt.IsNil)
	c.Assert(db.DB.Model(&models.Reaction{}).Count(&reactions).Error, qt.IsNil)
	c.Assert(events, qt.Equals, int64(0))
	c.Assert(mediaRows, qt.Equals, int64(0))
	c.Assert(reactions, qt.Equals, int64(0))

	// The fan is untouched.
	_, err = store.GetUser(ctx, fan.ID)
	c.Assert(err, qt.IsNil)
}
