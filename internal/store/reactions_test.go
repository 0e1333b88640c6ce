package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/eventhub-dev/eventhub/internal/apperr"
	"github.com/eventhub-dev/eventhub/internal/models"
	"github.com/eventhub-dev/eventhub/internal/store"
	"github.com/eventhub-dev/eventhub/internal/testutil"
)

func newMedia(t *testing.T, eventID, uploaderID uint) *models.Media {
	t.Helper()

	media := &models.Media{
		EventID:      eventID,
		UploadedByID: uploaderID,
		URL:          "/uploads/pic.png",
		Type:         models.MediaTypeImage,
		Filename:     "pic.png",
	}

	if err := store.CreateMedia(context.Background(), media); err != nil {
		t.Fatalf("create media: %v", err)
	}

	return media
}

func TestToggleReactionCreatesThenRemoves(t *testing.T) {
	c := qt.New(t)
	testutil.SetupDB(t)
	ctx := context.Background()

	admin := newUser(t, "admin", models.RoleAdmin, true)
	fan := newUser(t, "fan", models.RoleUser, true)
	event := newEvent(t, "Party", time.Now(), admin.ID)
	media := newMedia(t, event.ID, admin.ID)

	reaction, created, err := store.ToggleReaction(ctx, media.ID, fan.ID, "like")
	c.Assert(err, qt.IsNil)
	c.Assert(created, qt.IsTrue)
	c.Assert(reaction.ReactionType, qt.Equals, "like")

	// The second toggle removes, no matter what tag it carries.
	reaction, created, err = store.ToggleReaction(ctx, media.ID, fan.ID, "fire")
	c.Assert(err, qt.IsNil)
	c.Assert(created, qt.IsFalse)
	c.Assert(reaction, qt.IsNil)

	reactions, err := store.ReactionsForMedia(ctx, media.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(reactions, qt.HasLen, 0)
}

func TestToggleReactionPerUser(t *testing.T) {
	c := qt.New(t)
	testutil.SetupDB(t)
	ctx := context.Background()

	admin := newUser(t, "admin", models.RoleAdmin, true)
	alice := newUser(t, "alice", models.RoleUser, true)
	bob := newUser(t, "bob", models.RoleUser, true)
	event := newEvent(t, "Party", time.Now(), admin.ID)
	media := newMedia(t, event.ID, admin.ID)

	_, created, err := store.ToggleReaction(ctx, media.ID, alice.ID, "like")
	c.Assert(err, qt.IsNil)
	c.Assert(created, qt.IsTrue)

	// A different user's toggle creates a second row instead of flipping
	// alice's.
	_, created, err = store.ToggleReaction(ctx, media.ID, bob.ID, "fire")
	c.Assert(err, qt.IsNil)
	c.Assert(created, qt.IsTrue)

	reactions, err := store.ReactionsForMedia(ctx, media.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(reactions, qt.HasLen, 2)
}

func TestToggleReactionMissingMedia(t *testing.T) {
	c := qt.New(t)
	testutil.SetupDB(t)
	ctx := context.Background()

	fan := newUser(t, "fan", models.RoleUser, true)

	_, _, err := store.ToggleReaction(ctx, 9999, fan.ID, "like")
	c.Assert(err, qt.ErrorIs, apperr.ErrInvalid)
}

func TestToggleReactionConcurrent(t *testing.T) {
	c := qt.New(t)
	testutil.SetupDB(t)
	ctx := context.Background()

	admin := newUser(t, "admin", models.RoleAdmin, true)
	fan := newUser(t, "fan", models.RoleUser, true)
	event := newEvent(t, "Party", time.Now(), admin.ID)
	media := newMedia(t, event.ID, admin.ID)

	const toggles = 8

	var wg sync.WaitGroup
	errs := make(chan error, toggles)

	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := store.ToggleReaction(ctx, media.ID, fan.ID, "like")
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		c.Assert(err, qt.IsNil)
	}

	// Whatever the interleaving, the pair never holds more than one row.
	reactions, err := store.ReactionsForMedia(ctx, media.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(len(reactions) <= 1, qt.IsTrue)
}

func TestDeleteMediaRemovesReactions(t *testing.T) {
	c := qt.New(t)
	testutil.SetupDB(t)
	ctx := context.Background()

	admin := newUser(t, "admin", models.RoleAdmin, true)
	fan := newUser(t, "fan", models.RoleUser, true)
	event := newEvent(t, "Party", time.Now(), admin.ID)
	media := newMedia(t, event.ID, admin.ID)

	_, _, err := store.ToggleReaction(ctx, media.ID, fan.ID, "like")
	c.Assert(err, qt.IsNil)

	c.Assert(store.DeleteMedia(ctx, media.ID), qt.IsNil)

	_, err = store.GetMedia(ctx, media.ID)
	c.Assert(err, qt.ErrorIs, apperr.ErrNotFound)

	reactions, err := store.ReactionsForMedia(ctx, media.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(reactions, qt.HasLen, 0)

	c.Assert(store.DeleteMedia(ctx, 9999), qt.ErrorIs, apperr.ErrNotFound)
}

func TestCreateMediaRequiresEvent(t *testing.T) {
	c := qt.New(t)
	testutil.SetupDB(t)
	ctx := context.Background()

	admin := newUser(t, "admin", models.RoleAdmin, true)

	err := store.CreateMedia(ctx, &models.Media{
		EventID:      9999,
		UploadedByID: admin.ID,
		URL:          "/uploads/x.png",
		Type:         models.MediaTypeImage,
		Filename:     "x.png",
	})
	c.Assert(err, qt.ErrorIs, apperr.ErrInvalid)
}
