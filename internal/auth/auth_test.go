package auth_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/eventhub-dev/eventhub/internal/auth"
)

func TestHashAndCheckPassword(t *testing.T) {
	c := qt.New(t)

	hash, err := auth.HashPassword("pw1")
	c.Assert(err, qt.IsNil)
	c.Assert(hash, qt.Not(qt.Equals), "pw1")

	c.Assert(auth.CheckPassword("pw1", hash), qt.IsTrue)
	c.Assert(auth.CheckPassword("pw2", hash), qt.IsFalse)
	c.Assert(auth.CheckPassword("pw1", "not-a-digest"), qt.IsFalse)
}

func TestJWTRoundTrip(t *testing.T) {
	c := qt.New(t)

	c.Assert(auth.InitJWTSecret("test-secret"), qt.IsNil)

	token, err := auth.GenerateJWT(42, "alice")
	c.Assert(err, qt.IsNil)

	parsed, err := auth.VerifyJWT(token)
	c.Assert(err, qt.IsNil)

	id, err := auth.UserIDFromToken(parsed)
	c.Assert(err, qt.IsNil)
	c.Assert(id, qt.Equals, uint(42))
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	c := qt.New(t)

	c.Assert(auth.InitJWTSecret("test-secret"), qt.IsNil)

	_, err := auth.VerifyJWT("not.a.token")
	c.Assert(err, qt.IsNotNil)

	_, err = auth.VerifyJWT("")
	c.Assert(err, qt.IsNotNil)
}

func TestInitJWTSecretRejectsEmpty(t *testing.T) {
	c := qt.New(t)
	c.Assert(auth.InitJWTSecret(""), qt.IsNotNil)
}
