package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"crmdesk/internal/core/apperror"
	"crmdesk/internal/core/id"
)

// passthroughTx runs the function directly, no transaction.
type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeUserRepo is an in-memory user store.
type fakeUserRepo struct {
	byEmail map[string]*User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID id.ID) (*User, error) {
	for _, u := range r.byEmail {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("user", userID.String())
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, apperror.NewNotFound("user", email)
	}
	return u, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) Exists(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func newTestService(repo *fakeUserRepo) *Service {
	jwtService := NewJWTService(DefaultJWTConfig("test-secret"))
	return NewService(repo, passthroughTx{}, jwtService, DefaultServiceConfig())
}

func TestService_Register(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterRequest{
		Email:    "sam@example.com",
		Password: "long-enough-password",
		Name:     "Sam",
	})
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", user.Email)
	assert.NotEqual(t, "long-enough-password", user.PasswordHash, "password must be hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("long-enough-password")))

	// duplicate email rejected
	_, err = svc.Register(ctx, RegisterRequest{Email: "sam@example.com", Password: "another-password"})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
}

func TestService_Register_ShortPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), RegisterRequest{Email: "sam@example.com", Password: "short"})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestService_LoginAndValidate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterRequest{
		Email:    "sam@example.com",
		Password: "long-enough-password",
		Name:     "Sam",
	})
	require.NoError(t, err)

	token, loggedIn, err := svc.Login(ctx, Credentials{Email: "sam@example.com", Password: "long-enough-password"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotNil(t, loggedIn.LastLoginAt)

	// the issued token round-trips into the same session
	jwtService := NewJWTService(DefaultJWTConfig("test-secret"))
	sess, err := jwtService.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), sess.UserID)
	assert.Equal(t, "sam@example.com", sess.Email)
	assert.Equal(t, "Sam", sess.Name)
}

func TestService_Login_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "sam@example.com", Password: "long-enough-password"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, Credentials{Email: "sam@example.com", Password: "wrong-password"})
	require.Error(t, err)
	assert.True(t, apperror.IsUnauthorized(err))
	assert.Equal(t, 1, repo.byEmail["sam@example.com"].FailedLoginAttempts)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, _, err := svc.Login(context.Background(), Credentials{Email: "who@example.com", Password: "whatever"})
	require.Error(t, err)
	assert.True(t, apperror.IsUnauthorized(err), "unknown email reads the same as a bad password")
}

func TestService_Login_LockoutAfterRepeatedFailures(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "sam@example.com", Password: "long-enough-password"})
	require.NoError(t, err)

	for i := 0; i < DefaultServiceConfig().MaxLoginAttempts; i++ {
		_, _, err = svc.Login(ctx, Credentials{Email: "sam@example.com", Password: "wrong-password"})
		require.Error(t, err)
	}

	user := repo.byEmail["sam@example.com"]
	assert.True(t, user.IsLocked())

	// even the right password is rejected while locked
	_, _, err = svc.Login(ctx, Credentials{Email: "sam@example.com", Password: "long-enough-password"})
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedAndForeignTokens(t *testing.T) {
	jwtService := NewJWTService(DefaultJWTConfig("test-secret"))

	token, _, err := jwtService.GenerateAccessToken(id.New().String(), "sam@example.com", "Sam")
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token + "x")
	assert.Error(t, err)

	other := NewJWTService(DefaultJWTConfig("different-secret"))
	_, err = other.ValidateToken(token)
	assert.Error(t, err)

	_, err = jwtService.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestUser_Lockout(t *testing.T) {
	u := NewUser("sam@example.com", "hash", "Sam")
	require.NoError(t, u.CanLogin())

	for i := 0; i < 5; i++ {
		u.RecordFailedLogin(5, 15*time.Minute)
	}
	assert.True(t, u.IsLocked())
	assert.Error(t, u.CanLogin())

	u.RecordSuccessfulLogin()
	assert.False(t, u.IsLocked())
	assert.Zero(t, u.FailedLoginAttempts)
}
