package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/dmitrijs2005/tasktracker/internal/common"
	"github.com/dmitrijs2005/tasktracker/internal/logging"
	"github.com/dmitrijs2005/tasktracker/internal/server/auth"
	"github.com/dmitrijs2005/tasktracker/internal/server/config"
	"github.com/dmitrijs2005/tasktracker/internal/server/models"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tasktracker/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- helpers ---

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
	}
}

func newUserService(t *testing.T, m repomanager.RepositoryManager, clock *movableClock) *UserService {
	t.Helper()
	s := NewUserService(m, testConfig(), clock, logging.Nop{})
	s.setBcryptCost(bcrypt.MinCost)
	return s
}

func alice() Registration {
	return Registration{
		UserName:        "alice",
		Email:           "alice@example.com",
		Password:        "correct horse",
		PasswordConfirm: "correct horse",
		FirstName:       "Alice",
	}
}

func mustRegister(t *testing.T, s *UserService, r Registration) (*models.User, *TokenPair) {
	t.Helper()
	u, pair, err := s.Register(context.Background(), r)
	require.NoError(t, err)
	return u, pair
}

type fakeUsersRepo struct {
	users.Repository
	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) GetUserByLogin(context.Context, string) (*models.User, error) {
	return f.getOut, f.getErr
}

func (f *fakeUsersRepo) GetByID(context.Context, string) (*models.User, error) {
	return f.getOut, f.getErr
}

type fakeRefreshRepo struct {
	refreshtokens.Repository
	findOut   *models.RefreshToken
	findErr   error
	delErr    error
	createErr error
}

func (f *fakeRefreshRepo) Create(context.Context, string, string, time.Time) error { return f.createErr }
func (f *fakeRefreshRepo) Find(context.Context, string) (*models.RefreshToken, error) {
	return f.findOut, f.findErr
}
func (f *fakeRefreshRepo) Delete(context.Context, string) error { return f.delErr }

// fakeRepoManager serves the fakes and runs WithTx without a transaction.
type fakeRepoManager struct {
	repomanager.RepositoryManager
	u *fakeUsersRepo
	r *fakeRefreshRepo
}

func (m *fakeRepoManager) Users() users.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens() refreshtokens.Repository { return m.r }
func (m *fakeRepoManager) WithTx(ctx context.Context, fn func(context.Context, repomanager.Repositories) error) error {
	return fn(ctx, m)
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	clock := &movableClock{t: noon}
	s := newUserService(t, repomanager.NewMemoryRepositoryManager(), clock)

	u, pair := mustRegister(t, s, alice())
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.UserName)
	assert.NotEqual(t, []byte("correct horse"), u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword(u.PasswordHash, []byte("correct horse")))

	id, err := auth.ParseToken(pair.AccessToken, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, auth.Identity{UserID: u.ID, UserName: "alice"}, id)
	assert.Len(t, pair.RefreshToken, 64)
}

func TestRegister_Validation(t *testing.T) {
	s := newUserService(t, repomanager.NewMemoryRepositoryManager(), &movableClock{t: noon})

	tests := []struct {
		name   string
		mutate func(*Registration)
		fields []string
	}{
		{"short username", func(r *Registration) { r.UserName = " al " }, []string{"username"}},
		{"short password", func(r *Registration) { r.Password, r.PasswordConfirm = "short", "short" }, []string{"password"}},
		{"mismatch", func(r *Registration) { r.PasswordConfirm = "correct horse!" }, []string{"password_confirm"}},
		{"everything", func(r *Registration) { r.UserName, r.Password = "", "x" }, []string{"username", "password", "password_confirm"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := alice()
			tt.mutate(&r)
			_, _, err := s.Register(context.Background(), r)
			assert.ErrorIs(t, err, common.ErrorValidation)
			assert.Equal(t, tt.fields, fieldsOf(t, err))
		})
	}
}

func TestRegister_Conflict(t *testing.T) {
	m := repomanager.NewMemoryRepositoryManager()
	s := newUserService(t, m, &movableClock{t: noon})
	mustRegister(t, s, alice())

	_, _, err := s.Register(context.Background(), alice())
	assert.ErrorIs(t, err, common.ErrorConflict)
	assert.Regexp(t, regexp.MustCompile(`^error creating user: `), err.Error())
}

// --- Login ---

func TestLogin_Flows(t *testing.T) {
	s := newUserService(t, repomanager.NewMemoryRepositoryManager(), &movableClock{t: noon})
	mustRegister(t, s, alice())
	ctx := context.Background()

	pair, err := s.Login(ctx, " alice ", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	_, err = s.Login(ctx, "alice", "wrong horse")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Login(ctx, "ghost", "correct horse")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestLogin_StoreError(t *testing.T) {
	rm := &fakeRepoManager{u: &fakeUsersRepo{getErr: errBoom{}}, r: &fakeRefreshRepo{}}
	s := newUserService(t, rm, &movableClock{t: noon})

	_, err := s.Login(context.Background(), "u", "x")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestLogin_TokenStoreError(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)
	rm := &fakeRepoManager{
		u: &fakeUsersRepo{getOut: &models.User{ID: "u1", UserName: "u", PasswordHash: hash}},
		r: &fakeRefreshRepo{createErr: errBoom{}},
	}
	s := newUserService(t, rm, &movableClock{t: noon})

	_, err = s.Login(context.Background(), "u", "right")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

// --- RefreshToken ---

func TestRefreshToken_Rotates(t *testing.T) {
	clock := &movableClock{t: noon}
	s := newUserService(t, repomanager.NewMemoryRepositoryManager(), clock)
	u, first := mustRegister(t, s, alice())
	ctx := context.Background()

	clock.t = noon.Add(time.Hour)
	second, err := s.RefreshToken(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	id, err := auth.ParseToken(second.AccessToken, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, u.ID, id.UserID)

	_, err = s.RefreshToken(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, common.ErrInvalidToken, "a rotated token cannot be replayed")
}

func TestRefreshToken_Expired(t *testing.T) {
	clock := &movableClock{t: noon}
	s := newUserService(t, repomanager.NewMemoryRepositoryManager(), clock)
	_, pair := mustRegister(t, s, alice())

	clock.t = noon.Add(3 * time.Hour)
	_, err := s.RefreshToken(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrRefreshTokenExpired)
}

func TestRefreshToken_Unknown(t *testing.T) {
	s := newUserService(t, repomanager.NewMemoryRepositoryManager(), &movableClock{t: noon})

	_, err := s.RefreshToken(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestRefreshToken_StoreErrors(t *testing.T) {
	valid := &models.RefreshToken{UserID: "u1", Expires: noon.Add(10 * time.Minute)}

	tests := []struct {
		name string
		u    *fakeUsersRepo
		r    *fakeRefreshRepo
		want string
	}{
		{"find", &fakeUsersRepo{}, &fakeRefreshRepo{findErr: errBoom{}}, `error searching refresh token: .*boom`},
		{"delete", &fakeUsersRepo{}, &fakeRefreshRepo{findOut: valid, delErr: errBoom{}}, `error deleting refresh token: .*boom`},
		{"owner", &fakeUsersRepo{getErr: errBoom{}}, &fakeRefreshRepo{findOut: valid}, `error loading token owner: .*boom`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newUserService(t, &fakeRepoManager{u: tt.u, r: tt.r}, &movableClock{t: noon})
			_, err := s.RefreshToken(context.Background(), "r")
			require.Error(t, err)
			assert.Regexp(t, regexp.MustCompile(tt.want), err.Error())
		})
	}

	t.Run("create", func(t *testing.T) {
		rm := &fakeRepoManager{
			u: &fakeUsersRepo{getOut: &models.User{ID: "u1", UserName: "u"}},
			r: &fakeRefreshRepo{findOut: valid, createErr: errBoom{}},
		}
		s := newUserService(t, rm, &movableClock{t: noon})
		_, err := s.RefreshToken(context.Background(), "r")
		assert.ErrorIs(t, err, common.ErrorInternal)
	})
}

// --- Logout ---

func TestLogout(t *testing.T) {
	s := newUserService(t, repomanager.NewMemoryRepositoryManager(), &movableClock{t: noon})
	u, pair := mustRegister(t, s, alice())
	bob := alice()
	bob.UserName = "bob"
	other, _ := mustRegister(t, s, bob)
	ctx := context.Background()

	assert.ErrorIs(t, s.Logout(ctx, other.ID, pair.RefreshToken), common.ErrorForbidden)

	require.NoError(t, s.Logout(ctx, u.ID, pair.RefreshToken))

	_, err := s.RefreshToken(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	assert.ErrorIs(t, s.Logout(ctx, u.ID, pair.RefreshToken), common.ErrorNotFound)
}

// --- Profile / DeleteAccount ---

func TestProfile(t *testing.T) {
	s := newUserService(t, repomanager.NewMemoryRepositoryManager(), &movableClock{t: noon})
	u, _ := mustRegister(t, s, alice())

	got, err := s.Profile(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "Alice", got.FirstName)

	_, err = s.Profile(context.Background(), "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDeleteAccount_Cascades(t *testing.T) {
	m := repomanager.NewMemoryRepositoryManager()
	clock := &movableClock{t: noon}
	accounts := newUserService(t, m, clock)
	tasks := NewTaskService(m, clock, logging.Nop{})
	cats := NewCategoryService(m, clock, logging.Nop{})
	ctx := context.Background()

	u, pair := mustRegister(t, accounts, alice())
	bob := alice()
	bob.UserName = "bob"
	other, _ := mustRegister(t, accounts, bob)

	c, err := cats.Create(ctx, u.ID, "Work", "")
	require.NoError(t, err)
	mustCreate(t, tasks, u.ID, NewTask{Title: "mine", CategoryID: c.ID})
	kept := mustCreate(t, tasks, other.ID, NewTask{Title: "theirs"})

	require.NoError(t, accounts.DeleteAccount(ctx, u.ID))

	_, err = accounts.Profile(ctx, u.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = accounts.RefreshToken(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	left, err := tasks.List(ctx, u.ID, ListParams{})
	require.NoError(t, err)
	assert.Empty(t, left)
	leftCats, err := cats.List(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, leftCats)

	_, err = tasks.Get(ctx, other.ID, kept.ID)
	assert.NoError(t, err)

	err = accounts.DeleteAccount(ctx, u.ID)
	assert.True(t, errors.Is(err, common.ErrorNotFound), "got %v", err)
}
