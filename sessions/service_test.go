package sessions_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-photo-session/auth"
	apperrors "github.com/jrsteele09/go-photo-session/internal/errors"
	"github.com/jrsteele09/go-photo-session/internal/mocks"
	"github.com/jrsteele09/go-photo-session/internal/utils"
	"github.com/jrsteele09/go-photo-session/sessions"
	"github.com/jrsteele09/go-photo-session/store"
	"github.com/jrsteele09/go-photo-session/token"
	tokenfakerepo "github.com/jrsteele09/go-photo-session/token/repofake"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testEmail    = "a@b.com"
	testPassword = "x"
)

// testFixture holds all test dependencies
type testFixture struct {
	api      *mocks.MockAPI
	tokens   *tokenfakerepo.FakeTokenStore
	store    *store.Store[sessions.State]
	service  *sessions.Service
	results  []sessions.Result
	statuses []sessions.Status
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &testFixture{
		api:    mocks.NewMockAPI(ctrl),
		tokens: tokenfakerepo.NewFakeTokenStore(),
		store:  sessions.NewStore(),
	}

	svc, err := sessions.NewService(f.api, f.tokens, f.store)
	require.NoError(t, err)
	svc.OnResult(func(r sessions.Result) {
		f.results = append(f.results, r)
	})
	f.store.Subscribe(func(_ store.Action, s sessions.State) {
		f.statuses = append(f.statuses, s.Status)
	})
	f.service = svc
	return f
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := token.NewHMACSigner("test-secret").Sign(claims)
	require.NoError(t, err)
	return raw
}

func TestNewService_RequiresDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	tokens := tokenfakerepo.NewFakeTokenStore()

	_, err := sessions.NewService(nil, tokens, sessions.NewStore())
	require.Error(t, err)
	_, err = sessions.NewService(api, nil, sessions.NewStore())
	require.Error(t, err)
	_, err = sessions.NewService(api, tokens, nil)
	require.Error(t, err)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("well formed token populates the state", func(t *testing.T) {
		f := setupTestFixture(t)
		raw := signedToken(t, jwt.MapClaims{"name": "A", "email": testEmail, "userId": "1", "exp": int64(9999999999)})

		f.api.EXPECT().
			Login(gomock.Any(), auth.LoginRequest{Email: testEmail, Password: testPassword}).
			Return(&auth.LoginResponse{Response: auth.Response{Message: utils.Ptr("ok")}, Token: utils.Ptr(raw)}, nil)

		result := f.service.Login(ctx, testEmail, testPassword)

		require.Equal(t, sessions.Result{Operation: sessions.OperationLogin, OK: true, Message: "ok"}, result)
		require.Equal(t, sessions.State{
			Name:   "A",
			Email:  testEmail,
			UserID: "1",
			Exp:    9999999999,
			Status: sessions.StatusSuccess,
			Error:  "",
		}, f.store.State())
		require.Equal(t, []sessions.Status{sessions.StatusLoading, sessions.StatusSuccess}, f.statuses)
		require.Equal(t, []sessions.Result{result}, f.results)

		stored, err := f.tokens.Get(ctx)
		require.NoError(t, err)
		require.Equal(t, raw, stored)
	})

	t.Run("malformed token is kept but flagged", func(t *testing.T) {
		f := setupTestFixture(t)
		f.store.Dispatch(sessions.SetCredentials{UserID: "old", Email: "old@b.com", Name: "Old"})

		f.api.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(&auth.LoginResponse{Response: auth.Response{Message: utils.Ptr("ok")}, Token: utils.Ptr("garbage")}, nil)

		result := f.service.Login(ctx, testEmail, testPassword)
		require.True(t, result.OK)

		state := f.store.State()
		require.Equal(t, sessions.StatusSuccess, state.Status)
		require.NotEmpty(t, state.Error)
		require.Contains(t, state.Error, apperrors.ErrTokenDecode.Error())
		require.Equal(t, "Old", state.Name)

		stored, err := f.tokens.Get(ctx)
		require.NoError(t, err)
		require.Equal(t, "garbage", stored)
		require.Len(t, f.results, 1)
	})

	t.Run("missing token is stored empty and flagged", func(t *testing.T) {
		f := setupTestFixture(t)

		f.api.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(&auth.LoginResponse{Response: auth.Response{Message: utils.Ptr("ok")}}, nil)

		f.service.Login(ctx, testEmail, testPassword)

		state := f.store.State()
		require.Equal(t, sessions.StatusSuccess, state.Status)
		require.Equal(t, apperrors.ErrEmptyToken.Error(), state.Error)

		stored, err := f.tokens.Get(ctx)
		require.NoError(t, err)
		require.Empty(t, stored)
	})

	t.Run("rejected by the api", func(t *testing.T) {
		f := setupTestFixture(t)

		f.api.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, &auth.APIError{StatusCode: http.StatusUnauthorized, Message: "invalid email or password"})

		result := f.service.Login(ctx, testEmail, testPassword)

		require.Equal(t, sessions.Result{Operation: sessions.OperationLogin, OK: false, Message: "invalid email or password"}, result)
		require.Equal(t, sessions.StatusError, f.store.State().Status)
		require.Equal(t, "invalid email or password", f.store.State().Error)

		_, err := f.tokens.Get(ctx)
		require.ErrorIs(t, err, apperrors.ErrTokenNotFound)
	})

	t.Run("transport failure", func(t *testing.T) {
		f := setupTestFixture(t)

		f.api.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.Wrapf(apperrors.ErrRequestFailed, "POST /api/v1/auth/login"))

		result := f.service.Login(ctx, testEmail, testPassword)
		require.False(t, result.OK)
		require.Equal(t, sessions.UnknownErrorMessage, f.store.State().Error)
	})

	t.Run("custom decoder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockAPI(ctrl)
		st := sessions.NewStore()
		svc, err := sessions.NewService(api, tokenfakerepo.NewFakeTokenStore(), st, sessions.WithDecoder(func(string) (*token.Claims, error) {
			return nil, errors.New("nope")
		}))
		require.NoError(t, err)

		api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&auth.LoginResponse{Token: utils.Ptr("t")}, nil)
		svc.Login(ctx, testEmail, testPassword)
		require.Equal(t, "nope", st.State().Error)
	})
}

func TestService_CreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("success only changes status", func(t *testing.T) {
		f := setupTestFixture(t)

		f.api.EXPECT().
			Signup(gomock.Any(), auth.SignupRequest{User: "A", Email: testEmail, Password: testPassword}).
			Return(&auth.Response{Message: utils.Ptr("account created")}, nil)

		result := f.service.CreateAccount(ctx, "A", testEmail, testPassword)

		require.Equal(t, sessions.Result{Operation: sessions.OperationCreateAccount, OK: true, Message: "account created"}, result)
		require.Equal(t, sessions.State{Status: sessions.StatusSuccess}, f.store.State())

		_, err := f.tokens.Get(ctx)
		require.ErrorIs(t, err, apperrors.ErrTokenNotFound)
	})

	t.Run("email taken", func(t *testing.T) {
		f := setupTestFixture(t)

		f.api.EXPECT().
			Signup(gomock.Any(), gomock.Any()).
			Return(nil, &auth.APIError{StatusCode: http.StatusBadRequest, Message: "email taken"})

		result := f.service.CreateAccount(ctx, "A", testEmail, testPassword)

		require.False(t, result.OK)
		require.Equal(t, "email taken", result.Message)
		require.Equal(t, sessions.StatusError, f.store.State().Status)
		require.Equal(t, "email taken", f.store.State().Error)
		require.Len(t, f.results, 1)
	})

	t.Run("error without message", func(t *testing.T) {
		f := setupTestFixture(t)

		f.api.EXPECT().
			Signup(gomock.Any(), gomock.Any()).
			Return(nil, &auth.APIError{StatusCode: http.StatusInternalServerError})

		result := f.service.CreateAccount(ctx, "A", testEmail, testPassword)
		require.Equal(t, sessions.FallbackErrorMessage, result.Message)
		require.Equal(t, sessions.FallbackErrorMessage, f.store.State().Error)
	})
}

func TestService_LastSettledWins(t *testing.T) {
	ctx := context.Background()
	f := setupTestFixture(t)

	gomock.InOrder(
		f.api.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(nil, &auth.APIError{StatusCode: http.StatusBadRequest, Message: "email taken"}),
		f.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&auth.LoginResponse{Token: utils.Ptr(signedToken(t, jwt.MapClaims{"name": "A"}))}, nil),
	)

	f.service.CreateAccount(ctx, "A", testEmail, testPassword)
	f.service.Login(ctx, testEmail, testPassword)

	require.Equal(t, sessions.StatusSuccess, f.store.State().Status)
	require.Empty(t, f.store.State().Error)
	require.Len(t, f.results, 2)
}

func TestService_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("no token", func(t *testing.T) {
		f := setupTestFixture(t)
		require.NoError(t, f.service.Restore(ctx))
		require.Equal(t, sessions.InitialState(), f.store.State())
	})

	t.Run("stored token", func(t *testing.T) {
		f := setupTestFixture(t)
		require.NoError(t, f.tokens.Set(ctx, signedToken(t, jwt.MapClaims{"name": "A", "email": testEmail, "userId": "1"})))

		require.NoError(t, f.service.Restore(ctx))
		state := f.store.State()
		require.Equal(t, "A", state.Name)
		require.Equal(t, testEmail, state.Email)
		require.Equal(t, "1", state.UserID)
		require.Equal(t, sessions.StatusIdle, state.Status)
		require.Empty(t, f.results)
	})

	t.Run("stored token is malformed", func(t *testing.T) {
		f := setupTestFixture(t)
		require.NoError(t, f.tokens.Set(ctx, "garbage"))

		err := f.service.Restore(ctx)
		require.ErrorIs(t, err, apperrors.ErrTokenDecode)
		require.Equal(t, sessions.InitialState(), f.store.State())
	})
}
