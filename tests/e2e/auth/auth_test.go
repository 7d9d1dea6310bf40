//go:build e2e

package auth_test

import (
	"net/http"
	"sync"
	"testing"

	"concert-reservation/internal/handler/dto/request"
	resdto "concert-reservation/internal/handler/dto/response"
	"concert-reservation/internal/pkg/cookie"
	"concert-reservation/tests/common/authtest"
	"concert-reservation/tests/common/dbtest"
	"concert-reservation/tests/common/httptest"
	"concert-reservation/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com")
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com")
	dbtest.DeactivateUser(s.T(), s.DB, "inactive@example.com")
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なログイン",
			email:          "test@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
			description:    "有効な認証情報でログインできること",
		},
		{
			name:           "大文字を含むメールアドレス",
			email:          "Test@Example.COM",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
			description:    "メールアドレスは大文字小文字を区別しないこと",
		},
		{
			name:           "存在しないユーザー",
			email:          "nonexistent@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "存在しないユーザーでログインできないこと",
		},
		{
			name:           "間違ったパスワード",
			email:          "test@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "間違ったパスワードでログインできないこと",
		},
		{
			name:           "非アクティブユーザー",
			email:          "inactive@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusForbidden,
			description:    "非アクティブユーザーはログインできないこと",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "空のメールアドレスは拒否されること",
		},
		{
			name:           "空のパスワード",
			email:          "test@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "空のパスワードは拒否されること",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				err := httptest.DecodeResponseBody(t, w.Body, &loginRes)
				require.NoError(t, err)
				require.NotEmpty(t, loginRes.AccessToken, "アクセストークンが空")
				require.Equal(t, "test@example.com", loginRes.User.Email)

				accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
				require.NotNil(t, accessCookie, "Cookieが設定されていない")
				require.Equal(t, loginRes.AccessToken, accessCookie.Value)

				// last_loginが更新されることを確認
				var lastLogin any
				err = s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", "test@example.com").Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_loginが更新されていない")
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	s.Run("正常なログアウト", func() {
		token := authtest.LoginUser(s.T(), s.Router, "test@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(s.T(), http.StatusNoContent, w.Code)

		accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(s.T(), accessCookie)
		require.Empty(s.T(), accessCookie.Value, "Cookieが削除されていない")
	})

	s.Run("Cookieのみでのログアウト", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "test@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(s.T(), http.StatusOK, w.Code)

		authtest.LogoutUser(s.T(), s.Router, w.Result().Cookies())
	})

	s.Run("トークンなし", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		token          func() string
		expectedStatus int
	}{
		{
			name: "ログイン済みユーザーの情報取得",
			token: func() string {
				return authtest.LoginUser(s.T(), s.Router, "test@example.com", dbtest.TestPassword)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "無効なトークン",
			token: func() string {
				return "invalid.token.value"
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "別の鍵で署名されたトークン",
			token: func() string {
				return s.jwt.SignedWithOtherSecret(s.T(), uuid.New(), "test@example.com")
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "削除済みユーザーのトークン",
			token: func() string {
				return s.jwt.GenerateToken(s.T(), uuid.New(), "ghost@example.com")
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "トークンなし",
			token: func() string {
				return ""
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, tt.token())
			require.Equal(s.T(), tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var me resdto.UserResponse
				require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &me))
				require.Equal(s.T(), "test@example.com", me.Email)
				require.NotNil(s.T(), me.LastLogin)
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("期限切れトークンの拒否", func() {
		userID := dbtest.CreateTestUser(s.T(), s.DB, "expiry@example.com")
		token := s.jwt.CreateExpiredToken(s.T(), userID, "expiry@example.com")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("同時ログイン", func() {
		const n = 10
		var wg sync.WaitGroup
		codes := make([]int, n)
		for i := range n {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
					request.LoginRequest{Email: "test@example.com", Password: dbtest.TestPassword}, "")
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		for _, code := range codes {
			require.Equal(s.T(), http.StatusOK, code)
		}
	})
}
